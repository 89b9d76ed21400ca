package erroring

import (
	"fmt"
	"runtime"
	"strings"
)

type Trace struct {
	Name *string `json:"name,omitempty"`
	Line *int    `json:"line,omitempty"`
}

func (r *Trace) String() string {
	return fmt.Sprintf("%s:%d", *r.Name, *r.Line)
}

// NewTrace records the function skip frames above its caller as "pkg.Func:line".
func NewTrace(skip int) *Trace {
	name := "unknown"
	pc, _, line, ok := runtime.Caller(skip + 1)
	if ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			name = fn.Name()
			name = name[strings.LastIndex(name, "/")+1:]
		}
	}

	return &Trace{
		Name: &name,
		Line: &line,
	}
}
