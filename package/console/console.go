package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const ErrorPrefix = "[ERROR] "

// Console receives the user-facing status lines of load, save and generate operations.
type Console interface {
	Println(line string)
	Error(line string)
}

type Writer struct {
	mutex  sync.Mutex
	writer io.Writer
	prefix *color.Color
}

// New prints to writer. The error prefix is colored only when writer is a terminal.
func New(writer io.Writer) *Writer {
	prefix := color.New(color.FgRed, color.Bold)
	if file, ok := writer.(*os.File); !ok || !isatty.IsTerminal(file.Fd()) {
		prefix.DisableColor()
	} else {
		prefix.EnableColor()
	}

	return &Writer{
		writer: writer,
		prefix: prefix,
	}
}

func (r *Writer) Println(line string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	_, _ = fmt.Fprintln(r.writer, line)
}

func (r *Writer) Error(line string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	_, _ = fmt.Fprintln(r.writer, r.prefix.Sprint(ErrorPrefix)+line)
}

type discard struct{}

func (discard) Println(string) {}

func (discard) Error(string) {}

// Discard drops every line.
var Discard Console = discard{}
