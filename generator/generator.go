package generator

import (
	"strings"

	"go.scnd.dev/open/lvglgen/model"
)

const (
	Indent          = "    "
	HeaderExtension = ".h"
	SourceExtension = ".c"
)

// Generator lowers a screen into an LVGL header and source pair. It never fails
// and never mutates the screen.
type Generator struct {
	screen        *model.Screen
	licenseHeader string
}

type Option func(generator *Generator)

// WithLicenseHeader prepends header to both outputs when it is non-empty.
func WithLicenseHeader(header string) Option {
	return func(generator *Generator) {
		generator.licenseHeader = header
	}
}

func New(screen *model.Screen, options ...Option) *Generator {
	generator := &Generator{
		screen: screen,
	}
	for _, option := range options {
		option(generator)
	}
	return generator
}

type File struct {
	Name    string
	Content string
}

// Files returns the header and the source named after base.
func (r *Generator) Files(base string) []*File {
	return []*File{
		{Name: base + HeaderExtension, Content: r.Header()},
		{Name: base + SourceExtension, Content: r.Source()},
	}
}

func (r *Generator) writeLicense(builder *strings.Builder) {
	if r.licenseHeader == "" {
		return
	}

	// * normalize line endings
	header := strings.ReplaceAll(r.licenseHeader, "\r\n", "\n")
	header = strings.ReplaceAll(header, "\r", "\n")

	builder.WriteString(header)
	if !strings.HasSuffix(header, "\n") {
		builder.WriteString("\n")
	}
	builder.WriteString("\n")
}
