package template

import (
	"errors"
	"io"
)

// ErrFilterExists is returned when a filter name is already taken. Filters
// are process-wide in pongo2.
var ErrFilterExists = errors.New("template: filter already registered")

// TemplateRenderer is what renderers need from a template engine.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
