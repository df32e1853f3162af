package template

import "io"

// FilterFunc transforms a value inside a template expression.
type FilterFunc func(input any, param any) (any, error)

// TemplateRenderer renders named templates or inline template content. When
// writers are supplied the output is also written to each of them.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(content string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn FilterFunc) error
	GlobalContext(data any) error
}
