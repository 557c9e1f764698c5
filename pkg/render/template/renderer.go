package template

import "io"

// TemplateRenderer matches the github.com/goliatone/go-template engine
// surface. Render dispatches to RenderString when its argument looks like
// inline template content and to RenderTemplate otherwise; both return the
// rendered output and additionally copy it to any writers supplied.
// RegisterFilter and GlobalContext configure the engine for all subsequent
// renders.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
