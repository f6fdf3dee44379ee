package template

import (
	"io"
)

// TemplateRenderer executes a named document template with the values a
// document renderer assembles. The rendered text is returned and copied to
// every writer in out.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any, out ...io.Writer) (string, error)
}
