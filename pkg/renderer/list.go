package renderer

import (
	"html"
	"strings"

	"github.com/goliatone/go-layout/pkg/model"
)

// List renders a read-only ordered list. Items come from the bound value,
// falling back to the configured options.
type List struct {
	base
}

var _ Renderer = (*List)(nil)

// Configure binds the field context.
func (r *List) Configure(fieldName string, config model.FieldConfig, page *model.PageConfig) error {
	r.bind(fieldName, config, page)
	return nil
}

// Render produces the list with its caption.
func (r *List) Render() (string, error) {
	if err := r.ensureConfigured(); err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(`<div ` + r.wrapperID() + ` class="` + r.divClass() + `"` + r.wrapperVisibility() + `>`)
	builder.WriteString(r.hintText())
	builder.WriteString("\n")
	builder.WriteString(`<ol class="cbl-list" ` + r.fieldID() + `>`)
	for _, item := range r.items() {
		builder.WriteString("\n")
		builder.WriteString(`<li>` + html.EscapeString(item) + `</li>`)
	}
	builder.WriteString("\n</ol>\n")
	builder.WriteString(r.label(r.idBase()))
	builder.WriteString("\n</div>")
	return builder.String(), nil
}

func (r *List) items() []string {
	if items := stringSlice(r.value()); len(items) > 0 {
		return items
	}
	items := make([]string, 0, len(r.config.Options))
	for _, opt := range r.config.Options {
		items = append(items, opt.Text())
	}
	return items
}
