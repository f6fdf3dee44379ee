package renderer

import (
	"html"

	"github.com/goliatone/go-layout/pkg/model"
)

// Hidden renders a bare hidden input with no wrapper or label.
type Hidden struct {
	base
}

var _ Renderer = (*Hidden)(nil)

// Configure binds the field context.
func (r *Hidden) Configure(fieldName string, config model.FieldConfig, page *model.PageConfig) error {
	r.bind(fieldName, config, page)
	return nil
}

// Render produces the hidden input.
func (r *Hidden) Render() (string, error) {
	if err := r.ensureConfigured(); err != nil {
		return "", err
	}
	behaviours, err := r.behaviours()
	if err != nil {
		return "", err
	}
	return `<input type="hidden" value="` + html.EscapeString(stringValue(r.value())) + `" ` +
		r.nameAttribute() + ` ` + r.fieldID() + withSpace(behaviours) + `>`, nil
}
