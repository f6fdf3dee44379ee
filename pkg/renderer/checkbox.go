package renderer

import (
	"html"
	"strings"

	"github.com/goliatone/go-layout/pkg/model"
	"github.com/spf13/cast"
)

// Checkbox renders a checkbox preceded by a hidden "0" input so an
// unchecked box still submits a value.
type Checkbox struct {
	base
}

var _ Renderer = (*Checkbox)(nil)

// Configure binds the field context.
func (r *Checkbox) Configure(fieldName string, config model.FieldConfig, page *model.PageConfig) error {
	r.bind(fieldName, config, page)
	return nil
}

// Render produces the hidden fallback, the checkbox and its label.
func (r *Checkbox) Render() (string, error) {
	if err := r.ensureConfigured(); err != nil {
		return "", err
	}
	behaviours, err := r.behaviours()
	if err != nil {
		return "", err
	}

	attrs := joinAttrs(
		`class="cbl-checkbox"`,
		r.attrChecked(),
		r.attrTooltip(),
		r.attrDisabled(),
		behaviours,
	)

	var builder strings.Builder
	builder.WriteString(`<div ` + r.wrapperID() + ` class="` + r.divClass() + `"` + r.wrapperVisibility() + `>`)
	builder.WriteString(r.hintText())
	builder.WriteString("\n")
	if !r.config.Disabled && !r.config.Readonly {
		builder.WriteString(`<input ` + r.nameAttribute() + ` type="hidden" value="0">`)
		builder.WriteString("\n")
	}
	builder.WriteString(`<input type="checkbox" value="1" ` + r.nameAttribute() + ` ` + r.fieldID() + withSpace(attrs) + `>`)
	builder.WriteString("\n")
	builder.WriteString(r.label(r.idBase()))
	builder.WriteString("\n</div>")
	return builder.String(), nil
}

func (r *Checkbox) attrChecked() string {
	if cast.ToBool(r.value()) {
		return "checked"
	}
	return ""
}

// attrTooltip prefers the tooltip option over the title.
func (r *Checkbox) attrTooltip() string {
	if r.config.Tooltip != "" {
		return `title="` + html.EscapeString(r.config.Tooltip) + `"`
	}
	return r.attrTitle()
}

// attrDisabled also covers readonly, which browsers ignore on checkboxes.
func (r *Checkbox) attrDisabled() string {
	if r.config.Disabled || r.config.Readonly {
		return `disabled="true"`
	}
	return ""
}
