package renderer

import (
	"html"
	"strings"

	"github.com/goliatone/go-layout/pkg/icon"
	"github.com/goliatone/go-layout/pkg/model"
	"github.com/spf13/cast"
)

// Label renders a field's value as read-only text. Format is a Go time
// layout applied to date values; AsBoolean draws a tick or a cross.
type Label struct {
	base
}

var _ Renderer = (*Label)(nil)

// Configure binds the field context.
func (r *Label) Configure(fieldName string, config model.FieldConfig, page *model.PageConfig) error {
	r.bind(fieldName, config, page)
	return nil
}

// Render produces the read-only display and, when requested, a hidden input
// that still submits the value.
func (r *Label) Render() (string, error) {
	if err := r.ensureConfigured(); err != nil {
		return "", err
	}

	raw := r.rawValue()
	var builder strings.Builder
	builder.WriteString(`<div ` + r.wrapperID() + ` class="` + r.divClass() + `"` + r.wrapperVisibility() + `>`)
	builder.WriteString(r.hintText())
	builder.WriteString("\n")
	builder.WriteString(`<div class="cbl-input label-field bg-light-gray" id="` + html.EscapeString(r.idBase()) + `_label">`)
	builder.WriteString(r.display(raw))
	builder.WriteString(`</div>`)
	if r.config.IncludeHiddenField {
		builder.WriteString("\n")
		builder.WriteString(`<input type="hidden" value="` + html.EscapeString(stringValue(raw)) + `" ` + r.nameAttribute() + ` ` + r.fieldID() + `>`)
	}
	builder.WriteString("\n")
	builder.WriteString(r.label(r.idBase() + "_label"))
	builder.WriteString("\n</div>")
	return builder.String(), nil
}

func (r *Label) rawValue() any {
	if r.config.WithValue != nil {
		return r.config.WithValue
	}
	return r.value()
}

func (r *Label) display(raw any) string {
	if r.config.AsBoolean {
		if cast.ToBool(raw) {
			return icon.Render(icon.CheckOn, icon.WithClass("green"))
		}
		return icon.Render(icon.CheckOff, icon.WithClass("light-red"))
	}
	if r.config.Format != "" && raw != nil {
		if t, err := cast.ToTimeE(raw); err == nil {
			return html.EscapeString(t.Format(r.config.Format))
		}
	}
	return html.EscapeString(stringValue(raw))
}
