package renderer

import (
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-layout/pkg/icon"
	"github.com/goliatone/go-layout/pkg/model"
)

// Lookup renders a read-only display box with a button that opens a lookup
// dialog. The chosen id is submitted through a hidden input.
type Lookup struct {
	base
}

var _ Renderer = (*Lookup)(nil)

// Configure binds the field context. A lookup name is required.
func (r *Lookup) Configure(fieldName string, config model.FieldConfig, page *model.PageConfig) error {
	if strings.TrimSpace(config.LookupName) == "" {
		return fmt.Errorf("%w: lookup_name is required for lookup field %q", ErrMissingOption, fieldName)
	}
	r.bind(fieldName, config, page)
	return nil
}

// Render produces the hidden id input, the display box and the button.
func (r *Lookup) Render() (string, error) {
	if err := r.ensureConfigured(); err != nil {
		return "", err
	}
	behaviours, err := r.behaviours()
	if err != nil {
		return "", err
	}

	id := html.EscapeString(r.idBase())
	display := stringValue(r.value())
	if r.config.WithValue != nil {
		display = stringValue(r.config.WithValue)
	}

	buttonAttrs := joinAttrs(
		`type="button"`,
		`class="cbl-lookup"`,
		`data-lookup-name="`+html.EscapeString(r.config.LookupName)+`"`,
		optionalAttr("data-lookup-key", r.config.LookupKey),
		optionalAttr("data-lookup-url", r.config.LookupURL),
		`data-lookup-for="`+id+`"`,
		`title="Lookup"`,
		r.attrDisabled(),
	)

	var builder strings.Builder
	builder.WriteString(`<div ` + r.wrapperID() + ` class="` + r.divClass() + `"` + r.wrapperVisibility() + `>`)
	builder.WriteString(r.hintText())
	builder.WriteString("\n")
	builder.WriteString(`<input type="hidden" value="` + html.EscapeString(stringValue(r.value())) + `" ` + r.nameAttribute() + ` ` + r.fieldID() + withSpace(behaviours) + `>`)
	builder.WriteString("\n")
	builder.WriteString(`<input type="text" readonly="true" value="` + html.EscapeString(display) + `" id="` + id + `_display" class="` + inputClass + `"` + withSpace(r.attrPlaceholder()) + `>`)
	builder.WriteString("\n")
	builder.WriteString(`<button ` + buttonAttrs + `>` + icon.Render(icon.Info) + `</button>`)
	builder.WriteString("\n")
	builder.WriteString(r.label(r.idBase() + "_display"))
	builder.WriteString("\n</div>")
	return builder.String(), nil
}

func optionalAttr(name, value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return name + `="` + html.EscapeString(value) + `"`
}
