package renderer

import (
	"html"
	"strconv"
	"strings"

	"github.com/goliatone/go-layout/pkg/model"
)

// Textarea renders a multi-line text control.
type Textarea struct {
	base
}

var _ Renderer = (*Textarea)(nil)

// Configure binds the field context.
func (r *Textarea) Configure(fieldName string, config model.FieldConfig, page *model.PageConfig) error {
	r.bind(fieldName, config, page)
	return nil
}

// Render produces the textarea and its label.
func (r *Textarea) Render() (string, error) {
	if err := r.ensureConfigured(); err != nil {
		return "", err
	}
	behaviours, err := r.behaviours()
	if err != nil {
		return "", err
	}

	attrs := joinAttrs(
		`class="`+inputClass+`"`,
		sizeAttr("rows", r.config.Rows),
		sizeAttr("cols", r.config.Cols),
		r.attrPlaceholder(),
		r.attrTitle(),
		r.lengthAttr("minlength", r.config.MinLength),
		r.lengthAttr("maxlength", r.config.MaxLength),
		r.attrReadonly(),
		r.attrDisabled(),
		r.attrRequired(),
		r.attrAutofocus(),
		behaviours,
	)

	var builder strings.Builder
	builder.WriteString(`<div ` + r.wrapperID() + ` class="` + r.divClass() + `"` + r.wrapperVisibility() + `>`)
	builder.WriteString(r.hintText())
	builder.WriteString("\n")
	builder.WriteString(`<textarea ` + r.nameAttribute() + ` ` + r.fieldID() + withSpace(attrs) + `>`)
	builder.WriteString(html.EscapeString(stringValue(r.value())))
	builder.WriteString(`</textarea>`)
	builder.WriteString("\n")
	builder.WriteString(r.label(r.idBase()))
	builder.WriteString("\n</div>")
	return builder.String(), nil
}

func sizeAttr(name string, value int) string {
	if value <= 0 {
		return ""
	}
	return name + `="` + strconv.Itoa(value) + `"`
}
