package renderer

import (
	"html"
	"strconv"
	"strings"

	"github.com/goliatone/go-layout/pkg/icon"
	"github.com/goliatone/go-layout/pkg/model"
)

const (
	fieldClass      = "crossbeams-field"
	fieldErrorClass = "crossbeams-field crossbeams-div-error bg-washed-red"
	inputClass      = "cbl-input"
)

// base carries the bound field context and the helpers every renderer
// shares. Derived values are computed on demand from the bound inputs.
type base struct {
	fieldName  string
	config     model.FieldConfig
	page       *model.PageConfig
	caption    string
	configured bool
}

func (b *base) bind(fieldName string, config model.FieldConfig, page *model.PageConfig) {
	if page == nil {
		page = &model.PageConfig{}
	}
	b.fieldName = fieldName
	b.config = config
	b.page = page
	b.caption = config.Caption
	if b.caption == "" {
		b.caption = model.PresentFieldAsLabel(fieldName)
	}
	b.configured = true
}

func (b *base) ensureConfigured() error {
	if !b.configured {
		return ErrNotConfigured
	}
	return nil
}

// idBase is the DOM id of the control.
func (b *base) idBase() string {
	return b.page.Name + "_" + b.fieldName
}

func (b *base) fieldID() string {
	return `id="` + html.EscapeString(b.idBase()) + `"`
}

func (b *base) wrapperID() string {
	return `id="` + html.EscapeString(b.idBase()) + `_field_wrapper"`
}

// nameBase is the form parameter name of the control.
func (b *base) nameBase() string {
	return b.page.Name + "[" + b.fieldName + "]"
}

func (b *base) nameAttribute() string {
	return `name="` + html.EscapeString(b.nameBase()) + `"`
}

func (b *base) nameAttributeMulti() string {
	return `name="` + html.EscapeString(b.nameBase()) + `[]"`
}

func (b *base) hasErrors() bool {
	return len(b.page.FieldErrors(b.fieldName)) > 0
}

// divClass is the class of the wrapper surrounding label and control.
func (b *base) divClass() string {
	class := fieldClass
	if b.hasErrors() {
		class = fieldErrorClass
	}
	if extra := strings.TrimSpace(b.config.CSSClass); extra != "" {
		class += " " + extra
	}
	return html.EscapeString(class)
}

func (b *base) wrapperVisibility() string {
	if b.config.StartsHidden() {
		return " hidden"
	}
	return ""
}

func (b *base) value() any {
	return b.page.Value(b.fieldName)
}

// errorState renders the inline error messages, or "" when the field is
// valid.
func (b *base) errorState(newline bool) string {
	messages := b.page.FieldErrors(b.fieldName)
	if len(messages) == 0 {
		return ""
	}
	escaped := make([]string, len(messages))
	for i, msg := range messages {
		escaped[i] = html.EscapeString(msg)
	}

	var builder strings.Builder
	builder.WriteString(`<span class='brown crossbeams-form-error'>`)
	if newline {
		builder.WriteString(`<br>`)
	}
	builder.WriteString(strings.Join(escaped, "; "))
	builder.WriteString(`</span>`)
	return builder.String()
}

// hintText renders the hidden hint block revealed by the hint trigger.
func (b *base) hintText() string {
	if b.config.Hint == "" {
		return ""
	}
	return "\n" + `<div style="display:none" data-cb-hint="` + html.EscapeString(b.idBase()) + `">` + "\n" +
		b.config.Hint + "\n</div>"
}

// hintTrigger renders the icon clicked to display the hint.
func (b *base) hintTrigger() string {
	if b.config.Hint == "" {
		return ""
	}
	return icon.Render(icon.Question,
		icon.WithClass("ml1 blue pointer"),
		icon.WithAttrs(
			`title="Click for hint"`,
			`data-cb-hint-for='`+html.EscapeString(b.idBase())+`'`,
		),
	)
}

func (b *base) label(forID string) string {
	return `<label for="` + html.EscapeString(forID) + `">` + b.caption + b.errorState(true) + b.hintTrigger() + `</label>`
}

func (b *base) attrPlaceholder() string {
	if b.config.Placeholder == "" {
		return ""
	}
	return `placeholder="` + html.EscapeString(b.config.Placeholder) + `"`
}

func (b *base) attrTitle() string {
	if b.config.Title == "" {
		return ""
	}
	return `title="` + html.EscapeString(b.config.Title) + `"`
}

func (b *base) attrReadonly() string {
	if b.config.Readonly {
		return `readonly="true"`
	}
	return ""
}

func (b *base) attrDisabled() string {
	if b.config.Disabled {
		return `disabled="true"`
	}
	return ""
}

func (b *base) attrRequired() string {
	if b.config.Required {
		return `required="true"`
	}
	return ""
}

func (b *base) attrAutofocus() string {
	if b.config.Autofocus {
		return "autofocus"
	}
	return ""
}

func (b *base) lengthAttr(name string, value *int) string {
	if value == nil {
		return ""
	}
	return name + `="` + strconv.Itoa(*value) + `"`
}

// joinAttrs joins the non-empty attributes with single spaces.
func joinAttrs(attrs ...string) string {
	kept := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		if attr == "" {
			continue
		}
		kept = append(kept, attr)
	}
	return strings.Join(kept, " ")
}

// withSpace prefixes a non-empty attribute list with a space.
func withSpace(attrs string) string {
	if attrs == "" {
		return ""
	}
	return " " + attrs
}
