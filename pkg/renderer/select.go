package renderer

import (
	"html"
	"slices"
	"strings"

	"github.com/goliatone/go-layout/pkg/model"
)

// Select renders a single-choice <select>.
type Select struct {
	base
}

var _ Renderer = (*Select)(nil)

// Configure binds the field context.
func (r *Select) Configure(fieldName string, config model.FieldConfig, page *model.PageConfig) error {
	r.bind(fieldName, config, page)
	return nil
}

// Render produces the select control with its options and label.
func (r *Select) Render() (string, error) {
	if err := r.ensureConfigured(); err != nil {
		return "", err
	}
	selected := []string{stringValue(r.value())}
	return renderSelect(&r.base, r.nameAttribute(), "", selected)
}

// Multi renders a multiple-choice <select> submitting an array parameter.
type Multi struct {
	base
}

var _ Renderer = (*Multi)(nil)

// Configure binds the field context.
func (r *Multi) Configure(fieldName string, config model.FieldConfig, page *model.PageConfig) error {
	r.bind(fieldName, config, page)
	return nil
}

// Render produces the multi-select control with its options and label.
func (r *Multi) Render() (string, error) {
	if err := r.ensureConfigured(); err != nil {
		return "", err
	}
	return renderSelect(&r.base, r.nameAttributeMulti(), "multiple", stringSlice(r.value()))
}

func renderSelect(b *base, nameAttr, multiple string, selected []string) (string, error) {
	behaviours, err := b.behaviours()
	if err != nil {
		return "", err
	}
	attrs := joinAttrs(
		`class="`+inputClass+`"`,
		multiple,
		b.attrTitle(),
		b.attrDisabled(),
		b.attrRequired(),
		b.attrAutofocus(),
		behaviours,
	)

	var builder strings.Builder
	builder.WriteString(`<div ` + b.wrapperID() + ` class="` + b.divClass() + `"` + b.wrapperVisibility() + `>`)
	builder.WriteString(b.hintText())
	builder.WriteString("\n")
	builder.WriteString(`<select ` + nameAttr + ` ` + b.fieldID() + withSpace(attrs) + `>`)
	builder.WriteString("\n")
	if multiple == "" && b.config.Prompt != "" {
		builder.WriteString(`<option value="">` + html.EscapeString(b.config.Prompt) + `</option>`)
		builder.WriteString("\n")
	}
	for _, line := range selectOptions(b.config, selected) {
		builder.WriteString(line)
		builder.WriteString("\n")
	}
	builder.WriteString(`</select>`)
	builder.WriteString("\n")
	builder.WriteString(b.label(b.idBase()))
	builder.WriteString("\n</div>")
	return builder.String(), nil
}

// selectOptions renders the option tags. Disabled options are only listed
// when one of them is the current value, so stale values stay visible.
func selectOptions(config model.FieldConfig, selected []string) []string {
	options := slices.Clone(config.Options)
	if config.SortItems {
		slices.SortStableFunc(options, func(a, b model.SelectOption) int {
			return strings.Compare(strings.ToLower(a.Text()), strings.ToLower(b.Text()))
		})
	}

	lines := make([]string, 0, len(options)+1)
	for _, opt := range options {
		lines = append(lines, optionTag(opt, slices.Contains(selected, opt.Value), false))
	}
	for _, opt := range config.DisabledOptions {
		if !slices.Contains(selected, opt.Value) {
			continue
		}
		if slices.ContainsFunc(options, func(o model.SelectOption) bool { return o.Value == opt.Value }) {
			continue
		}
		lines = append(lines, optionTag(opt, true, true))
	}
	return lines
}

func optionTag(opt model.SelectOption, selected, disabled bool) string {
	var builder strings.Builder
	builder.WriteString(`<option value="`)
	builder.WriteString(html.EscapeString(opt.Value))
	builder.WriteString(`"`)
	if selected {
		builder.WriteString(` selected`)
	}
	if disabled {
		builder.WriteString(` disabled`)
	}
	builder.WriteString(`>`)
	builder.WriteString(html.EscapeString(opt.Text()))
	builder.WriteString(`</option>`)
	return builder.String()
}
