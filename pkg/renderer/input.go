package renderer

import (
	"fmt"
	"html"
	"slices"
	"strings"

	"github.com/goliatone/go-layout/pkg/icon"
	"github.com/goliatone/go-layout/pkg/model"
	"github.com/spf13/cast"
)

// Input types accepting min/max and minlength/maxlength attributes.
var (
	rangeInputTypes  = []string{"date", "month", "week", "time", "number", "range"}
	lengthInputTypes = []string{"text", "search", "url", "tel", "email", "password"}
)

// Input renders a single <input> control whose HTML type follows the
// field's subtype (or renderer) option.
type Input struct {
	base
}

var _ Renderer = (*Input)(nil)

// Configure binds the field context.
func (r *Input) Configure(fieldName string, config model.FieldConfig, page *model.PageConfig) error {
	r.bind(fieldName, config, page)
	return nil
}

// Render produces the wrapped control, label and optional datalist.
func (r *Input) Render() (string, error) {
	if err := r.ensureConfigured(); err != nil {
		return "", err
	}

	datalist := r.datalist()
	attrs, err := r.attrList(datalist != "")
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(`<div `)
	builder.WriteString(r.wrapperID())
	builder.WriteString(` class="`)
	builder.WriteString(r.divClass())
	builder.WriteString(`"`)
	builder.WriteString(r.wrapperVisibility())
	builder.WriteString(`>`)
	builder.WriteString(r.hintText())
	builder.WriteString(r.copyPrefix())
	builder.WriteString("\n")

	builder.WriteString(`<input type="`)
	builder.WriteString(r.InputType())
	builder.WriteString(`" value="`)
	builder.WriteString(html.EscapeString(r.formattedValue()))
	builder.WriteString(`" `)
	builder.WriteString(r.nameAttribute())
	builder.WriteString(` `)
	builder.WriteString(r.fieldID())
	builder.WriteString(withSpace(attrs))
	builder.WriteString(`>`)
	builder.WriteString(r.copySuffix())
	builder.WriteString("\n")

	builder.WriteString(r.label(r.idBase()))
	builder.WriteString("\n")
	if datalist != "" {
		builder.WriteString(datalist)
		builder.WriteString("\n")
	}
	builder.WriteString(`</div>`)
	return builder.String(), nil
}

func (r *Input) subtype() model.FieldType {
	if r.config.Subtype != "" {
		return r.config.Subtype
	}
	return r.config.Renderer
}

// InputType is the HTML type attribute derived from the subtype.
func (r *Input) InputType() string {
	switch r.subtype() {
	case model.FieldTypeInteger, model.FieldTypeNumeric, model.FieldTypeNumber:
		return "number"
	case model.FieldTypeEmail:
		return "email"
	case model.FieldTypeURL:
		return "url"
	case model.FieldTypePassword:
		return "password"
	case model.FieldTypeDate:
		return "date"
	case model.FieldTypeMonth:
		return "month"
	case model.FieldTypeTime:
		return "time"
	case model.FieldTypeFile:
		return "file"
	default:
		return "text"
	}
}

func (r *Input) formattedValue() string {
	value := r.value()
	switch r.subtype() {
	case model.FieldTypeDate:
		return temporalValue(value, dateLayout)
	case model.FieldTypeMonth:
		return temporalValue(value, monthLayout)
	case model.FieldTypeTime:
		return temporalValue(value, timeLayout)
	default:
		return stringValue(value)
	}
}

// boundValue formats a min/max bound the way the value itself is formatted.
func (r *Input) boundValue(value any) string {
	switch r.subtype() {
	case model.FieldTypeDate:
		return temporalValue(value, dateLayout)
	case model.FieldTypeMonth:
		return temporalValue(value, monthLayout)
	case model.FieldTypeTime:
		return temporalValue(value, timeLayout)
	default:
		return cast.ToString(value)
	}
}

func (r *Input) copyPrefix() string {
	if !r.config.CopyToClipboard {
		return ""
	}
	return `<div class="cbl-copy-wrapper">`
}

func (r *Input) copySuffix() string {
	if !r.config.CopyToClipboard {
		return ""
	}
	id := html.EscapeString(r.idBase())
	return "\n" + `<button type="button" id="` + id + `_clip" class="cbl-clipcopy" data-clipboard="copy" title="Copy to clipboard">` +
		icon.Render(icon.Copy, icon.WithAttrs(`id='`+id+`_clip_i'`, `data-clipboard="copy"`)) +
		`</button></div>`
}

func (r *Input) datalist() string {
	if len(r.config.Datalist) == 0 {
		return ""
	}
	var builder strings.Builder
	builder.WriteString(`<datalist id="`)
	builder.WriteString(html.EscapeString(r.idBase()))
	builder.WriteString(`_listing">`)
	for _, opt := range r.config.Datalist {
		builder.WriteString("\n")
		builder.WriteString(`<option value="`)
		builder.WriteString(html.EscapeString(opt))
		builder.WriteString(`">`)
	}
	builder.WriteString("\n</datalist>")
	return builder.String()
}

// patternTitle is the tooltip explaining the pattern, computed from the
// config without writing back into it.
func (r *Input) patternTitle() string {
	if r.config.PatternMsg != "" {
		return r.config.PatternMsg
	}
	if preset, ok := PatternPresets[r.config.Pattern]; ok && r.config.PatternRegexp == nil {
		return preset.Title
	}
	return ""
}

func (r *Input) pattern() string {
	if r.config.PatternRegexp != nil {
		return stripAnchors(r.config.PatternRegexp.String())
	}
	if r.config.Pattern == "" {
		return ""
	}
	if preset, ok := PatternPresets[r.config.Pattern]; ok {
		return preset.Regex
	}
	return stripAnchors(r.config.Pattern)
}

func (r *Input) attrList(hasDatalist bool) (string, error) {
	minValue, err := r.rangeAttr("min", "minvalue", r.config.MinValue)
	if err != nil {
		return "", err
	}
	maxValue, err := r.rangeAttr("max", "maxvalue", r.config.MaxValue)
	if err != nil {
		return "", err
	}
	minLength, err := r.lengthAttrFor("minlength", r.config.MinLength)
	if err != nil {
		return "", err
	}
	maxLength, err := r.lengthAttrFor("maxlength", r.config.MaxLength)
	if err != nil {
		return "", err
	}
	behaviours, err := r.behaviours()
	if err != nil {
		return "", err
	}

	return joinAttrs(
		r.attrClass(),
		r.attrPlaceholder(),
		r.attrPatternTitle(),
		r.attrTitle(),
		r.attrPattern(),
		minValue,
		maxValue,
		minLength,
		maxLength,
		r.attrReadonly(),
		r.attrDisabled(),
		r.attrRequired(),
		r.attrStep(),
		r.attrUpper(),
		r.attrLower(),
		r.attrAccept(),
		r.attrAutofocus(),
		behaviours,
		r.attrDatalist(hasDatalist),
	), nil
}

func (r *Input) attrClass() string {
	classes := []string{inputClass}
	if r.config.ForceUppercase {
		classes = append(classes, "cbl-to-upper")
	}
	if r.config.ForceLowercase {
		classes = append(classes, "cbl-to-lower")
	}
	return `class="` + strings.Join(classes, " ") + `"`
}

func (r *Input) attrPatternTitle() string {
	title := r.patternTitle()
	if title == "" || r.config.Title != "" {
		return ""
	}
	return `title="` + html.EscapeString(title) + `"`
}

func (r *Input) attrPattern() string {
	pattern := r.pattern()
	if pattern == "" {
		return ""
	}
	return `pattern="` + html.EscapeString(pattern) + `"`
}

func (r *Input) rangeAttr(attr, option string, value any) (string, error) {
	if value == nil {
		return "", nil
	}
	text := strings.TrimSpace(r.boundValue(value))
	if text == "" {
		return "", nil
	}
	inputType := r.InputType()
	if !slices.Contains(rangeInputTypes, inputType) {
		return "", fmt.Errorf("%w: %s is not applicable for type %s", ErrAttributeNotApplicable, option, inputType)
	}
	return attr + `="` + html.EscapeString(text) + `"`, nil
}

func (r *Input) lengthAttrFor(option string, value *int) (string, error) {
	if value == nil {
		return "", nil
	}
	inputType := r.InputType()
	if !slices.Contains(lengthInputTypes, inputType) {
		return "", fmt.Errorf("%w: %s is not applicable for type %s", ErrAttributeNotApplicable, option, inputType)
	}
	return r.lengthAttr(option, value), nil
}

func (r *Input) attrStep() string {
	if r.subtype() == model.FieldTypeNumeric {
		return `step="any"`
	}
	return ""
}

func (r *Input) attrUpper() string {
	if r.config.ForceUppercase {
		return `onblur="this.value = this.value.toUpperCase()"`
	}
	return ""
}

func (r *Input) attrLower() string {
	if r.config.ForceLowercase {
		return `onblur="this.value = this.value.toLowerCase()"`
	}
	return ""
}

func (r *Input) attrAccept() string {
	if r.config.Accept == "" {
		return ""
	}
	return `accept="` + html.EscapeString(r.config.Accept) + `"`
}

func (r *Input) attrDatalist(hasDatalist bool) string {
	if !hasDatalist {
		return ""
	}
	return `list="` + html.EscapeString(r.idBase()) + `_listing"`
}
