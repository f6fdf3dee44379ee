package renderer

import (
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-layout/pkg/model"
)

// Datetime renders a date and a time control side by side plus the hidden
// input carrying the combined ISO 8601 value that is actually submitted.
type Datetime struct {
	base
}

var _ Renderer = (*Datetime)(nil)

// Configure binds the field context and validates the default clock values.
func (r *Datetime) Configure(fieldName string, config model.FieldConfig, page *model.PageConfig) error {
	if h := config.DefaultHour; h != nil && (*h < 0 || *h > 23) {
		return fmt.Errorf("%w: default hour must be a number from 0 to 23, got %d", ErrDefaultOutOfRange, *h)
	}
	if m := config.DefaultMinute; m != nil && (*m < 0 || *m > 59) {
		return fmt.Errorf("%w: default minute must be a number from 0 to 59, got %d", ErrDefaultOutOfRange, *m)
	}
	r.bind(fieldName, config, page)
	return nil
}

// Render produces the date, time and hidden inputs with their label.
func (r *Datetime) Render() (string, error) {
	if err := r.ensureConfigured(); err != nil {
		return "", err
	}

	value, hasTime, ok, err := parseDatetime(r.value())
	if err != nil {
		return "", err
	}

	var datePortion, timePortion, combined string
	if ok {
		datePortion = value.Format(dateLayout)
		combined = value.Format(datetimeLayout)
		if hasTime {
			timePortion = value.Format(timeLayout)
		}
	}
	if timePortion == "" {
		timePortion = r.defaultTime()
	}

	dateAttrs, err := r.attrList(r.config.MinValueDate, r.config.MaxValueDate)
	if err != nil {
		return "", err
	}
	timeAttrs, err := r.attrList(r.config.MinValueTime, r.config.MaxValueTime)
	if err != nil {
		return "", err
	}

	id := html.EscapeString(r.idBase())
	name := html.EscapeString(r.page.Name + "[" + r.fieldName)

	var builder strings.Builder
	builder.WriteString(`<div `)
	builder.WriteString(r.wrapperID())
	builder.WriteString(` class="`)
	builder.WriteString(r.divClass())
	builder.WriteString(`"`)
	builder.WriteString(r.wrapperVisibility())
	builder.WriteString(`>`)
	builder.WriteString(r.hintText())
	builder.WriteString("\n")

	builder.WriteString(`<input type="date" value="` + html.EscapeString(datePortion) + `" name="` + name + `_date]" id="` + id + `_date" data-datetime="date"` + withSpace(dateAttrs) + `>`)
	builder.WriteString("\n")
	builder.WriteString(`<input type="time" value="` + html.EscapeString(timePortion) + `" name="` + name + `_time]" id="` + id + `_time" data-datetime="time"` + withSpace(timeAttrs) + `>`)
	builder.WriteString("\n")
	builder.WriteString(`<input type="hidden" value="` + html.EscapeString(combined) + `" ` + r.nameAttribute() + ` ` + r.fieldID() + `>`)
	builder.WriteString("\n")
	builder.WriteString(r.label(r.idBase() + "_date"))
	builder.WriteString("\n</div>")
	return builder.String(), nil
}

// defaultTime seeds the displayed time when the value carries none. The
// hidden submitted value is never affected.
func (r *Datetime) defaultTime() string {
	if r.config.DefaultHour == nil {
		return ""
	}
	minute := 0
	if r.config.DefaultMinute != nil {
		minute = *r.config.DefaultMinute
	}
	return fmt.Sprintf("%02d:%02d", *r.config.DefaultHour, minute)
}

func (r *Datetime) attrList(minValue, maxValue string) (string, error) {
	behaviours, err := r.behaviours()
	if err != nil {
		return "", err
	}
	return joinAttrs(
		`class="`+inputClass+`"`,
		r.attrPlaceholder(),
		r.attrTitle(),
		boundAttr("min", minValue),
		boundAttr("max", maxValue),
		r.attrReadonly(),
		r.attrDisabled(),
		r.attrRequired(),
		behaviours,
	), nil
}

func boundAttr(name, value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return name + `="` + html.EscapeString(value) + `"`
}
