package model

import (
	"regexp"
	"strings"
)

// FieldType identifies the renderer family a field is drawn with.
type FieldType string

const (
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeDate     FieldType = "date"
	FieldTypeDatetime FieldType = "datetime"
	FieldTypeEmail    FieldType = "email"
	FieldTypeFile     FieldType = "file"
	FieldTypeHidden   FieldType = "hidden"
	FieldTypeInput    FieldType = "input"
	FieldTypeInteger  FieldType = "integer"
	FieldTypeLabel    FieldType = "label"
	FieldTypeList     FieldType = "list"
	FieldTypeLookup   FieldType = "lookup"
	FieldTypeMonth    FieldType = "month"
	FieldTypeMulti    FieldType = "multi"
	FieldTypeNumber   FieldType = "number"
	FieldTypeNumeric  FieldType = "numeric"
	FieldTypePassword FieldType = "password"
	FieldTypeSelect   FieldType = "select"
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeTime     FieldType = "time"
	FieldTypeURL      FieldType = "url"
)

// ExtendedColumnsKey is the form object key holding dynamically defined
// columns. Fields prefixed with ExtendedColumnPrefix read from it.
const (
	ExtendedColumnsKey   = "extended_columns"
	ExtendedColumnPrefix = "extcol_"
	BaseErrorKey         = "base"
)

// SelectOption is a value/label pair offered by select-like renderers. A
// missing label falls back to the value.
type SelectOption struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Text returns the display text of the option.
func (o SelectOption) Text() string {
	if o.Label == "" {
		return o.Value
	}
	return o.Label
}

// FieldConfig holds the declared options of a single field. Renderers treat
// it as read-only.
type FieldConfig struct {
	Renderer FieldType `json:"renderer,omitempty" yaml:"renderer,omitempty"`
	Subtype  FieldType `json:"subtype,omitempty" yaml:"subtype,omitempty"`

	Caption     string `json:"caption,omitempty" yaml:"caption,omitempty"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Hint        string `json:"hint,omitempty" yaml:"hint,omitempty"`
	Tooltip     string `json:"tooltip,omitempty" yaml:"tooltip,omitempty"`
	CSSClass    string `json:"css_class,omitempty" yaml:"css_class,omitempty"`

	// Pattern is either a preset name (see renderer.PatternPresets) or a
	// literal regular expression. PatternRegexp takes precedence when set.
	Pattern       string         `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	PatternRegexp *regexp.Regexp `json:"-" yaml:"-"`
	PatternMsg    string         `json:"pattern_msg,omitempty" yaml:"pattern_msg,omitempty"`

	MinValue  any  `json:"minvalue,omitempty" yaml:"minvalue,omitempty"`
	MaxValue  any  `json:"maxvalue,omitempty" yaml:"maxvalue,omitempty"`
	MinLength *int `json:"minlength,omitempty" yaml:"minlength,omitempty"`
	MaxLength *int `json:"maxlength,omitempty" yaml:"maxlength,omitempty"`

	MinValueDate string `json:"minvalue_date,omitempty" yaml:"minvalue_date,omitempty"`
	MaxValueDate string `json:"maxvalue_date,omitempty" yaml:"maxvalue_date,omitempty"`
	MinValueTime string `json:"minvalue_time,omitempty" yaml:"minvalue_time,omitempty"`
	MaxValueTime string `json:"maxvalue_time,omitempty" yaml:"maxvalue_time,omitempty"`

	Required bool `json:"required,omitempty" yaml:"required,omitempty"`
	Readonly bool `json:"readonly,omitempty" yaml:"readonly,omitempty"`
	Disabled bool `json:"disabled,omitempty" yaml:"disabled,omitempty"`

	Datalist        []string `json:"datalist,omitempty" yaml:"datalist,omitempty"`
	ForceUppercase  bool     `json:"force_uppercase,omitempty" yaml:"force_uppercase,omitempty"`
	ForceLowercase  bool     `json:"force_lowercase,omitempty" yaml:"force_lowercase,omitempty"`
	Autofocus       bool     `json:"autofocus,omitempty" yaml:"autofocus,omitempty"`
	Accept          string   `json:"accept,omitempty" yaml:"accept,omitempty"`
	CopyToClipboard bool     `json:"copy_to_clipboard,omitempty" yaml:"copy_to_clipboard,omitempty"`

	DefaultHour   *int `json:"default_hour,omitempty" yaml:"default_hour,omitempty"`
	DefaultMinute *int `json:"default_minute,omitempty" yaml:"default_minute,omitempty"`

	Options         []SelectOption `json:"options,omitempty" yaml:"options,omitempty"`
	DisabledOptions []SelectOption `json:"disabled_options,omitempty" yaml:"disabled_options,omitempty"`
	Prompt          string         `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	SortItems       bool           `json:"sort_items,omitempty" yaml:"sort_items,omitempty"`

	Rows int `json:"rows,omitempty" yaml:"rows,omitempty"`
	Cols int `json:"cols,omitempty" yaml:"cols,omitempty"`

	WithValue          any    `json:"with_value,omitempty" yaml:"with_value,omitempty"`
	Format             string `json:"format,omitempty" yaml:"format,omitempty"`
	AsBoolean          bool   `json:"as_boolean,omitempty" yaml:"as_boolean,omitempty"`
	IncludeHiddenField bool   `json:"include_hidden_field,omitempty" yaml:"include_hidden_field,omitempty"`

	LookupName string `json:"lookup_name,omitempty" yaml:"lookup_name,omitempty"`
	LookupKey  string `json:"lookup_key,omitempty" yaml:"lookup_key,omitempty"`
	LookupURL  string `json:"lookup_url,omitempty" yaml:"lookup_url,omitempty"`

	HideOnLoad       bool   `json:"hide_on_load,omitempty" yaml:"hide_on_load,omitempty"`
	InitiallyVisible *bool  `json:"initially_visible,omitempty" yaml:"initially_visible,omitempty"`
	Invisible        bool   `json:"invisible,omitempty" yaml:"invisible,omitempty"`
	InvisibleWhen    string `json:"invisible_when,omitempty" yaml:"invisible_when,omitempty"`
	HiddenWhen       string `json:"hidden_when,omitempty" yaml:"hidden_when,omitempty"`
}

// StartsHidden reports whether the field is rendered but hidden on load.
func (c FieldConfig) StartsHidden() bool {
	if c.HideOnLoad {
		return true
	}
	return c.InitiallyVisible != nil && !*c.InitiallyVisible
}

// NotifyRule asks the client to call URL when the field changes.
type NotifyRule struct {
	URL         string            `json:"url" yaml:"url"`
	ParamKeys   []string          `json:"param_keys" yaml:"param_keys"`
	ParamValues map[string]string `json:"param_values" yaml:"param_values"`
}

// SelectedRule populates the field from the selection of a sortable list.
type SelectedRule struct {
	Sortable string `json:"sortable" yaml:"sortable"`
}

// BehaviourKind names the client-side effect of a behaviour rule.
type BehaviourKind string

const (
	BehaviourChangeAffects        BehaviourKind = "change_affects"
	BehaviourEnableOnChange       BehaviourKind = "enable_on_change"
	BehaviourNotify               BehaviourKind = "notify"
	BehaviourPopulateFromSelected BehaviourKind = "populate_from_selected"
)

// BehaviourRule attaches client-side interactivity to a field. When several
// effects are filled in, Kind reports the first in declaration order.
type BehaviourRule struct {
	Field                string         `json:"field" yaml:"field"`
	ChangeAffects        []string       `json:"change_affects,omitempty" yaml:"change_affects,omitempty"`
	EnableOnChange       []string       `json:"enable_on_change,omitempty" yaml:"enable_on_change,omitempty"`
	Notify               []NotifyRule   `json:"notify,omitempty" yaml:"notify,omitempty"`
	PopulateFromSelected []SelectedRule `json:"populate_from_selected,omitempty" yaml:"populate_from_selected,omitempty"`
}

// Kind returns the effect kind of the rule, or "" when the rule is empty.
func (r BehaviourRule) Kind() BehaviourKind {
	switch {
	case len(r.ChangeAffects) > 0:
		return BehaviourChangeAffects
	case len(r.EnableOnChange) > 0:
		return BehaviourEnableOnChange
	case len(r.Notify) > 0:
		return BehaviourNotify
	case len(r.PopulateFromSelected) > 0:
		return BehaviourPopulateFromSelected
	default:
		return ""
	}
}

// PageOptions carries page-wide rendering options.
type PageOptions struct {
	Behaviours []BehaviourRule        `json:"behaviours,omitempty" yaml:"behaviours,omitempty"`
	Fields     map[string]FieldConfig `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// PageConfig is the per-page context shared by every node and renderer.
type PageConfig struct {
	Name       string
	FormObject map[string]any
	FormValues map[string]any
	FormErrors map[string][]string
	Options    PageOptions
}

// FieldErrors returns the non-empty error messages recorded for name.
func (p *PageConfig) FieldErrors(name string) []string {
	if p == nil || len(p.FormErrors) == 0 {
		return nil
	}
	messages := p.FormErrors[name]
	out := make([]string, 0, len(messages))
	for _, msg := range messages {
		if msg == "" {
			continue
		}
		out = append(out, msg)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// FieldConfig returns the page-level definition for name.
func (p *PageConfig) FieldConfig(name string) (FieldConfig, bool) {
	if p == nil || p.Options.Fields == nil {
		return FieldConfig{}, false
	}
	cfg, ok := p.Options.Fields[name]
	return cfg, ok
}

// Value resolves the bound value of a field. Re-submitted FormValues win over
// the FormObject, and extcol_ fields read from the extended columns map.
func (p *PageConfig) Value(name string) any {
	if p == nil {
		return nil
	}
	if p.FormValues != nil {
		if value, ok := p.FormValues[name]; ok {
			return value
		}
	}
	if column, ok := strings.CutPrefix(name, ExtendedColumnPrefix); ok {
		switch ext := p.FormObject[ExtendedColumnsKey].(type) {
		case map[string]any:
			return ext[column]
		case map[string]string:
			if value, ok := ext[column]; ok {
				return value
			}
		}
		return nil
	}
	return p.FormObject[name]
}
