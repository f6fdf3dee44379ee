package layout

import (
	"fmt"

	"github.com/goliatone/go-layout/pkg/model"
	"github.com/goliatone/go-layout/pkg/visibility"
)

// Field renders one form control through the page's renderer registry.
type Field struct {
	env    *env
	name   string
	config model.FieldConfig
}

var _ Node = (*Field)(nil)

func newField(e *env, name string, config *model.FieldConfig) *Field {
	f := &Field{env: e, name: name}
	if config != nil {
		f.config = *config
	} else if cfg, ok := e.page.FieldConfig(name); ok {
		f.config = cfg
	}
	return f
}

// Name returns the field name.
func (f *Field) Name() string { return f.name }

// Invisible reports whether the field is left out. A rule that fails to
// evaluate leaves the field visible so Render can report the error.
func (f *Field) Invisible() bool {
	if f.config.Invisible {
		return true
	}
	invisible, err := f.eval(f.config.InvisibleWhen)
	return err == nil && invisible
}

// Hidden reports whether the field is emitted but hidden on load.
func (f *Field) Hidden() bool {
	if f.config.StartsHidden() {
		return true
	}
	hidden, err := f.eval(f.config.HiddenWhen)
	return err == nil && hidden
}

// Render draws the field.
func (f *Field) Render() (string, error) {
	if _, err := f.eval(f.config.InvisibleWhen); err != nil {
		return "", err
	}
	hidden, err := f.eval(f.config.HiddenWhen)
	if err != nil {
		return "", err
	}

	config := f.config
	if hidden {
		config.HideOnLoad = true
	}
	return f.env.registry.Render(f.name, config, f.env.page)
}

func (f *Field) eval(rule string) (bool, error) {
	if rule == "" {
		return false, nil
	}
	ok, err := f.env.evaluator.Eval(f.name, rule, visibility.ContextFromPage(f.env.page, f.env.extras))
	if err != nil {
		return false, fmt.Errorf("layout: field %q rule %q: %w", f.name, rule, err)
	}
	return ok, nil
}
