package visibility

import (
	"strings"

	"github.com/goliatone/go-layout/pkg/model"
)

// ExtrasPrefix addresses caller extras instead of page values in a rule.
const ExtrasPrefix = "extras."

// Evaluator decides whether a rule holds for a field. Layout nodes use it for
// the invisible_when and hidden_when options.
type Evaluator interface {
	Eval(fieldName, rule string, ctx Context) (bool, error)
}

// Context holds the inputs a rule is evaluated against: the page being
// rendered and caller extras such as user roles or feature flags.
type Context struct {
	Page   *model.PageConfig
	Extras map[string]any
}

// ContextFromPage builds the Context for a field rule on page.
func ContextFromPage(page *model.PageConfig, extras map[string]any) Context {
	return Context{Page: page, Extras: extras}
}

// Value resolves name the way renderers bind fields, so re-submitted values
// and extcol_ columns apply. Names under ExtrasPrefix read Extras.
func (c Context) Value(name string) any {
	if key, ok := strings.CutPrefix(name, ExtrasPrefix); ok {
		return c.Extras[key]
	}
	return c.Page.Value(name)
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(fieldName, rule string, ctx Context) (bool, error)

// Eval delegates to the underlying function.
func (fn EvaluatorFunc) Eval(fieldName, rule string, ctx Context) (bool, error) {
	return fn(fieldName, rule, ctx)
}
