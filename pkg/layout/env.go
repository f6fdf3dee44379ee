package layout

import (
	"github.com/goliatone/go-layout/pkg/model"
	"github.com/goliatone/go-layout/pkg/renderer"
	"github.com/goliatone/go-layout/pkg/visibility"
	"github.com/goliatone/go-layout/pkg/visibility/expr"
)

// env is shared by every node of one page.
type env struct {
	page      *model.PageConfig
	registry  *renderer.Registry
	evaluator visibility.Evaluator
	extras    map[string]any
}

// Option customises a page.
type Option func(*env)

// WithRegistry swaps the field renderer registry.
func WithRegistry(registry *renderer.Registry) Option {
	return func(e *env) {
		if registry != nil {
			e.registry = registry
		}
	}
}

// WithEvaluator swaps the evaluator used for invisible_when and hidden_when.
func WithEvaluator(evaluator visibility.Evaluator) Option {
	return func(e *env) {
		if evaluator != nil {
			e.evaluator = evaluator
		}
	}
}

// WithExtras exposes additional values to visibility rules under the
// `extras.` prefix.
func WithExtras(extras map[string]any) Option {
	return func(e *env) {
		e.extras = extras
	}
}

func newEnv(page *model.PageConfig, opts ...Option) *env {
	if page == nil {
		page = &model.PageConfig{}
	}
	e := &env{
		page:      page,
		registry:  renderer.Default(),
		evaluator: expr.New(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}
