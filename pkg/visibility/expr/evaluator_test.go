package expr

import (
	"testing"

	"github.com/goliatone/go-layout/pkg/model"
	"github.com/goliatone/go-layout/pkg/visibility"
)

func customerContext(extras map[string]any) visibility.Context {
	page := &model.PageConfig{
		Name: "customer",
		FormObject: map[string]any{
			"active":  true,
			"status":  "open",
			"qty":     3,
			"blocked": "f",
			"tags":    []string{},
			model.ExtendedColumnsKey: map[string]any{
				"region": "EU",
			},
		},
		FormValues: map[string]any{"status": "closed"},
	}
	return visibility.ContextFromPage(page, extras)
}

func TestEvaluatorRules(t *testing.T) {
	t.Parallel()

	ctx := customerContext(map[string]any{"hide_network": true, "role": "clerk"})
	cases := []struct {
		name string
		rule string
		want bool
	}{
		{name: "empty", rule: "  ", want: true},
		{name: "truthy", rule: "active", want: true},
		{name: "negated", rule: "!active", want: false},
		{name: "missing is falsy", rule: "archived", want: false},
		{name: "bool-like string", rule: "blocked", want: false},
		{name: "empty slice", rule: "tags", want: false},
		{name: "submitted value wins", rule: `status == "closed"`, want: true},
		{name: "bare word operand", rule: "status != open", want: true},
		{name: "number as text", rule: "qty == 3", want: true},
		{name: "bool operand", rule: "blocked == false", want: true},
		{name: "extended column", rule: "extcol_region == 'EU'", want: true},
		{name: "missing extended column", rule: "extcol_segment", want: false},
		{name: "extras", rule: "extras.hide_network", want: true},
		{name: "extras comparison", rule: "extras.role == admin", want: false},
		{name: "conjunction", rule: "active && extcol_region == EU", want: true},
		{name: "disjunction", rule: `extras.role == admin || status == "closed"`, want: true},
		{name: "grouping", rule: `!(status == "void" || extras.role == admin) && active`, want: true},
		{name: "double negation", rule: "!!active", want: true},
	}

	eval := New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := eval.Eval("notes", tc.rule, ctx)
			if err != nil {
				t.Fatalf("Eval(%q) returned error: %v", tc.rule, err)
			}
			if got != tc.want {
				t.Fatalf("Eval(%q) = %v, want %v", tc.rule, got, tc.want)
			}
		})
	}
}

func TestEvaluatorReusesCompiledRules(t *testing.T) {
	t.Parallel()

	eval := New()
	rule := "!extras.admin && active"

	ok, err := eval.Eval("notes", rule, customerContext(map[string]any{"admin": false}))
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected rule to hold for non-admin")
	}

	ok, err = eval.Eval("notes", rule, customerContext(map[string]any{"admin": "1"}))
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected compiled rule to read the new context")
	}
}

func TestEvaluatorWithoutPage(t *testing.T) {
	t.Parallel()

	ok, err := New().Eval("notes", "active || extras.flag", visibility.ContextFromPage(nil, nil))
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected false without page or extras")
	}
}

func TestEvaluatorSyntaxErrors(t *testing.T) {
	t.Parallel()

	for _, rule := range []string{`a = 1`, `a & b`, `(a`, `a == "open`, `== 3`, `a ==`, `a b`, `!`, `a || )`} {
		if _, err := New().Eval("a", rule, visibility.Context{}); err == nil {
			t.Fatalf("expected error for %q", rule)
		}
	}
}
