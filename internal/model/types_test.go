package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPageConfigValue(t *testing.T) {
	page := &PageConfig{
		Name: "customer",
		FormObject: map[string]any{
			"name":  "Acme",
			"email": "ops@acme.test",
			ExtendedColumnsKey: map[string]any{
				"region": "EU",
			},
		},
		FormValues: map[string]any{
			"email": "changed@acme.test",
		},
	}

	if got := page.Value("name"); got != "Acme" {
		t.Fatalf("expected form object value, got %v", got)
	}
	if got := page.Value("email"); got != "changed@acme.test" {
		t.Fatalf("expected re-submitted value to win, got %v", got)
	}
	if got := page.Value("extcol_region"); got != "EU" {
		t.Fatalf("expected extended column value, got %v", got)
	}
	if got := page.Value("extcol_missing"); got != nil {
		t.Fatalf("expected nil for missing extended column, got %v", got)
	}
}

func TestPageConfigValueWithoutExtendedColumns(t *testing.T) {
	page := &PageConfig{FormObject: map[string]any{}}
	if got := page.Value("extcol_region"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestPageConfigFieldErrors(t *testing.T) {
	page := &PageConfig{
		FormErrors: map[string][]string{
			"name":  {"is missing", "", "must be filled"},
			"empty": {""},
		},
	}
	if diff := cmp.Diff([]string{"is missing", "must be filled"}, page.FieldErrors("name")); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
	if got := page.FieldErrors("empty"); got != nil {
		t.Fatalf("expected nil for blank messages, got %v", got)
	}
	if got := (*PageConfig)(nil).FieldErrors("name"); got != nil {
		t.Fatalf("expected nil for nil page, got %v", got)
	}
}

func TestBehaviourRuleKind(t *testing.T) {
	tests := []struct {
		name string
		rule BehaviourRule
		want BehaviourKind
	}{
		{name: "change", rule: BehaviourRule{ChangeAffects: []string{"a"}}, want: BehaviourChangeAffects},
		{name: "enable", rule: BehaviourRule{EnableOnChange: []string{"1"}}, want: BehaviourEnableOnChange},
		{name: "notify", rule: BehaviourRule{Notify: []NotifyRule{{URL: "/x"}}}, want: BehaviourNotify},
		{name: "selected", rule: BehaviourRule{PopulateFromSelected: []SelectedRule{{Sortable: "s"}}}, want: BehaviourPopulateFromSelected},
		{name: "first wins", rule: BehaviourRule{EnableOnChange: []string{"1"}, Notify: []NotifyRule{{URL: "/x"}}}, want: BehaviourEnableOnChange},
		{name: "empty", rule: BehaviourRule{}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule.Kind(); got != tt.want {
				t.Fatalf("Kind() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFieldConfigStartsHidden(t *testing.T) {
	visible := true
	hidden := false
	if (FieldConfig{}).StartsHidden() {
		t.Fatalf("expected default config to be shown")
	}
	if !(FieldConfig{HideOnLoad: true}).StartsHidden() {
		t.Fatalf("expected hide_on_load to hide")
	}
	if !(FieldConfig{InitiallyVisible: &hidden}).StartsHidden() {
		t.Fatalf("expected initially_visible false to hide")
	}
	if (FieldConfig{InitiallyVisible: &visible}).StartsHidden() {
		t.Fatalf("expected initially_visible true to show")
	}
}
