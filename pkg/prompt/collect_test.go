package prompt

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-layout/pkg/pagedef"
)

// scriptedDriver answers from queues and records what it was asked.
type scriptedDriver struct {
	answers  []string
	confirms []bool
	choices  [][]int

	messages  []string
	questions []Question
	asked     []Choice
}

func (s *scriptedDriver) Ask(_ context.Context, q Question) (string, error) {
	s.messages = append(s.messages, q.Message)
	s.questions = append(s.questions, q)
	if len(s.answers) == 0 {
		return "", errors.New("no answer scripted")
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (s *scriptedDriver) Confirm(_ context.Context, message, _ string, _ bool) (bool, error) {
	s.messages = append(s.messages, message)
	if len(s.confirms) == 0 {
		return false, errors.New("no confirm scripted")
	}
	answer := s.confirms[0]
	s.confirms = s.confirms[1:]
	return answer, nil
}

func (s *scriptedDriver) Choose(_ context.Context, c Choice) ([]int, error) {
	s.messages = append(s.messages, c.Message)
	s.asked = append(s.asked, c)
	if len(s.choices) == 0 {
		return nil, errors.New("no choice scripted")
	}
	answer := s.choices[0]
	s.choices = s.choices[1:]
	return answer, nil
}

const signupYAML = `
pages:
  signup:
    name: user
    fields:
      agree: {renderer: checkbox, caption: I agree}
      bio: {renderer: textarea}
      country:
        renderer: select
        required: true
        options: [{value: za, label: South Africa}, {value: nl}]
      first_name: {renderer: input, required: true}
      secret: {renderer: input, subtype: password}
      tags:
        renderer: multi
        options: [{value: a}, {value: b}, {value: c}]
      token: {renderer: hidden}
      created: {renderer: label}
    nodes:
      - field: first_name
`

func loadSignup(t *testing.T) pagedef.PageDef {
	t.Helper()

	store, err := pagedef.LoadFS(fstest.MapFS{"signup.yaml": {Data: []byte(signupYAML)}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def, _ := store.Page("signup")
	return def
}

func TestCollectValues(t *testing.T) {
	driver := &scriptedDriver{
		confirms: []bool{true},
		// bio, first_name, secret in field order
		answers: []string{"Hello", "Ada", "s3cret"},
		choices: [][]int{{1}, {0, 2}},
	}

	values, err := CollectValues(context.Background(), driver, loadSignup(t), map[string]any{"country": "nl"})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	want := map[string]any{
		"agree":      true,
		"bio":        "Hello",
		"country":    "nl",
		"first_name": "Ada",
		"secret":     "s3cret",
		"tags":       []string{"a", "c"},
	}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	wantMessages := []string{"I agree:", "Bio:", "Country:", "First Name:", "Secret:", "Tags:"}
	if diff := cmp.Diff(wantMessages, driver.messages); diff != "" {
		t.Fatalf("prompt order mismatch (-want +got):\n%s", diff)
	}

	country := driver.asked[0]
	if diff := cmp.Diff([]string{"South Africa", "nl"}, country.Options); diff != "" {
		t.Fatalf("required select should not offer none (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, country.Selected); diff != "" || country.Multiple {
		t.Fatalf("expected current value to be preselected (-want +got):\n%s", diff)
	}
	if tags := driver.asked[1]; !tags.Multiple {
		t.Fatalf("expected multi field to allow several options")
	}

	bio, secret := driver.questions[0], driver.questions[2]
	if !bio.Multi || bio.Secret {
		t.Fatalf("expected textarea question, got %+v", bio)
	}
	if !secret.Secret {
		t.Fatalf("expected password question to be secret")
	}
	if driver.questions[1].Validate == nil {
		t.Fatalf("expected required field to carry a validator")
	}
}

func TestCollectValuesAbort(t *testing.T) {
	_, err := CollectValues(context.Background(), &scriptedDriver{}, loadSignup(t), nil)
	if err == nil {
		t.Fatalf("expected error when the driver fails")
	}
}

func TestPickPage(t *testing.T) {
	driver := &scriptedDriver{choices: [][]int{{1}}}
	got, err := PickPage(context.Background(), driver, []string{"a", "b"})
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
	if _, err := PickPage(context.Background(), driver, nil); err == nil {
		t.Fatalf("expected error for empty page list")
	}
	driver.choices = [][]int{{}}
	if _, err := PickPage(context.Background(), driver, []string{"a"}); err == nil {
		t.Fatalf("expected error for an empty selection")
	}
}

func TestFieldValidator(t *testing.T) {
	def := loadSignup(t)
	cfg, _ := def.FieldConfig("first_name")
	validate := fieldValidator(cfg)
	if err := validate("  "); err == nil {
		t.Fatalf("expected required error")
	}
	if err := validate("Ada"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Required = false
	cfg.Pattern = "no_spaces"
	cfg.PatternMsg = "no spaces please"
	validate = fieldValidator(cfg)
	if err := validate("a b"); err == nil || err.Error() != "no spaces please" {
		t.Fatalf("expected pattern message, got %v", err)
	}
	if err := validate(""); err != nil {
		t.Fatalf("blank optional value should pass, got %v", err)
	}

	cfg.Pattern = "ipv4_address"
	if fieldValidator(cfg) != nil {
		t.Fatalf("uncompilable presets should not produce a validator")
	}
}
