package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-layout/pkg/model"
	"github.com/goliatone/go-layout/pkg/render"
)

func TestMapErrorPayload(t *testing.T) {
	fields := []string{"name", "email", "tags", "extcol_colour", "extcol_region"}

	payload := map[string][]string{
		"/body/name":                 {"Name is required"},
		"customer[email]":            {"Email invalid", " Email invalid "},
		"customer[tags][]":           {"Tags must be unique"},
		"$.body.tags[0]":             {"Tags must be unique"},
		"data.extcol_colour":         {"Unknown colour"},
		"/extended_columns/region":   {"Unknown region"},
		"non_field_errors":           {"Form level error"},
		"request/body/unknown-field": {"Should fall back to form errors"},
		"":                           {"Unscoped form error"},
		"name":                       {"  "},
	}

	want := map[string][]string{
		"name":          {"Name is required"},
		"email":         {"Email invalid"},
		"tags":          {"Tags must be unique"},
		"extcol_colour": {"Unknown colour"},
		"extcol_region": {"Unknown region"},
		model.BaseErrorKey: {
			"Unscoped form error",
			"Form level error",
			"Should fall back to form errors",
		},
	}
	if diff := cmp.Diff(want, render.MapErrorPayload("customer", fields, payload)); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestMapErrorPayloadEmpty(t *testing.T) {
	if got := render.MapErrorPayload("customer", []string{"name"}, nil); got != nil {
		t.Fatalf("expected nil form errors, got %v", got)
	}
	if got := render.MapErrorPayload("customer", []string{"name"}, map[string][]string{"name": {" "}}); got != nil {
		t.Fatalf("expected blank messages to be dropped, got %v", got)
	}
}

func TestMergeMessages(t *testing.T) {
	merged := render.MergeMessages([]string{" First ", "Second"}, "Second", "third", "  ")
	want := []string{"First", "Second", "third"}

	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merged messages mismatch (-want +got):\n%s", diff)
	}
}
