package pagedef_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-layout/pkg/model"
	"github.com/goliatone/go-layout/pkg/pagedef"
)

func TestLoadFSEmbedded(t *testing.T) {
	store, err := pagedef.LoadFS(pagedef.EmbeddedFS())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"customer_edit", "help"}, store.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}

	page, ok := store.Page("customer_edit")
	if !ok {
		t.Fatalf("customer_edit missing")
	}
	if page.Name != "customer" || page.Source != "customer.yaml" {
		t.Fatalf("unexpected page header: name=%q source=%q", page.Name, page.Source)
	}
	if got := page.Fields["email"].Subtype; got != model.FieldTypeEmail {
		t.Fatalf("email subtype = %q", got)
	}

	help, _ := store.Page("help")
	if help.Name != "help" {
		t.Fatalf("expected name to default to the id, got %q", help.Name)
	}
}

func TestLoadFSJSONFieldShorthand(t *testing.T) {
	files := fstest.MapFS{
		"pages.json": {Data: []byte(`{
			"pages": {
				"login": {
					"fields": {"user": {"renderer": "input"}},
					"nodes": [
						{"field": "user"},
						{"field": {"name": "secret", "config": {"renderer": "input", "subtype": "password"}}}
					]
				}
			}
		}`)},
	}

	store, err := pagedef.LoadFS(files)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	page, _ := store.Page("login")
	if diff := cmp.Diff("user", page.Nodes[0].Field.Name); diff != "" {
		t.Fatalf("shorthand name mismatch (-want +got):\n%s", diff)
	}
	if page.Nodes[0].Field.Config != nil {
		t.Fatalf("shorthand field should not carry a config")
	}
	if got := page.Nodes[1].Field.Config.Subtype; got != model.FieldTypePassword {
		t.Fatalf("secret subtype = %q", got)
	}
	if diff := cmp.Diff([]string{"secret", "user"}, page.FieldNames()); diff != "" {
		t.Fatalf("field names mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFSErrors(t *testing.T) {
	cases := []struct {
		name  string
		files fstest.MapFS
		want  string
	}{
		{
			name:  "empty file",
			files: fstest.MapFS{"a.yaml": {Data: []byte("  \n")}},
			want:  "is empty",
		},
		{
			name: "duplicate id",
			files: fstest.MapFS{
				"a.yaml": {Data: []byte("pages:\n  p:\n    nodes: [{field: x}]\n")},
				"b.yaml": {Data: []byte("pages:\n  p:\n    nodes: [{field: y}]\n")},
			},
			want: `duplicate page "p"`,
		},
		{
			name:  "unknown key",
			files: fstest.MapFS{"a.yaml": {Data: []byte("pages:\n  p:\n    nodez: []\n")}},
			want:  "nodez",
		},
		{
			name:  "no nodes",
			files: fstest.MapFS{"a.yaml": {Data: []byte("pages:\n  p:\n    title: x\n")}},
			want:  "has no nodes",
		},
		{
			name:  "ambiguous node",
			files: fstest.MapFS{"a.yaml": {Data: []byte("pages:\n  p:\n    nodes:\n      - field: x\n        text: {text: hi}\n")}},
			want:  "ambiguous (text, field)",
		},
		{
			name:  "empty node",
			files: fstest.MapFS{"a.yaml": {Data: []byte("pages:\n  p:\n    nodes:\n      - {}\n")}},
			want:  "nodes[0]: node declares no kind",
		},
		{
			name:  "column outside row",
			files: fstest.MapFS{"a.yaml": {Data: []byte("pages:\n  p:\n    nodes:\n      - column: {nodes: []}\n")}},
			want:  "column outside a row",
		},
		{
			name:  "row holding a field",
			files: fstest.MapFS{"a.yaml": {Data: []byte("pages:\n  p:\n    nodes:\n      - row:\n          nodes: [{field: x}]\n")}},
			want:  "rows may only hold columns",
		},
		{
			name:  "unknown width",
			files: fstest.MapFS{"a.yaml": {Data: []byte("pages:\n  p:\n    nodes:\n      - row:\n          nodes: [{column: {width: tiny, nodes: []}}]\n")}},
			want:  `unknown column width "tiny"`,
		},
		{
			name:  "invalid json",
			files: fstest.MapFS{"a.json": {Data: []byte(`{"pages": {"p": {"nodes": [}}}`)}},
			want:  "parse a.json",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pagedef.LoadFS(tc.files)
			if err == nil {
				t.Fatalf("expected error containing %q", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadFSNil(t *testing.T) {
	store, err := pagedef.LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
}
