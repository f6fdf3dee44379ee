package pagedef_test

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-layout/pkg/layout"
	"github.com/goliatone/go-layout/pkg/pagedef"
	"github.com/goliatone/go-layout/pkg/testsupport"
)

func loadEmbedded(t *testing.T) *pagedef.Store {
	t.Helper()

	store, err := pagedef.LoadFS(pagedef.EmbeddedFS())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return store
}

func TestBuildCustomerPage(t *testing.T) {
	store := loadEmbedded(t)

	page, err := store.Build("customer_edit", pagedef.Data{
		FormObject: map[string]any{"name": "Acme", "active": false, "region": "nl"},
		ErrorPayload: map[string][]string{
			"customer[email]": {"is invalid"},
			"":                {"Record changed by another user"},
		},
		Extras: map[string]any{"hide_network": true},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	page.AddCSRFTag(layout.CSRFTag("_csrf", "tok"))

	out, err := page.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	testsupport.AssertContains(t, out,
		`<h2>Customer</h2>`,
		`<div class="crossbeams-info-note">`,
		`name="customer[name]"`,
		`value="Acme"`,
		`<input type="hidden" name="_method" value="PATCH">`,
		`name="_csrf" value="tok"`,
		`is invalid`,
		`Record changed by another user`,
		`<div class="crossbeams-col w-50">`,
		`<option value="nl" selected>Netherlands</option>`,
		`id="customer_notes_field_wrapper" class="crossbeams-field" hidden`,
		`value="09:30"`,
		`data-change-values="customer_visit_at"`,
		`data-grid-url="/customers/1/orders/grid"`,
	)
	testsupport.AssertNotContains(t, out, "ip_address")
}

func TestBuildHelpPage(t *testing.T) {
	page, err := loadEmbedded(t).Build("help", pagedef.Data{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	out, err := page.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	testsupport.AssertContains(t, out,
		"Editing customers</h1>",
		"<em>required</em>",
		"<p><em>Contact support for credit limit changes.</em></p>",
		"toggleVisibility('support', this)",
	)
}

func TestBuildUnknownPage(t *testing.T) {
	_, err := loadEmbedded(t).Build("missing", pagedef.Data{})
	if !errors.Is(err, pagedef.ErrUnknownPage) {
		t.Fatalf("expected ErrUnknownPage, got %v", err)
	}
}

func TestBuildPlacementAndConstructorErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
		msg  string
	}{
		{
			name: "section inside form",
			yaml: "pages:\n  p:\n    nodes:\n      - form:\n          action: /x\n          nodes:\n            - section: {nodes: []}\n",
			msg:  "nodes[0].form.nodes[0]: section is not allowed here",
		},
		{
			name: "link without url",
			yaml: "pages:\n  p:\n    nodes:\n      - link: {text: Back}\n",
			want: layout.ErrMissingOption,
			msg:  "nodes[0]:",
		},
		{
			name: "unknown notice type",
			yaml: "pages:\n  p:\n    nodes:\n      - notice: {text: hi, notice_type: loud}\n",
			want: layout.ErrInvalidOption,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, err := pagedef.LoadFS(fstest.MapFS{"p.yaml": {Data: []byte(tc.yaml)}})
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			_, err = store.Build("p", pagedef.Data{})
			if err == nil {
				t.Fatalf("expected build error")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if tc.msg != "" && !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("expected %q in %v", tc.msg, err)
			}
		})
	}
}

func TestBuildMergesExplicitErrors(t *testing.T) {
	page, err := loadEmbedded(t).Build("customer_edit", pagedef.Data{
		FormErrors:   map[string][]string{"name": {"is taken"}},
		ErrorPayload: map[string][]string{"/body/name": {"is too short", "is taken"}},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	got := page.Config().FieldErrors("name")
	if len(got) != 2 || got[0] != "is taken" || got[1] != "is too short" {
		t.Fatalf("unexpected merged errors: %v", got)
	}
}
