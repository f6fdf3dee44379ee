package document_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-layout/pkg/document"
	"github.com/goliatone/go-layout/pkg/render"
	"github.com/goliatone/go-layout/pkg/testsupport"
)

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}

func acmeSelection(variant string) *theme.Selection {
	return &theme.Selection{
		Theme:   "acme",
		Variant: variant,
		Manifest: &theme.Manifest{
			Name:    "acme",
			Version: "1.0.0",
			Tokens:  map[string]string{"brand": "#123456"},
			Assets: theme.Assets{
				Prefix: "/assets/themes/acme",
				Files: map[string]string{
					"document.stylesheet":       "theme.css",
					"document.stylesheet.print": "print.css",
					"document.script":           "theme.js",
					"preact.vendor":             "vendor.js",
				},
			},
			Variants: map[string]theme.Variant{
				"dark": {
					Tokens: map[string]string{"brand": "#654321"},
					Assets: theme.Assets{
						Files: map[string]string{"document.stylesheet": "theme.dark.css"},
					},
				},
			},
		},
	}
}

func TestRenderDocumentResolvesThemeAssets(t *testing.T) {
	selector := &stubThemeSelector{selection: acmeSelection("dark")}
	doc, err := document.New(document.WithThemeSelector(selector, "acme", "dark"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := doc.RenderDocument(context.Background(), newPage(t), document.Meta{
		Stylesheets: []string{"/css/app.css"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	testsupport.AssertContains(t, out,
		`<html lang="en" data-theme="acme" data-theme-variant="dark">`,
		`<link rel="stylesheet" href="/assets/themes/acme/theme.dark.css">`,
		`<link rel="stylesheet" href="/assets/themes/acme/print.css">`,
		`<script src="/assets/themes/acme/theme.js"></script>`,
		`<style>:root{--brand:#654321;}</style>`,
	)
	testsupport.AssertNotContains(t, out, "vendor.js", "theme.css\"")
	if strings.Index(out, "theme.dark.css") > strings.Index(out, "/css/app.css") {
		t.Fatalf("expected theme stylesheets before page stylesheets:\n%s", out)
	}
	if len(selector.calls) != 1 || selector.calls[0] != (selectorCall{name: "acme", variant: "dark"}) {
		t.Fatalf("unexpected selector calls: %+v", selector.calls)
	}
}

func TestRenderOptionsOverrideThemeDefaults(t *testing.T) {
	selector := &stubThemeSelector{selection: acmeSelection("light")}
	doc, err := document.New(document.WithThemeSelector(selector, "acme", "dark"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := doc.Render(context.Background(), newPage(t), render.RenderOptions{Theme: "other", ThemeVariant: "light"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if selector.calls[0] != (selectorCall{name: "other", variant: "light"}) {
		t.Fatalf("unexpected selector call: %+v", selector.calls[0])
	}
	testsupport.AssertContains(t, string(out),
		`<link rel="stylesheet" href="/assets/themes/acme/theme.css">`,
		`--brand:#123456;`,
	)
}

func TestRenderDocumentThemeSelectionErrors(t *testing.T) {
	boom := errors.New("no such theme")
	doc, err := document.New(document.WithThemeSelector(&stubThemeSelector{err: boom}, "missing", ""))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	_, err = doc.RenderDocument(context.Background(), newPage(t), document.Meta{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected selector error, got %v", err)
	}
}

func TestRenderDocumentWithoutThemeSelection(t *testing.T) {
	doc, err := document.New(document.WithThemeSelector(&stubThemeSelector{}, "acme", ""))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := doc.RenderDocument(context.Background(), newPage(t), document.Meta{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	testsupport.AssertContains(t, out, `<html lang="en">`)
	testsupport.AssertNotContains(t, out, "<style>", "data-theme")
}
