package document_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-layout/pkg/document"
	"github.com/goliatone/go-layout/pkg/layout"
	"github.com/goliatone/go-layout/pkg/model"
	"github.com/goliatone/go-layout/pkg/render"
	"github.com/goliatone/go-layout/pkg/testsupport"
)

func newPage(t *testing.T) *layout.Page {
	t.Helper()

	page := layout.NewPage(&model.PageConfig{Name: "customer", FormObject: map[string]any{"name": "Acme & Co"}})
	if err := page.Form(func(f *layout.Form) error {
		f.Action("/customers")
		f.AddField("name", nil)
		return nil
	}); err != nil {
		t.Fatalf("build: %v", err)
	}
	return page
}

func TestRenderDocumentEmbedsFragment(t *testing.T) {
	doc, err := document.New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := doc.RenderDocument(context.Background(), newPage(t), document.Meta{
		Title:       "Customers",
		Stylesheets: []string{"/css/app.css"},
		Scripts:     []string{"/js/app.js", " "},
		CSRFTag:     layout.CSRFTag("_csrf", "tok"),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	testsupport.AssertContains(t, out,
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<title>Customers</title>",
		`<link rel="stylesheet" href="/css/app.css">`,
		`<script src="/js/app.js"></script>`,
		`<form action="/customers"`,
		`value="Acme &amp; Co"`,
		`name="_csrf" value="tok"`,
	)
	if strings.Count(out, "<script") != 1 {
		t.Fatalf("expected blank script entries to be dropped:\n%s", out)
	}
}

func TestRenderDocumentDefaultsTitleToPageName(t *testing.T) {
	doc, err := document.New(document.WithDefaultLang("af"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err := doc.RenderDocument(context.Background(), newPage(t), document.Meta{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	testsupport.AssertContains(t, out, "<title>customer</title>", `lang="af"`)
}

func TestRenderDocumentCustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		"document.tpl": {Data: []byte("[{{ title }}]{{ content|safe }}")},
	}
	doc, err := document.New(document.WithTemplatesFS(files))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	page := layout.NewPage(&model.PageConfig{Name: "note"})
	if err := page.Section(func(s *layout.Section) error {
		return s.AddText("<b>hi</b>", layout.TextOptions{})
	}); err != nil {
		t.Fatalf("build: %v", err)
	}

	out, err := doc.Render(context.Background(), page, render.RenderOptions{Title: "T"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	testsupport.AssertHTML(t, `[T]<section class="crossbeams_layout">
  <div class="crossbeams-field no-flex">
    <b>hi</b>
  </div>
</section>`, string(out))
}

func TestRenderDocumentTemplatesDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "document.tpl")
	if err := os.WriteFile(path, []byte("<h1>{{ title }}</h1>"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	doc, err := document.New(document.WithTemplatesDir(dir))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := doc.RenderDocument(context.Background(), newPage(t), document.Meta{Title: "One"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "<h1>One</h1>" {
		t.Fatalf("unexpected output %q", out)
	}

	if err := os.WriteFile(path, []byte("<h2>{{ title }}</h2>"), 0o600); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	out, err = doc.RenderDocument(context.Background(), newPage(t), document.Meta{Title: "Two"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "<h2>Two</h2>" {
		t.Fatalf("expected edited template to be picked up, got %q", out)
	}
}

func TestRendererRegisters(t *testing.T) {
	doc, err := document.New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	reg := render.NewDefaultRegistry()
	if err := reg.Register(doc); err != nil {
		t.Fatalf("register: %v", err)
	}
	if diff := cmp.Diff([]string{document.Name, render.FragmentName}, reg.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if got := doc.ContentType(); got != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", got)
	}
}
