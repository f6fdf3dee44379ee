// Package document wraps a rendered page in a complete HTML document.
//
// The default layout is embedded and rendered with the pongo2 engine from
// pkg/render/template/gotemplate. Callers override it with their own
// templates (WithTemplatesFS, or WithTemplatesDir to edit a template while a
// server runs) or engine (WithTemplateRenderer). The template named
// "document" receives title, lang, stylesheets, scripts, the theme values and
// the page fragment as content.
//
//	doc, err := document.New(document.WithThemeSelector(selector, "acme", "dark"))
//	html, err := doc.RenderDocument(ctx, page, document.Meta{Title: "Customers"})
package document
