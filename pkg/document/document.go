package document

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-layout/pkg/layout"
	"github.com/goliatone/go-layout/pkg/render"
	"github.com/goliatone/go-layout/pkg/render/template"
	"github.com/goliatone/go-layout/pkg/render/template/gotemplate"
)

// Name is the output renderer name registered in render registries.
const Name = "document"

const templateName = "document"

//go:embed templates/*.tpl
var embedded embed.FS

// Meta carries the document-level values around the page fragment.
type Meta struct {
	Title       string
	Lang        string
	Stylesheets []string
	Scripts     []string
	CSRFTag     string
	// Theme and ThemeVariant override the selector defaults for this
	// document.
	Theme        string
	ThemeVariant string
}

// Option configures a Renderer.
type Option func(*config)

type config struct {
	templates fs.FS
	dir       string
	engine    template.TemplateRenderer
	lang      string

	selector     theme.ThemeSelector
	themeName    string
	themeVariant string
}

// WithTemplatesFS replaces the embedded templates. The FS must provide
// document.tpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templates = files
		}
	}
}

// WithTemplatesDir loads document.tpl from dir and re-reads it on every
// render, so the template can be edited while a server runs.
func WithTemplatesDir(dir string) Option {
	return func(cfg *config) {
		cfg.dir = strings.TrimSpace(dir)
	}
}

// WithTemplateRenderer supplies a ready engine, bypassing the templates FS.
func WithTemplateRenderer(engine template.TemplateRenderer) Option {
	return func(cfg *config) {
		if engine != nil {
			cfg.engine = engine
		}
	}
}

// WithDefaultLang sets the lang attribute used when Meta.Lang is empty.
func WithDefaultLang(lang string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(lang); trimmed != "" {
			cfg.lang = trimmed
		}
	}
}

// Renderer renders complete documents. It satisfies render.Renderer.
type Renderer struct {
	engine template.TemplateRenderer
	lang   string

	selector     theme.ThemeSelector
	themeName    string
	themeVariant string
}

var _ render.Renderer = (*Renderer)(nil)

// New builds a document renderer.
func New(options ...Option) (*Renderer, error) {
	cfg := &config{lang: "en"}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}

	engine := cfg.engine
	if engine == nil {
		var engineOpts []gotemplate.Option
		switch {
		case cfg.dir != "":
			engineOpts = append(engineOpts, gotemplate.WithBaseDir(cfg.dir), gotemplate.WithReload(true))
		case cfg.templates != nil:
			engineOpts = append(engineOpts, gotemplate.WithFS(cfg.templates))
		default:
			sub, err := fs.Sub(embedded, "templates")
			if err != nil {
				return nil, fmt.Errorf("document: embedded templates: %w", err)
			}
			engineOpts = append(engineOpts, gotemplate.WithFS(sub))
		}
		built, err := gotemplate.New(engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("document: template engine: %w", err)
		}
		engine = built
	}

	return &Renderer{
		engine:       engine,
		lang:         cfg.lang,
		selector:     cfg.selector,
		themeName:    cfg.themeName,
		themeVariant: cfg.themeVariant,
	}, nil
}

func (r *Renderer) Name() string { return Name }

func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Render implements render.Renderer.
func (r *Renderer) Render(ctx context.Context, page *layout.Page, options render.RenderOptions) ([]byte, error) {
	out, err := r.RenderDocument(ctx, page, Meta{
		Title:        options.Title,
		Stylesheets:  options.Stylesheets,
		Scripts:      options.Scripts,
		CSRFTag:      options.CSRFTag,
		Theme:        options.Theme,
		ThemeVariant: options.ThemeVariant,
	})
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// RenderDocument renders page and embeds the fragment in the document
// template.
func (r *Renderer) RenderDocument(ctx context.Context, page *layout.Page, meta Meta) (string, error) {
	content, err := render.RenderPage(ctx, page, render.RenderOptions{CSRFTag: meta.CSRFTag})
	if err != nil {
		return "", err
	}

	lang := meta.Lang
	if lang == "" {
		lang = r.lang
	}
	title := meta.Title
	if title == "" && page.Config() != nil {
		title = page.Config().Name
	}

	assets, err := r.resolveTheme(meta.Theme, meta.ThemeVariant)
	if err != nil {
		return "", err
	}

	out, err := r.engine.RenderTemplate(templateName, map[string]any{
		"title":         title,
		"lang":          lang,
		"stylesheets":   toAny(slices.Concat(assets.Stylesheets, meta.Stylesheets)),
		"scripts":       toAny(slices.Concat(assets.Scripts, meta.Scripts)),
		"content":       content,
		"theme":         assets.Name,
		"theme_variant": assets.Variant,
		"theme_css":     assets.CSSVars,
	})
	if err != nil {
		return "", fmt.Errorf("document: %w", err)
	}
	return out, nil
}

func toAny(values []string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
