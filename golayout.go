// Package golayout wires the page definition store, the renderer registry and
// the document renderer behind a couple of entry points for callers that just
// want HTML for a page id.
package golayout

import (
	"context"
	"fmt"
	"io/fs"
	"sync"

	"github.com/goliatone/go-layout/pkg/document"
	"github.com/goliatone/go-layout/pkg/layout"
	"github.com/goliatone/go-layout/pkg/pagedef"
	"github.com/goliatone/go-layout/pkg/render"
	theme "github.com/goliatone/go-theme"
)

// Data aliases pagedef.Data for callers binding request values.
type Data = pagedef.Data

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// Request describes a single page render.
type Request struct {
	Page     string
	Renderer string
	Data     Data
	Options  RenderOptions
	// Build options forwarded to the page constructor.
	Layout []layout.Option
}

// Generator renders stored pages through a renderer registry.
type Generator struct {
	mu              sync.RWMutex
	store           *pagedef.Store
	registry        *render.Registry
	defaultRenderer string
	documentOptions []document.Option
}

// Option configures a Generator.
type Option func(*Generator)

// WithRegistry replaces the default fragment+document registry.
func WithRegistry(registry *render.Registry) Option {
	return func(g *Generator) {
		if registry != nil {
			g.registry = registry
		}
	}
}

// WithDefaultRenderer sets the renderer used when a request names none.
func WithDefaultRenderer(name string) Option {
	return func(g *Generator) {
		if name != "" {
			g.defaultRenderer = name
		}
	}
}

// WithThemeSelector hands a go-theme selector to the document renderer of the
// default registry. Request.Options.Theme and ThemeVariant override name and
// variant per render.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(g *Generator) {
		g.documentOptions = append(g.documentOptions, document.WithThemeSelector(selector, name, variant))
	}
}

// WithDocumentOptions forwards options to the document renderer of the
// default registry.
func WithDocumentOptions(options ...document.Option) Option {
	return func(g *Generator) {
		g.documentOptions = append(g.documentOptions, options...)
	}
}

// NewRegistry returns a registry holding the fragment and document renderers.
func NewRegistry(options ...document.Option) (*render.Registry, error) {
	doc, err := document.New(options...)
	if err != nil {
		return nil, err
	}
	return render.NewRegistry(render.Fragment{}, doc)
}

// New builds a generator over store.
func New(store *pagedef.Store, options ...Option) (*Generator, error) {
	if store == nil {
		return nil, fmt.Errorf("golayout: page store is required")
	}
	g := &Generator{store: store, defaultRenderer: render.FragmentName}
	for _, option := range options {
		option(g)
	}
	if g.registry == nil {
		registry, err := NewRegistry(g.documentOptions...)
		if err != nil {
			return nil, err
		}
		g.registry = registry
	}
	if _, err := g.registry.Get(g.defaultRenderer); err != nil {
		return nil, fmt.Errorf("golayout: default renderer: %w", err)
	}
	return g, nil
}

// Store returns the page definitions the generator renders.
func (g *Generator) Store() *pagedef.Store {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.store
}

// SetStore swaps the page definitions, e.g. from a pagedef.Watcher reload.
func (g *Generator) SetStore(store *pagedef.Store) {
	if store == nil {
		return
	}
	g.mu.Lock()
	g.store = store
	g.mu.Unlock()
}

// Registry returns the renderer registry.
func (g *Generator) Registry() *render.Registry { return g.registry }

// Generate builds req.Page bound to req.Data and renders it. The content type
// of the chosen renderer is returned alongside the output.
func (g *Generator) Generate(ctx context.Context, req Request) ([]byte, string, error) {
	name := req.Renderer
	if name == "" {
		name = g.defaultRenderer
	}
	renderer, err := g.registry.Get(name)
	if err != nil {
		return nil, "", err
	}
	store := g.Store()
	page, err := store.Build(req.Page, req.Data, req.Layout...)
	if err != nil {
		return nil, "", err
	}
	if req.Options.Title == "" {
		if def, ok := store.Page(req.Page); ok {
			req.Options.Title = def.Title
		}
	}
	out, err := renderer.Render(ctx, page, req.Options)
	if err != nil {
		return nil, "", fmt.Errorf("golayout: render %s: %w", req.Page, err)
	}
	return out, renderer.ContentType(), nil
}

// LoadPages reads every page definition under fsys.
func LoadPages(fsys fs.FS) (*pagedef.Store, error) {
	return pagedef.LoadFS(fsys)
}

// SamplePages exposes the bundled page definitions.
func SamplePages() fs.FS {
	return pagedef.EmbeddedFS()
}

// GenerateHTML loads pages from fsys and renders id as a fragment.
func GenerateHTML(ctx context.Context, fsys fs.FS, id string, data Data) ([]byte, error) {
	store, err := LoadPages(fsys)
	if err != nil {
		return nil, err
	}
	g, err := New(store)
	if err != nil {
		return nil, err
	}
	out, _, err := g.Generate(ctx, Request{Page: id, Data: data})
	return out, err
}
