package gotemplate

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-layout/pkg/icon"
	"github.com/goliatone/go-layout/pkg/render/template"
)

// Extension is appended to template names that carry none.
const Extension = ".tpl"

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	baseDir string
	files   fs.FS
	reload  bool
}

// WithBaseDir loads templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from files. It takes precedence over WithBaseDir for
// names both provide.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.files = files
	}
}

// WithReload re-reads templates on every render, for editing templates
// while a server runs.
func WithReload(reload bool) Option {
	return func(cfg *config) {
		cfg.reload = reload
	}
}

// Engine renders document templates with pongo2.
type Engine struct {
	set *pongo2.TemplateSet
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine. A base directory or an fs.FS is required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.baseDir == "" && cfg.files == nil {
		return nil, errors.New("gotemplate: templates dir or fs.FS required")
	}

	var loaders []pongo2.TemplateLoader
	if cfg.files != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.files))
	}
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: templates dir: %w", err)
		}
		loaders = append(loaders, loader)
	}

	set := pongo2.NewSet("document", loaders...)
	set.Debug = cfg.reload
	registerFilters()
	return &Engine{set: set}, nil
}

// RenderTemplate executes the named template. The extension is optional.
func (e *Engine) RenderTemplate(name string, data map[string]any, out ...io.Writer) (string, error) {
	if !strings.HasSuffix(name, Extension) {
		name += Extension
	}
	tmpl, err := e.set.FromCache(name)
	if err != nil {
		return "", fmt.Errorf("gotemplate: load %q: %w", name, err)
	}
	rendered, err := tmpl.Execute(pongo2.Context(data))
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute %q: %w", name, err)
	}
	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

// registerFilters adds the filters document templates use. pongo2 filters
// are process wide.
func registerFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("icon") {
		_ = pongo2.RegisterFilter("icon", filterIcon)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterIcon renders a registered icon as safe markup; the parameter, when
// given, adds CSS classes: {{ "info"|icon:"blue" }}.
func filterIcon(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	var opts []icon.Option
	if param != nil && param.String() != "" {
		opts = append(opts, icon.WithClass(param.String()))
	}
	return pongo2.AsSafeValue(icon.Render(icon.Name(in.String()), opts...)), nil
}
