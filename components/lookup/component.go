package lookup

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-layout/pkg/model"
)

// Source supplies the options a lookup searches.
type Source interface {
	Options(ctx context.Context) ([]model.SelectOption, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]model.SelectOption, error)

func (f SourceFunc) Options(ctx context.Context) ([]model.SelectOption, error) { return f(ctx) }

// Static is a fixed option list.
type Static []model.SelectOption

func (s Static) Options(context.Context) ([]model.SelectOption, error) {
	return slices.Clone([]model.SelectOption(s)), nil
}

// Component holds the named sources and serves them over HTTP.
type Component struct {
	opts Options

	mu      sync.RWMutex
	sources map[string]Source
}

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	return &Component{
		opts:    NewOptions(fns...),
		sources: make(map[string]Source),
	}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	return c.opts
}

// Register adds a named source. Names must be unique and URL safe.
func (c *Component) Register(name string, source Source) error {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, "/?#") {
		return fmt.Errorf("lookup: invalid source name %q", name)
	}
	if source == nil {
		return fmt.Errorf("lookup: source %q is nil", name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.sources[name]; exists {
		return fmt.Errorf("lookup: source %q already registered", name)
	}
	c.sources[name] = source
	return nil
}

// MustRegister panics on registration failure.
func (c *Component) MustRegister(name string, source Source) {
	if err := c.Register(name, source); err != nil {
		panic(err)
	}
}

// Names returns the registered source names sorted alphabetically.
func (c *Component) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.sources))
	for name := range c.sources {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (c *Component) source(name string) (Source, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	src, ok := c.sources[name]
	return src, ok
}

// URL returns the search URL of source name when the component is mounted
// under basePath; use it as a field's lookup_url.
func (c *Component) URL(basePath, name string) string {
	return mountPath(basePath, c.opts.RoutePath) + "/" + url.PathEscape(name)
}

// LookupField returns a lookup field config searching source name.
func (c *Component) LookupField(basePath, name string) model.FieldConfig {
	return model.FieldConfig{
		Renderer:   model.FieldTypeLookup,
		LookupName: name,
		LookupURL:  c.URL(basePath, name),
	}
}
