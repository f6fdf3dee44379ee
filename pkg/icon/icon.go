package icon

import (
	"fmt"
	"html"
	"slices"
	"strings"
	"sync"
)

// Name identifies a registered icon.
type Name string

// Built-in icons.
const (
	Question Name = "question"
	Copy     Name = "copy"
	Back     Name = "back"
	Info     Name = "info"
	CheckOn  Name = "checkon"
	CheckOff Name = "checkoff"
)

const baseClass = "cbl-icon"

var builtins = map[Name]string{
	Question: `<path d="M10 20a10 10 0 1 1 0-20 10 10 0 0 1 0 20zm2-13c0 .28-.21.8-.42 1L10 9.58c-.57.58-1 1.6-1 2.42v1h2v-1c0-.29.21-.8.42-1L13 9.42c.57-.58 1-1.6 1-2.42a4 4 0 1 0-8 0h2a2 2 0 1 1 4 0zm-3 8v2h2v-2H9z"/>`,
	Copy:     `<path d="M6 6V2c0-1.1.9-2 2-2h10a2 2 0 0 1 2 2v10a2 2 0 0 1-2 2h-4v4a2 2 0 0 1-2 2H2a2 2 0 0 1-2-2V8c0-1.1.9-2 2-2h4zm2 0h4a2 2 0 0 1 2 2v4h4V2H8v4zM2 8v10h10V8H2z"/>`,
	Back:     `<polygon points="3.828 9 9.899 2.929 8.485 1.515 0 10 .707 10.707 8.485 18.485 9.899 17.071 3.828 11 20 11 20 9 3.828 9"/>`,
	Info:     `<path d="M2.93 17.07A10 10 0 1 1 17.07 2.93 10 10 0 0 1 2.93 17.07zm12.73-1.41A8 8 0 1 0 4.34 4.34a8 8 0 0 0 11.32 11.32zM9 11V9h2v6H9v-4zm0-6h2v2H9V5z"/>`,
	CheckOn:  `<path d="M0 11l2-2 5 5L18 3l2 2L7 18z"/>`,
	CheckOff: `<polygon points="10 8.586 2.929 1.515 1.515 2.929 8.586 10 1.515 17.071 2.929 18.485 10 11.414 17.071 18.485 18.485 17.071 11.414 10 18.485 2.929 17.071 1.515 10 8.586"/>`,
}

var (
	mu    sync.RWMutex
	icons = loadBuiltins()
)

func loadBuiltins() map[Name]string {
	out := make(map[Name]string, len(builtins))
	for name, body := range builtins {
		out[name] = sanitizeBody(body)
	}
	return out
}

// Register adds or replaces an icon. body holds the SVG shapes (without the
// outer <svg> element); anything other than shape elements is removed.
func Register(name Name, body string) error {
	key := Name(strings.TrimSpace(string(name)))
	if key == "" {
		return fmt.Errorf("icon: name is required")
	}
	cleaned := sanitizeBody(body)
	if cleaned == "" {
		return fmt.Errorf("icon: %q has no drawable content", key)
	}

	mu.Lock()
	defer mu.Unlock()
	icons[key] = cleaned
	return nil
}

// Names returns the registered icon names sorted alphabetically.
func Names() []Name {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]Name, 0, len(icons))
	for name := range icons {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

type options struct {
	class string
	attrs []string
}

// Option customises a rendered icon.
type Option func(*options)

// WithClass appends CSS classes after the base icon class.
func WithClass(class string) Option {
	return func(o *options) {
		o.class = strings.TrimSpace(class)
	}
}

// WithAttrs appends pre-built attributes (e.g. `title="Copy"`) to the <svg>
// element. Callers are responsible for escaping attribute values.
func WithAttrs(attrs ...string) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// Render returns the icon as an inline <svg> element, or "" when name is not
// registered.
func Render(name Name, opts ...Option) string {
	mu.RLock()
	body, ok := icons[name]
	mu.RUnlock()
	if !ok {
		return ""
	}

	var cfg options
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var builder strings.Builder
	builder.WriteString(`<svg class="`)
	builder.WriteString(baseClass)
	if cfg.class != "" {
		builder.WriteByte(' ')
		builder.WriteString(html.EscapeString(cfg.class))
	}
	builder.WriteString(`" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 20 20"`)
	for _, attr := range cfg.attrs {
		if attr = strings.TrimSpace(attr); attr == "" {
			continue
		}
		builder.WriteByte(' ')
		builder.WriteString(attr)
	}
	builder.WriteByte('>')
	builder.WriteString(body)
	builder.WriteString(`</svg>`)
	return builder.String()
}
