package renderer

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-layout/pkg/model"
)

// Renderer draws one field. Configure binds the field context and must be
// called before Render.
type Renderer interface {
	Configure(fieldName string, config model.FieldConfig, page *model.PageConfig) error
	Render() (string, error)
}

// Factory builds a fresh, unconfigured renderer.
type Factory func() Renderer

// inputAliases are field types drawn by the Input renderer. They become the
// renderer's subtype unless the config names one explicitly.
var inputAliases = map[model.FieldType]struct{}{
	model.FieldTypeDate:     {},
	model.FieldTypeEmail:    {},
	model.FieldTypeFile:     {},
	model.FieldTypeInteger:  {},
	model.FieldTypeMonth:    {},
	model.FieldTypeNumber:   {},
	model.FieldTypeNumeric:  {},
	model.FieldTypePassword: {},
	model.FieldTypeText:     {},
	model.FieldTypeTime:     {},
	model.FieldTypeURL:      {},
}

// Registry tracks renderer factories keyed by field type. Callers can
// register new field types or override the defaults.
type Registry struct {
	mu        sync.RWMutex
	factories map[model.FieldType]Factory
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		factories: make(map[model.FieldType]Factory),
	}
}

// NewDefaultRegistry constructs a registry holding the built-in renderers.
func NewDefaultRegistry() *Registry {
	registry := New()

	registry.MustRegister(model.FieldTypeInput, func() Renderer { return &Input{} })
	for fieldType := range inputAliases {
		registry.MustRegister(fieldType, func() Renderer { return &Input{} })
	}
	registry.MustRegister(model.FieldTypeCheckbox, func() Renderer { return &Checkbox{} })
	registry.MustRegister(model.FieldTypeDatetime, func() Renderer { return &Datetime{} })
	registry.MustRegister(model.FieldTypeHidden, func() Renderer { return &Hidden{} })
	registry.MustRegister(model.FieldTypeLabel, func() Renderer { return &Label{} })
	registry.MustRegister(model.FieldTypeList, func() Renderer { return &List{} })
	registry.MustRegister(model.FieldTypeLookup, func() Renderer { return &Lookup{} })
	registry.MustRegister(model.FieldTypeMulti, func() Renderer { return &Multi{} })
	registry.MustRegister(model.FieldTypeSelect, func() Renderer { return &Select{} })
	registry.MustRegister(model.FieldTypeTextarea, func() Renderer { return &Textarea{} })

	return registry
}

var defaultRegistry = NewDefaultRegistry()

// Default returns the shared registry holding the built-in renderers.
func Default() *Registry {
	return defaultRegistry
}

// Clone returns a copy of the registry to allow isolated registrations.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := New()
	for fieldType, factory := range r.factories {
		cloned.factories[fieldType] = factory
	}
	return cloned
}

// Register associates a factory with a field type. Existing entries are
// replaced.
func (r *Registry) Register(fieldType model.FieldType, factory Factory) error {
	key := normalize(fieldType)
	if key == "" {
		return fmt.Errorf("renderer: field type is required")
	}
	if factory == nil {
		return fmt.Errorf("renderer: factory for %q is nil", key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[key] = factory
	return nil
}

// MustRegister mirrors Register but panics on error.
func (r *Registry) MustRegister(fieldType model.FieldType, factory Factory) {
	if err := r.Register(fieldType, factory); err != nil {
		panic(err)
	}
}

// Factory fetches the factory registered for fieldType.
func (r *Registry) Factory(fieldType model.FieldType) (Factory, error) {
	key := normalize(fieldType)
	r.mu.RLock()
	factory, ok := r.factories[key]
	r.mu.RUnlock()
	if !ok {
		return nil, &UnknownFieldTypeError{Type: fieldType}
	}
	return factory, nil
}

// Types returns the registered field types sorted alphabetically.
func (r *Registry) Types() []model.FieldType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]model.FieldType, 0, len(r.factories))
	for fieldType := range r.factories {
		types = append(types, fieldType)
	}
	slices.Sort(types)
	return types
}

// Configure resolves the renderer for config.Renderer (input when empty) and
// binds it to the field. Input aliases such as integer or email carry over
// into the subtype so the control type follows the declared field type.
func (r *Registry) Configure(fieldName string, config model.FieldConfig, page *model.PageConfig) (Renderer, error) {
	fieldType := normalize(config.Renderer)
	if fieldType == "" {
		fieldType = model.FieldTypeInput
	}

	factory, err := r.Factory(fieldType)
	if err != nil {
		return nil, &UnknownFieldTypeError{Type: config.Renderer, Field: fieldName}
	}

	if _, ok := inputAliases[fieldType]; ok && config.Subtype == "" {
		config.Subtype = fieldType
	}

	renderer := factory()
	if err := renderer.Configure(fieldName, config, page); err != nil {
		return nil, fmt.Errorf("renderer: configure field %q: %w", fieldName, err)
	}
	return renderer, nil
}

// Render configures and renders a field in one step.
func (r *Registry) Render(fieldName string, config model.FieldConfig, page *model.PageConfig) (string, error) {
	renderer, err := r.Configure(fieldName, config, page)
	if err != nil {
		return "", err
	}
	out, err := renderer.Render()
	if err != nil {
		return "", fmt.Errorf("renderer: render field %q: %w", fieldName, err)
	}
	return out, nil
}

func normalize(fieldType model.FieldType) model.FieldType {
	return model.FieldType(strings.ToLower(strings.TrimSpace(string(fieldType))))
}
