package renderer

import (
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/matzehuels/blockrender/pkg/errors"
	"github.com/matzehuels/blockrender/pkg/render/constants"
	"github.com/matzehuels/blockrender/pkg/theme"
)

// Registry maps renderer names to factories. It is safe for concurrent
// use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under name. Registering a name twice fails
// until the first registration is removed.
func (r *Registry) Register(name string, f Factory) error {
	if err := errors.ValidateRendererName(name); err != nil {
		return err
	}
	if f == nil {
		return errors.New(errors.ErrCodeInvalidRenderer, "renderer %q: nil factory", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; ok {
		return errors.New(errors.ErrCodeDuplicateRenderer, "renderer %q already registered", name)
	}
	r.factories[name] = f
	return nil
}

// Unregister removes name. Removing an unknown name does nothing.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.factories, name)
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Names lists the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := lo.Keys(r.factories)
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Init creates a fresh renderer for name and initializes it with the
// theme and constant overrides.
func (r *Registry) Init(name string, t *theme.Theme, o constants.Overrides) (*Renderer, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownRenderer, "unknown renderer %q (available: %v)", name, r.Names())
	}

	rd := f()
	if rd == nil {
		return nil, errors.New(errors.ErrCodeInvalidRenderer, "renderer %q: factory returned nil", name)
	}
	if rd.Name == "" {
		rd.Name = name
	}
	if err := rd.Init(t, o); err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "init renderer %q", name)
	}
	return rd, nil
}

// Describe returns the description of the named renderer.
func (r *Registry) Describe(name string) (string, bool) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return "", false
	}
	rd := f()
	if rd == nil {
		return "", false
	}
	return rd.Description, true
}
