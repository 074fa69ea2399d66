// Package library maintains the catalog of prompt templates: built-in
// factories, plugin-supplied definitions, and the registry that resolves a
// template ID into a ready-to-render prompt builder.
package library

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/kingrea/promptforge/internal/prompt"
)

// Params carries template-specific parameters (opaque to the registry).
type Params map[string]any

// String returns the named parameter as a trimmed string, or fallback when
// absent or not a string.
func (p Params) String(key, fallback string) string {
	if value, ok := p[key]; ok {
		if s, ok := value.(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return fallback
}

// Info describes a template's identity and intent.
type Info struct {
	ID          string
	Name        string
	Description string
	Version     string
}

// Validate ensures the info block is well-formed.
func (i Info) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("library: template id is required")
	}
	if i.Name == "" {
		return fmt.Errorf("library: name is required for %s", i.ID)
	}
	if i.Version == "" {
		return fmt.Errorf("library: version is required for %s", i.ID)
	}
	return nil
}

// Factory constructs a prompt builder from parameters.
type Factory func(Params) (*prompt.Builder, error)

// Template pairs identity with a builder factory.
type Template struct {
	Info  Info
	Build Factory
}

// Registry maintains known templates keyed by ID.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]Template
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{templates: map[string]Template{}}
}

// Register installs a template. Duplicate IDs are errors.
func (r *Registry) Register(tpl Template) error {
	if err := tpl.Info.Validate(); err != nil {
		return err
	}
	if tpl.Build == nil {
		return fmt.Errorf("library: factory is required for %s", tpl.Info.ID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.templates[tpl.Info.ID]; exists {
		return fmt.Errorf("library: %s already registered", tpl.Info.ID)
	}
	r.templates[tpl.Info.ID] = tpl
	return nil
}

// MustRegister panics if registration fails.
func (r *Registry) MustRegister(tpl Template) {
	if err := r.Register(tpl); err != nil {
		panic(err)
	}
}

// Resolve builds and validates a prompt for the given template ID.
func (r *Registry) Resolve(id string, params Params) (*prompt.Builder, error) {
	r.mu.RLock()
	tpl, ok := r.templates[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("library: unknown template %s", id)
	}
	builder, err := tpl.Build(params)
	if err != nil {
		return nil, fmt.Errorf("library: build %s: %w", id, err)
	}
	if err := builder.Validate(); err != nil {
		return nil, fmt.Errorf("library: template %s produced invalid prompt: %w", id, err)
	}
	return builder, nil
}

// Lookup returns template info by ID.
func (r *Registry) Lookup(id string) (Info, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tpl, ok := r.templates[id]
	return tpl.Info, ok
}

// Templates returns all registered template infos sorted by ID.
func (r *Registry) Templates() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()
	infos := make([]Info, 0, len(r.templates))
	for _, tpl := range r.templates {
		infos = append(infos, tpl.Info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}
