package preset

import (
	"fmt"
	"slices"
	"strings"
)

// Registry is an immutable name → preset index. Build a new one to change
// the set; the server swaps registries on config reload.
type Registry struct {
	byName map[string]*Graph
	names  []string
}

// NewRegistry validates every preset and indexes it by name.
// Duplicate names are an ErrInvalidPreset.
func NewRegistry(graphs ...Graph) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Graph, len(graphs))}
	for i := range graphs {
		g := graphs[i]
		if err := Validate(&g); err != nil {
			return nil, err
		}
		if _, dup := r.byName[g.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidPreset, g.Name)
		}
		r.byName[g.Name] = &g
		r.names = append(r.names, g.Name)
	}
	slices.Sort(r.names)

	return r, nil
}

// Get returns the preset called name.
func (r *Registry) Get(name string) (*Graph, error) {
	if r != nil {
		if g, ok := r.byName[name]; ok {
			return g, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
}

// Names lists preset names in lexical order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}

	return slices.Clone(r.names)
}

// List returns the presets sorted by name.
func (r *Registry) List() []Graph {
	if r == nil {
		return nil
	}
	out := make([]Graph, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, *r.byName[name])
	}

	return out
}

// Len reports how many presets are registered.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.names)
}

// String renders "n presets: a, b, …" for logs.
func (r *Registry) String() string {
	return fmt.Sprintf("%d presets: %s", r.Len(), strings.Join(r.Names(), ", "))
}
