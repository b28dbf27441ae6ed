package catalog

import (
	"fmt"
	"log/slog"
	"sort"
)

// Module is the interface a block package implements to contribute its
// template functions to a registry.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered template functions and block-type
// definitions for a single application instance. It is populated once at
// startup and read-only afterwards, so it may be shared across concurrent
// generation calls.
type Registry struct {
	TemplateRegistry map[string]Template
	TypeRegistry     map[string]*BlockType
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		TemplateRegistry: make(map[string]Template),
		TypeRegistry:     make(map[string]*BlockType),
	}
}

// RegisterTemplate registers a Go template function under a name that block
// type manifests refer to. Registering the same name twice is a programmer
// error and panics.
func (r *Registry) RegisterTemplate(name string, fn Template) {
	if _, exists := r.TemplateRegistry[name]; exists {
		panic(fmt.Sprintf("template with name '%s' already registered", name))
	}
	slog.Debug("Registering block template.", "name", name)
	r.TemplateRegistry[name] = fn
}

// AddBlockType adds a loaded block-type definition to the registry.
func (r *Registry) AddBlockType(bt *BlockType) error {
	if _, exists := r.TypeRegistry[bt.ID]; exists {
		return fmt.Errorf("block type '%s' declared more than once", bt.ID)
	}
	r.TypeRegistry[bt.ID] = bt
	return nil
}

// BlockType returns the definition for the given block type id.
func (r *Registry) BlockType(id string) (*BlockType, bool) {
	bt, ok := r.TypeRegistry[id]
	return bt, ok
}

// TypeIDs returns all registered block type ids in sorted order.
func (r *Registry) TypeIDs() []string {
	ids := make([]string, 0, len(r.TypeRegistry))
	for id := range r.TypeRegistry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
