package testutil

import "github.com/vk/blockforge/internal/catalog"

// TemplatesModule registers an arbitrary set of template functions, letting
// tests define throwaway block types inline.
type TemplatesModule struct {
	Templates map[string]catalog.Template
}

// Register implements catalog.Module.
func (m *TemplatesModule) Register(r *catalog.Registry) {
	for name, fn := range m.Templates {
		r.RegisterTemplate(name, fn)
	}
}
