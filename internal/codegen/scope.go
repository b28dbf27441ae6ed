package codegen

import "maps"

// Scope is the set of symbol names considered defined at a point in the
// traversal. Every recursive descent works on its own copy; a child subtree
// must never leak symbols back to its parent's continuation or to siblings.
type Scope map[string]struct{}

// NewScope returns an empty scope.
func NewScope() Scope {
	return make(Scope)
}

// Has reports whether name is defined in this scope.
func (s Scope) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Add marks name as defined. Empty names are ignored.
func (s Scope) Add(name string) {
	if name == "" {
		return
	}
	s[name] = struct{}{}
}

// Clone returns an independent copy of the scope.
func (s Scope) Clone() Scope {
	if s == nil {
		return make(Scope)
	}
	return maps.Clone(s)
}
