package model

import "github.com/vk/blockforge/internal/catalog"

// Instance is one placed, user-configured occurrence of a block type.
type Instance struct {
	// ID uniquely identifies this instance within its script.
	ID string
	// TypeID references a block type in the catalog.
	TypeID string
	// Params maps parameter id to the raw, unresolved string the user typed.
	Params map[string]string
	// Children holds nested instances, in document order. Only meaningful
	// for types whose catalog entry allows children.
	Children []*Instance
	// Collapsed is a display-only flag; generation ignores it.
	Collapsed bool
}

// Script is one user document: the ordered roots of a block tree.
type Script struct {
	Name   string
	Blocks []*Instance
}

// NewInstance creates an instance of the given type with the schema defaults
// copied into its parameter map.
func NewInstance(id string, bt *catalog.BlockType) *Instance {
	params := make(map[string]string, len(bt.Params))
	for i := range bt.Params {
		params[bt.Params[i].ID] = bt.Params[i].Default
	}
	return &Instance{ID: id, TypeID: bt.ID, Params: params}
}

// SetParam stores a raw parameter value on the instance.
func (in *Instance) SetParam(id, value string) {
	if in.Params == nil {
		in.Params = make(map[string]string)
	}
	in.Params[id] = value
}

// AddChild appends a child instance.
func (in *Instance) AddChild(child *Instance) {
	in.Children = append(in.Children, child)
}

// InsertChild inserts a child at the given position, clamping out-of-range
// positions to the nearest end.
func (in *Instance) InsertChild(pos int, child *Instance) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(in.Children) {
		pos = len(in.Children)
	}
	in.Children = append(in.Children, nil)
	copy(in.Children[pos+1:], in.Children[pos:])
	in.Children[pos] = child
}

// RemoveChild detaches the direct child with the given id, returning it (with
// its entire subtree) or nil if no direct child matches.
func (in *Instance) RemoveChild(id string) *Instance {
	for i, child := range in.Children {
		if child.ID == id {
			in.Children = append(in.Children[:i], in.Children[i+1:]...)
			return child
		}
	}
	return nil
}

// Remove detaches the instance with the given id anywhere in the script,
// returning true if something was removed. The detached subtree is dropped
// whole; children are never re-parented.
func (s *Script) Remove(id string) bool {
	for i, root := range s.Blocks {
		if root.ID == id {
			s.Blocks = append(s.Blocks[:i], s.Blocks[i+1:]...)
			return true
		}
	}
	for _, root := range s.Blocks {
		if removeDescendant(root, id) {
			return true
		}
	}
	return false
}

func removeDescendant(in *Instance, id string) bool {
	if in.RemoveChild(id) != nil {
		return true
	}
	for _, child := range in.Children {
		if removeDescendant(child, id) {
			return true
		}
	}
	return false
}

// Count returns the number of instances in the tree rooted at the script.
func (s *Script) Count() int {
	n := 0
	var walk func(list []*Instance)
	walk = func(list []*Instance) {
		n += len(list)
		for _, in := range list {
			walk(in.Children)
		}
	}
	walk(s.Blocks)
	return n
}
