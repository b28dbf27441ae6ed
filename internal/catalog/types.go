package catalog

import "fmt"

// Kind classifies the value a parameter holds. It decides which generic
// literal formatting rule applies when no per-block override matches.
type Kind int

const (
	// KindText is a free-form single-line string.
	KindText Kind = iota
	// KindNumber holds a numeric value.
	KindNumber
	// KindToggle is a yes/no style choice.
	KindToggle
	// KindSelect is a single choice from a fixed option list.
	KindSelect
	// KindMultiline is free-form text spanning multiple lines.
	KindMultiline
	// KindSecret is a masked single-line string (API keys, passwords).
	KindSecret
)

// String returns the manifest spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindToggle:
		return "toggle"
	case KindSelect:
		return "select"
	case KindMultiline:
		return "multiline"
	case KindSecret:
		return "secret"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindFromString parses the manifest spelling of a parameter kind.
func KindFromString(s string) (Kind, error) {
	switch s {
	case "text":
		return KindText, nil
	case "number":
		return KindNumber, nil
	case "toggle":
		return KindToggle, nil
	case "select":
		return KindSelect, nil
	case "multiline":
		return KindMultiline, nil
	case "secret":
		return KindSecret, nil
	}
	return 0, fmt.Errorf("unknown parameter kind %q", s)
}

// SymbolScope declares whether a parameter's value names a symbol, and if so
// where that symbol becomes visible.
type SymbolScope int

const (
	// SymbolNone means the parameter holds an ordinary value.
	SymbolNone SymbolScope = iota
	// SymbolAfter means the value names a symbol visible to later siblings
	// and their descendants (e.g. a variable definition, a result capture).
	SymbolAfter
	// SymbolChildren means the value names a symbol visible only inside the
	// block's own children (e.g. a loop's iteration variable).
	SymbolChildren
)

// SymbolScopeFromString parses the manifest spelling of a symbol scope.
// The empty string means the parameter defines no symbol.
func SymbolScopeFromString(s string) (SymbolScope, error) {
	switch s {
	case "":
		return SymbolNone, nil
	case "after":
		return SymbolAfter, nil
	case "children":
		return SymbolChildren, nil
	}
	return 0, fmt.Errorf("unknown symbol scope %q", s)
}

// VisibleWhen gates a parameter's relevance in the editing UI on the value of
// another parameter of the same block. Generation itself never consults it;
// it is part of the catalog contract so the UI and the manifests agree.
type VisibleWhen struct {
	Param string
	AnyOf []string
}

// ParamDef describes one parameter of a block type.
type ParamDef struct {
	ID          string
	Name        string
	Kind        Kind
	Default     string
	Options     []string
	Symbol      SymbolScope
	VisibleWhen *VisibleWhen
}

// ResolvedParams maps parameter ids to their final textual representation,
// ready to be substituted into an emission template.
type ResolvedParams map[string]string

// Get returns the resolved text for a parameter id, or "" if absent.
func (p ResolvedParams) Get(id string) string {
	return p[id]
}

// Template renders one block's resolved parameters into target-language
// source text. Templates must be pure: no external state, no side effects.
// A template may span multiple lines; the compiler handles indentation.
type Template func(p ResolvedParams) string

// BlockType is the immutable description of one kind of block.
type BlockType struct {
	ID             string
	Name           string
	Category       string
	AllowsChildren bool

	// TemplateName is the registered Go template this type binds to.
	TemplateName string
	// Template is resolved from TemplateName during registry validation.
	Template Template

	// Params is the declared parameter schema, in manifest order.
	Params []ParamDef
}

// Param returns the definition for the given parameter id, or nil.
func (bt *BlockType) Param(id string) *ParamDef {
	for i := range bt.Params {
		if bt.Params[i].ID == id {
			return &bt.Params[i]
		}
	}
	return nil
}
