package codegen

import (
	"strings"

	"github.com/vk/blockforge/internal/catalog"
)

// ResolveParams computes the final textual form of every parameter of one
// block instance, in schema order. raw is the instance's stored parameter
// map; missing entries fall back to the schema default. The result is a pure
// function of (block type, raw values, scope) and never fails: every raw
// value maps to some syntactically valid token.
func ResolveParams(bt *catalog.BlockType, raw map[string]string, scope Scope) catalog.ResolvedParams {
	resolved := make(catalog.ResolvedParams, len(bt.Params))
	for i := range bt.Params {
		def := &bt.Params[i]
		resolved[def.ID] = resolveParam(bt, def, raw, scope)
	}
	return resolved
}

func resolveParam(bt *catalog.BlockType, def *catalog.ParamDef, raw map[string]string, scope Scope) string {
	value := rawValue(def, raw)

	// A symbol-defining parameter's value IS an identifier, never a value
	// to quote.
	if def.Symbol != catalog.SymbolNone {
		return value
	}

	if fn, ok := overrides[overrideKey{bt.ID, def.ID}]; ok {
		return fn(bt, def, value, raw, scope)
	}

	return resolveGeneric(def, value, scope)
}

// rawValue returns the instance's stored value for a parameter, falling back
// to the schema default, trimmed unless the parameter is multi-line.
func rawValue(def *catalog.ParamDef, raw map[string]string) string {
	value, ok := raw[def.ID]
	if !ok {
		value = def.Default
	}
	if def.Kind != catalog.KindMultiline {
		value = strings.TrimSpace(value)
	}
	return value
}

// resolveGeneric applies the kind-based fallback rules: a value that exactly
// names an in-scope symbol resolves to that name verbatim; otherwise numbers
// stay verbatim when they parse (and degrade to a quoted string when they
// don't — lossy but safe), multi-line text becomes a triple-quoted literal,
// and everything else becomes a quoted string literal.
func resolveGeneric(def *catalog.ParamDef, value string, scope Scope) string {
	if value != "" && scope.Has(value) {
		return value
	}

	switch def.Kind {
	case catalog.KindNumber:
		if IsNumeric(value) {
			return value
		}
		return QuoteString(value)
	case catalog.KindMultiline:
		return TripleQuote(value)
	default:
		// text, secret, select, toggle
		return QuoteString(value)
	}
}
