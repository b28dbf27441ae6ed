package codegen

import (
	"strings"

	"github.com/vk/blockforge/internal/catalog"
)

// overrideKey identifies a parameter whose resolution deviates from the
// generic kind-based rules. Overrides are keyed by (block type id, parameter
// id) because the quirk belongs to a specific block, not to a value kind.
type overrideKey struct {
	blockType string
	param     string
}

type overrideFunc func(bt *catalog.BlockType, def *catalog.ParamDef, value string, raw map[string]string, scope Scope) string

// overrides is consulted before the generic fallback. Adding a new block
// type's quirk is a table insertion, not a new conditional branch.
var overrides = map[overrideKey]overrideFunc{
	// The user composes these sub-expressions themselves; quoting them
	// would destroy the expression.
	{"call_function", "function_name"}: passthrough,
	{"call_function", "arguments"}:     passthrough,
	{"while_condition", "condition"}:   passthrough,

	// Comment text is emitted as comment lines, not as a string value.
	{"comment", "text"}: passthrough,

	// Request payloads only exist for methods that carry a body.
	{"http_request", "body"}:    payloadGated,
	{"http_request", "headers"}: payloadGated,

	// Optional values that use the empty string as a "not provided"
	// sentinel resolve to an explicit empty-string literal so templates
	// can test for it.
	{"mouse_click", "x"}:            optionalSentinel,
	{"mouse_click", "y"}:            optionalSentinel,
	{"take_screenshot", "filename"}: optionalSentinel,
}

func passthrough(_ *catalog.BlockType, _ *catalog.ParamDef, value string, _ map[string]string, _ Scope) string {
	return value
}

// payloadGated resolves a request body/header field to a triple-quoted
// literal when the selected HTTP method conventionally carries a payload,
// and to None otherwise.
func payloadGated(bt *catalog.BlockType, _ *catalog.ParamDef, value string, raw map[string]string, _ Scope) string {
	method := "GET"
	if def := bt.Param("method"); def != nil {
		method = rawValue(def, raw)
	}
	switch strings.ToUpper(method) {
	case "POST", "PUT", "PATCH":
		return TripleQuote(value)
	}
	return "None"
}

// optionalSentinel maps an empty raw value to an explicit empty-string
// literal; anything else resolves by the generic rules.
func optionalSentinel(_ *catalog.BlockType, def *catalog.ParamDef, value string, _ map[string]string, scope Scope) string {
	if value == "" {
		return `""`
	}
	return resolveGeneric(def, value, scope)
}
