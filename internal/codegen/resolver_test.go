package codegen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/blockforge/internal/catalog"
)

func textParam(id string) catalog.ParamDef {
	return catalog.ParamDef{ID: id, Name: id, Kind: catalog.KindText}
}

func TestResolveParams_DefaultsAndTrimming(t *testing.T) {
	t.Parallel()

	bt := &catalog.BlockType{
		ID: "demo",
		Params: []catalog.ParamDef{
			{ID: "message", Kind: catalog.KindText, Default: "hi"},
			{ID: "count", Kind: catalog.KindNumber, Default: "1"},
			{ID: "notes", Kind: catalog.KindMultiline, Default: ""},
		},
	}

	t.Run("missing values fall back to schema defaults", func(t *testing.T) {
		got := ResolveParams(bt, map[string]string{}, NewScope())
		assert.Equal(t, `"hi"`, got.Get("message"))
		assert.Equal(t, "1", got.Get("count"))
	})

	t.Run("non-multiline kinds are trimmed", func(t *testing.T) {
		got := ResolveParams(bt, map[string]string{"count": "  5  "}, NewScope())
		assert.Equal(t, "5", got.Get("count"))
	})

	t.Run("multiline keeps surrounding whitespace", func(t *testing.T) {
		got := ResolveParams(bt, map[string]string{"notes": "  spaced  "}, NewScope())
		assert.Equal(t, `"""  spaced  """`, got.Get("notes"))
	})
}

func TestResolveParams_SymbolParamsStayVerbatim(t *testing.T) {
	t.Parallel()

	bt := &catalog.BlockType{
		ID: "define_variable",
		Params: []catalog.ParamDef{
			{ID: "name", Kind: catalog.KindText, Symbol: catalog.SymbolAfter},
		},
	}

	got := ResolveParams(bt, map[string]string{"name": "  my_result "}, NewScope())
	assert.Equal(t, "my_result", got.Get("name"), "symbol names are trimmed but never quoted")
}

func TestResolveParams_ScopeReferences(t *testing.T) {
	t.Parallel()

	bt := &catalog.BlockType{
		ID:     "print_message",
		Params: []catalog.ParamDef{textParam("message")},
	}

	scope := NewScope()
	scope.Add("x")

	inScope := ResolveParams(bt, map[string]string{"message": "x"}, scope)
	assert.Equal(t, "x", inScope.Get("message"), "in-scope name resolves to a bare reference")

	outOfScope := ResolveParams(bt, map[string]string{"message": "y"}, scope)
	assert.Equal(t, `"y"`, outOfScope.Get("message"), "unknown name becomes a string literal")
}

func TestResolveParams_NumericKind(t *testing.T) {
	t.Parallel()

	bt := &catalog.BlockType{
		ID:     "wait_seconds",
		Params: []catalog.ParamDef{{ID: "seconds", Kind: catalog.KindNumber}},
	}

	cases := map[string]string{
		"5":     "5",
		"-2.5":  "-2.5",
		"1e3":   "1e3",
		"abc":   `"abc"`, // lossy but safe downgrade
		"":      `""`,
		"1 + 2": `"1 + 2"`,
	}
	for raw, want := range cases {
		got := ResolveParams(bt, map[string]string{"seconds": raw}, NewScope())
		assert.Equal(t, want, got.Get("seconds"), "raw %q", raw)
	}
}

func TestResolveParams_QuotedKinds(t *testing.T) {
	t.Parallel()

	bt := &catalog.BlockType{
		ID: "demo",
		Params: []catalog.ParamDef{
			{ID: "token", Kind: catalog.KindSecret},
			{ID: "mode", Kind: catalog.KindSelect, Options: []string{"a", "b"}},
			{ID: "enabled", Kind: catalog.KindToggle, Options: []string{"yes", "no"}},
		},
	}

	got := ResolveParams(bt, map[string]string{"token": "s3cr3t", "mode": "a", "enabled": "yes"}, NewScope())
	assert.Equal(t, `"s3cr3t"`, got.Get("token"))
	assert.Equal(t, `"a"`, got.Get("mode"))
	assert.Equal(t, `"yes"`, got.Get("enabled"))
}

func TestResolveParams_CallFunctionOverrides(t *testing.T) {
	t.Parallel()

	bt := &catalog.BlockType{
		ID: "call_function",
		Params: []catalog.ParamDef{
			textParam("function_name"),
			textParam("arguments"),
		},
	}

	got := ResolveParams(bt, map[string]string{
		"function_name": "max",
		"arguments":     `len(items), 10`,
	}, NewScope())
	assert.Equal(t, "max", got.Get("function_name"))
	assert.Equal(t, "len(items), 10", got.Get("arguments"), "user-composed sub-expression passes through untouched")
}

func TestResolveParams_HTTPPayloadGating(t *testing.T) {
	t.Parallel()

	bt := &catalog.BlockType{
		ID: "http_request",
		Params: []catalog.ParamDef{
			textParam("url"),
			{ID: "method", Kind: catalog.KindSelect, Default: "GET"},
			{ID: "headers", Kind: catalog.KindMultiline},
			{ID: "body", Kind: catalog.KindMultiline},
		},
	}

	t.Run("payload methods carry the body", func(t *testing.T) {
		for _, method := range []string{"POST", "PUT", "PATCH", "post"} {
			got := ResolveParams(bt, map[string]string{"method": method, "body": `{"a": 1}`}, NewScope())
			assert.Equal(t, `"""{"a": 1}"""`, got.Get("body"), "method %s", method)
		}
	})

	t.Run("non-payload methods resolve body and headers to None", func(t *testing.T) {
		for _, method := range []string{"GET", "DELETE", "HEAD"} {
			got := ResolveParams(bt, map[string]string{"method": method, "body": "ignored", "headers": "X: y"}, NewScope())
			assert.Equal(t, "None", got.Get("body"), "method %s", method)
			assert.Equal(t, "None", got.Get("headers"), "method %s", method)
		}
	})

	t.Run("method falls back to its default when absent", func(t *testing.T) {
		got := ResolveParams(bt, map[string]string{"body": "ignored"}, NewScope())
		assert.Equal(t, "None", got.Get("body"))
	})
}

func TestResolveParams_OptionalSentinels(t *testing.T) {
	t.Parallel()

	bt := &catalog.BlockType{
		ID: "mouse_click",
		Params: []catalog.ParamDef{
			{ID: "x", Kind: catalog.KindNumber, Default: ""},
			{ID: "y", Kind: catalog.KindNumber, Default: ""},
		},
	}

	empty := ResolveParams(bt, map[string]string{}, NewScope())
	assert.Equal(t, `""`, empty.Get("x"), "empty sentinel becomes an explicit empty-string literal")

	coords := ResolveParams(bt, map[string]string{"x": "100", "y": "240"}, NewScope())
	assert.Equal(t, "100", coords.Get("x"))
	assert.Equal(t, "240", coords.Get("y"))

	scope := NewScope()
	scope.Add("pos_x")
	ref := ResolveParams(bt, map[string]string{"x": "pos_x", "y": "0"}, scope)
	assert.Equal(t, "pos_x", ref.Get("x"), "non-empty sentinel values still resolve by the generic rules")
}

func TestResolveParams_Deterministic(t *testing.T) {
	t.Parallel()

	bt := &catalog.BlockType{
		ID: "demo",
		Params: []catalog.ParamDef{
			textParam("a"),
			{ID: "b", Kind: catalog.KindNumber},
			{ID: "c", Kind: catalog.KindMultiline},
		},
	}
	raw := map[string]string{"a": "x", "b": "nope", "c": "line1\nline2"}
	scope := NewScope()
	scope.Add("x")

	first := ResolveParams(bt, raw, scope)
	second := ResolveParams(bt, raw, scope)
	require.Empty(t, cmp.Diff(first, second), "identical inputs must yield identical results")
}
