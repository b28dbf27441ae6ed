package codegen

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/blockforge/internal/catalog"
	"github.com/vk/blockforge/internal/ctxlog"
	"github.com/vk/blockforge/internal/model"
)

const (
	// indentUnit is one level of nesting in the emitted Python.
	indentUnit = "    "
	// placeholderBody keeps an empty nestable block syntactically valid.
	placeholderBody = "pass"
	// maxDepth is a defensive cap; the editing layer guarantees acyclicity,
	// but a runaway tree must not blow the stack.
	maxDepth = 64

	// emptyTreeMessage is returned for a script with no blocks at all.
	emptyTreeMessage = "# Add blocks to build your script."
)

var headerLines = []string{
	"# Generated by blockforge. Do not edit by hand.",
	"# Some blocks require external packages noted inline.",
	"",
}

// Generate renders a whole block tree into Python source. It is
// deterministic and total: it never fails, whatever the tree contains.
func Generate(ctx context.Context, tree []*model.Instance, reg *catalog.Registry) string {
	if len(tree) == 0 {
		return emptyTreeMessage
	}
	lines := make([]string, 0, len(headerLines))
	lines = append(lines, headerLines...)
	lines = append(lines, Compile(ctx, tree, reg, 0, NewScope())...)
	return strings.Join(lines, "\n")
}

// Compile renders one level of the tree (and, recursively, everything below
// it) into indentation-prefixed lines. inherited is copied before use so
// symbol definitions never leak back to the caller.
func Compile(ctx context.Context, instances []*model.Instance, reg *catalog.Registry, depth int, inherited Scope) []string {
	logger := ctxlog.FromContext(ctx)

	if depth > maxDepth {
		logger.Warn("Maximum nesting depth exceeded, omitting subtree.", "depth", depth)
		return []string{indentOf(depth) + "# ! nesting too deep, subtree omitted"}
	}

	scope := inherited.Clone()
	var lines []string

	for _, inst := range instances {
		bt, ok := reg.BlockType(inst.TypeID)
		if !ok {
			// A dangling type reference must not abort the document.
			logger.Debug("Skipping block with unknown type.", "type", inst.TypeID, "id", inst.ID)
			continue
		}

		resolved := ResolveParams(bt, inst.Params, scope)

		text, err := renderTemplate(bt, resolved)
		if err != nil {
			logger.Warn("Block template failed.", "block", bt.Name, "id", inst.ID, "error", err)
			lines = append(lines, indentOf(depth)+fmt.Sprintf("# ! block %q (%s) failed: %v", bt.Name, inst.ID, err))
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			lines = append(lines, indentOf(depth)+line)
		}

		// Symbols this block introduces become visible to later siblings
		// (and, below, to its own children) only after its lines are out.
		for i := range bt.Params {
			if bt.Params[i].Symbol == catalog.SymbolAfter {
				scope.Add(resolved[bt.Params[i].ID])
			}
		}

		if bt.AllowsChildren {
			childScope := scope.Clone()
			for i := range bt.Params {
				if bt.Params[i].Symbol == catalog.SymbolChildren {
					childScope.Add(resolved[bt.Params[i].ID])
				}
			}
			if len(inst.Children) == 0 {
				lines = append(lines, indentOf(depth+1)+placeholderBody)
			} else {
				lines = append(lines, Compile(ctx, inst.Children, reg, depth+1, childScope)...)
			}
		}
	}

	return lines
}

func indentOf(depth int) string {
	return strings.Repeat(indentUnit, depth)
}

// renderTemplate invokes a block's emission template, converting a panic
// into an error so one malformed block cannot abort the whole document.
func renderTemplate(bt *catalog.BlockType, p catalog.ResolvedParams) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	if bt.Template == nil {
		return "", fmt.Errorf("no template bound for type %q", bt.ID)
	}
	return strings.TrimSuffix(bt.Template(p), "\n"), nil
}
