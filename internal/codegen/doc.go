// Package codegen turns a tree of block instances into Python source text.
//
// It has two halves. The resolver decides, per parameter, whether the raw
// value the user typed becomes a symbol reference, a numeric literal, a
// quoted string, or a multi-line string, consulting a per-block-type override
// table before the generic kind-based rules. The compiler walks the tree in
// document order, feeds resolved parameters to each type's emission template,
// indents the result by nesting depth, and threads the set of defined symbol
// names down to children and across later siblings.
//
// Generation is a pure function of (tree, registry): it holds no shared
// state, touches no external resources, and never fails — malformed blocks
// degrade to commented diagnostics or safe literals instead of aborting the
// whole document.
package codegen
