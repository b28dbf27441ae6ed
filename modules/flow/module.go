// Package flow provides the control-flow blocks: counted loops and
// condition loops. Both allow children; the compiler handles their bodies.
package flow

import (
	"fmt"

	"github.com/vk/blockforge/internal/catalog"
)

// Module implements the catalog.Module interface for this package.
type Module struct{}

// TemplateLoop emits a for-range header. The loop variable is a symbol that
// the compiler makes visible inside the body only.
func TemplateLoop(p catalog.ResolvedParams) string {
	return fmt.Sprintf("for %s in range(%s):", p.Get("loop_variable"), p.Get("count"))
}

// TemplateWhileCondition emits a while header. The condition is a raw
// sub-expression the user composes themselves.
func TemplateWhileCondition(p catalog.ResolvedParams) string {
	cond := p.Get("condition")
	if cond == "" {
		cond = "True"
	}
	return fmt.Sprintf("while %s:", cond)
}

// Register registers this package's templates.
func (m *Module) Register(r *catalog.Registry) {
	r.RegisterTemplate("TemplateLoop", TemplateLoop)
	r.RegisterTemplate("TemplateWhileCondition", TemplateWhileCondition)
}
