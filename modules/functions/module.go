// Package functions provides the call-a-named-function block. The function
// name and argument list are raw sub-expressions owned by the user; the
// optional result capture is a symbol made visible to later blocks.
package functions

import (
	"fmt"

	"github.com/vk/blockforge/internal/catalog"
)

// Module implements the catalog.Module interface for this package.
type Module struct{}

// TemplateCallFunction emits a function call, with assignment when a result
// capture name was given.
func TemplateCallFunction(p catalog.ResolvedParams) string {
	call := fmt.Sprintf("%s(%s)", p.Get("function_name"), p.Get("arguments"))
	if store := p.Get("store_in"); store != "" {
		return fmt.Sprintf("%s = %s", store, call)
	}
	return call
}

// Register registers this package's templates.
func (m *Module) Register(r *catalog.Registry) {
	r.RegisterTemplate("TemplateCallFunction", TemplateCallFunction)
}
