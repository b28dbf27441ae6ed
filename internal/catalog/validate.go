package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/blockforge/internal/ctxlog"
)

// Validate performs a strict parity check between manifests and Go code and
// binds each block type to its template function. It checks that every
// manifest names a registered template, that parameter ids are unique within
// a type, that visibility conditions reference real parameters, and that
// child-scoped symbols only appear on types that allow children.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	used := make(map[string]struct{}, len(r.TemplateRegistry))
	for _, id := range r.TypeIDs() {
		bt := r.TypeRegistry[id]

		fn, ok := r.TemplateRegistry[bt.TemplateName]
		if !ok {
			errs = append(errs, fmt.Sprintf("block type '%s': manifest names template '%s', but no Go template with that name is registered", id, bt.TemplateName))
		} else {
			bt.Template = fn
			used[bt.TemplateName] = struct{}{}
		}

		seen := make(map[string]struct{}, len(bt.Params))
		for i := range bt.Params {
			def := &bt.Params[i]
			if _, dup := seen[def.ID]; dup {
				errs = append(errs, fmt.Sprintf("block type '%s': parameter '%s' declared more than once", id, def.ID))
			}
			seen[def.ID] = struct{}{}

			if def.Symbol == SymbolChildren && !bt.AllowsChildren {
				errs = append(errs, fmt.Sprintf("block type '%s': parameter '%s' declares a child-scoped symbol, but the type does not allow children", id, def.ID))
			}
			if vw := def.VisibleWhen; vw != nil {
				if bt.Param(vw.Param) == nil {
					errs = append(errs, fmt.Sprintf("block type '%s': parameter '%s' has a visibility condition on unknown parameter '%s'", id, def.ID, vw.Param))
				}
			}
		}
	}

	for name := range r.TemplateRegistry {
		if _, ok := used[name]; !ok {
			logger.Debug("Template registered but not referenced by any manifest.", "name", name)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Catalog validation passed.", "types", len(r.TypeRegistry), "templates", len(r.TemplateRegistry))
	return nil
}
