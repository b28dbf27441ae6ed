package hcl_adapter

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/blockforge/internal/model"
	"github.com/vk/blockforge/internal/schema"
)

// decodeInstances decodes the top level of a script document body into block
// instances, preserving source order.
func decodeInstances(body hcl.Body) ([]*model.Instance, hcl.Diagnostics) {
	content, diags := body.Content(schema.ScriptRootSchema)
	var out []*model.Instance
	for _, blk := range content.Blocks {
		inst, d := decodeInstance(blk)
		diags = append(diags, d...)
		if inst != nil {
			out = append(out, inst)
		}
	}
	return out, diags
}

// decodeInstance decodes one `block "<type>" "<id>"` entry, recursing into
// nested blocks.
func decodeInstance(blk *hcl.Block) (*model.Instance, hcl.Diagnostics) {
	content, diags := blk.Body.Content(schema.ScriptBlockSchema)

	inst := &model.Instance{
		TypeID: blk.Labels[0],
		ID:     blk.Labels[1],
		Params: make(map[string]string),
	}

	if attr, ok := content.Attributes["params"]; ok {
		val, d := attr.Expr.Value(nil)
		diags = append(diags, d...)
		if !d.HasErrors() {
			converted, err := convert.Convert(val, cty.Map(cty.String))
			if err != nil {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid params value",
					Detail:   "The params attribute must be a map of strings: " + err.Error(),
					Subject:  attr.Expr.Range().Ptr(),
				})
			} else if !converted.IsNull() {
				for key, value := range converted.AsValueMap() {
					if !value.IsNull() {
						inst.Params[key] = value.AsString()
					}
				}
			}
		}
	}

	if attr, ok := content.Attributes["collapsed"]; ok {
		val, d := attr.Expr.Value(nil)
		diags = append(diags, d...)
		if !d.HasErrors() {
			converted, err := convert.Convert(val, cty.Bool)
			if err != nil {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid collapsed value",
					Detail:   "The collapsed attribute must be a bool: " + err.Error(),
					Subject:  attr.Expr.Range().Ptr(),
				})
			} else if !converted.IsNull() {
				inst.Collapsed = converted.True()
			}
		}
	}

	for _, child := range content.Blocks {
		childInst, d := decodeInstance(child)
		diags = append(diags, d...)
		if childInst != nil {
			inst.Children = append(inst.Children, childInst)
		}
	}

	return inst, diags
}
