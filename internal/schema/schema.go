// Package schema declares the HCL shapes of the two document kinds the
// loader understands: block-type manifests and user script documents.
package schema

import "github.com/hashicorp/hcl/v2"

// --- Block-Type Manifest Schemas ---

// VisibleWhen gates a parameter's relevance on another parameter's value.
type VisibleWhen struct {
	Param string   `hcl:"param"`
	AnyOf []string `hcl:"any_of"`
}

// ParamDef declares a single parameter of a block type.
type ParamDef struct {
	ID          string       `hcl:"id,label"`
	Name        string       `hcl:"name,optional"`
	Kind        string       `hcl:"kind"`
	Default     string       `hcl:"default,optional"`
	Options     []string     `hcl:"options,optional"`
	Symbol      string       `hcl:"symbol,optional"`
	VisibleWhen *VisibleWhen `hcl:"visible_when,block"`
}

// BlockTypeDef represents a `block_type` manifest block.
type BlockTypeDef struct {
	ID       string      `hcl:"id,label"`
	Name     string      `hcl:"name"`
	Category string      `hcl:"category,optional"`
	Template string      `hcl:"template"`
	Children bool        `hcl:"children,optional"`
	Params   []*ParamDef `hcl:"param,block"`
}

// ManifestRoot is the top-level structure of a manifest file.
type ManifestRoot struct {
	BlockTypes []*BlockTypeDef `hcl:"block_type,block"`
	Remain     hcl.Body        `hcl:",remain"`
}

// --- Script Document Schemas ---

// Script documents nest `block "<type-id>" "<instance-id>"` blocks to
// arbitrary depth, so they are decoded with an explicit body schema and a
// recursive traversal rather than with gohcl struct tags.

// ScriptRootSchema matches the top level of a script document.
var ScriptRootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "block", LabelNames: []string{"type", "id"}},
	},
}

// ScriptBlockSchema matches the body of one `block` entry.
var ScriptBlockSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "params"},
		{Name: "collapsed"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "block", LabelNames: []string{"type", "id"}},
	},
}
