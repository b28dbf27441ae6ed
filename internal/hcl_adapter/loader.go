// Package hcl_adapter loads block-type manifests and script documents from
// HCL files into the catalog and model packages.
package hcl_adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/blockforge/internal/catalog"
	"github.com/vk/blockforge/internal/ctxlog"
	"github.com/vk/blockforge/internal/fsutil"
	"github.com/vk/blockforge/internal/model"
	"github.com/vk/blockforge/internal/schema"
)

// Loader reads HCL configuration off disk. It is stateless; one instance may
// serve any number of loads.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadCatalog parses every .hcl file under the given paths as a block-type
// manifest and adds the declared types to the registry.
func (l *Loader) LoadCatalog(ctx context.Context, reg *catalog.Registry, paths ...string) error {
	logger := ctxlog.FromContext(ctx)

	files, err := l.findAll(paths)
	if err != nil {
		return err
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	parser := hclparse.NewParser()
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return fmt.Errorf("failed to parse manifest file %s: %w", file, diags)
		}

		var root schema.ManifestRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return fmt.Errorf("failed to decode manifest file %s: %w", file, diags)
		}

		for _, def := range root.BlockTypes {
			bt, err := translateBlockType(def)
			if err != nil {
				return fmt.Errorf("manifest file %s: %w", file, err)
			}
			if err := reg.AddBlockType(bt); err != nil {
				return fmt.Errorf("manifest file %s: %w", file, err)
			}
		}
	}

	logger.Debug("Catalog loading complete.", "types", len(reg.TypeRegistry))
	return nil
}

// LoadScript parses every .hcl file under the given path as a script
// document and returns the combined block tree, files in sorted-path order,
// blocks in source order within each file.
func (l *Loader) LoadScript(ctx context.Context, path string) (*model.Script, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := l.findAll([]string{path})
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered script files.", "count", len(files))

	script := &model.Script{
		Name: strings.TrimSuffix(filepath.Base(path), ".hcl"),
	}

	parser := hclparse.NewParser()
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse script file %s: %w", file, diags)
		}

		blocks, diags := decodeInstances(hclFile.Body)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode script file %s: %w", file, diags)
		}
		script.Blocks = append(script.Blocks, blocks...)
	}

	logger.Debug("Script loading complete.", "blocks", script.Count())
	return script, nil
}

func (l *Loader) findAll(paths []string) ([]string, error) {
	var all []string
	seen := make(map[string]struct{})
	for _, path := range paths {
		if path == "" {
			continue
		}
		files, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			all = append(all, f)
		}
	}
	return all, nil
}

func translateBlockType(def *schema.BlockTypeDef) (*catalog.BlockType, error) {
	bt := &catalog.BlockType{
		ID:             def.ID,
		Name:           def.Name,
		Category:       def.Category,
		AllowsChildren: def.Children,
		TemplateName:   def.Template,
		Params:         make([]catalog.ParamDef, 0, len(def.Params)),
	}
	for _, p := range def.Params {
		kind, err := catalog.KindFromString(p.Kind)
		if err != nil {
			return nil, fmt.Errorf("block type '%s', parameter '%s': %w", def.ID, p.ID, err)
		}
		symbol, err := catalog.SymbolScopeFromString(p.Symbol)
		if err != nil {
			return nil, fmt.Errorf("block type '%s', parameter '%s': %w", def.ID, p.ID, err)
		}
		name := p.Name
		if name == "" {
			name = p.ID
		}
		pd := catalog.ParamDef{
			ID:      p.ID,
			Name:    name,
			Kind:    kind,
			Default: p.Default,
			Options: p.Options,
			Symbol:  symbol,
		}
		if p.VisibleWhen != nil {
			pd.VisibleWhen = &catalog.VisibleWhen{
				Param: p.VisibleWhen.Param,
				AnyOf: p.VisibleWhen.AnyOf,
			}
		}
		bt.Params = append(bt.Params, pd)
	}
	return bt, nil
}
