// Package dataframe provides the tabular-data blocks. The emitted code
// depends on pandas; the dependency note is baked into the templates.
package dataframe

import (
	"fmt"

	"github.com/vk/blockforge/internal/catalog"
)

// Module implements the catalog.Module interface for this package.
type Module struct{}

// TemplateLoadCSV emits a read_csv, capturing the frame when a symbol name
// was given.
func TemplateLoadCSV(p catalog.ResolvedParams) string {
	call := fmt.Sprintf("pd.read_csv(%s)", p.Get("filename"))
	if store := p.Get("store_in"); store != "" {
		call = fmt.Sprintf("%s = %s", store, call)
	}
	return "import pandas as pd  # pip install pandas\n" + call
}

// TemplateFilterRows emits a query call. The condition is a quoted pandas
// query expression, which query() takes as a string.
func TemplateFilterRows(p catalog.ResolvedParams) string {
	call := fmt.Sprintf("%s.query(%s)", p.Get("frame"), p.Get("condition"))
	if store := p.Get("store_in"); store != "" {
		return fmt.Sprintf("%s = %s", store, call)
	}
	return call
}

// TemplateSaveCSV emits a to_csv call. The toggle arrives as a quoted
// literal and is compared against its quoted form.
func TemplateSaveCSV(p catalog.ResolvedParams) string {
	index := "False"
	if p.Get("include_index") == `"yes"` {
		index = "True"
	}
	return fmt.Sprintf("%s.to_csv(%s, index=%s)", p.Get("frame"), p.Get("filename"), index)
}

// TemplateShowFrame emits a print of the frame, or of its first rows only.
func TemplateShowFrame(p catalog.ResolvedParams) string {
	if p.Get("head_only") == `"yes"` {
		return fmt.Sprintf("print(%s.head())", p.Get("frame"))
	}
	return fmt.Sprintf("print(%s)", p.Get("frame"))
}

// Register registers this package's templates.
func (m *Module) Register(r *catalog.Registry) {
	r.RegisterTemplate("TemplateLoadCSV", TemplateLoadCSV)
	r.RegisterTemplate("TemplateFilterRows", TemplateFilterRows)
	r.RegisterTemplate("TemplateSaveCSV", TemplateSaveCSV)
	r.RegisterTemplate("TemplateShowFrame", TemplateShowFrame)
}
