// Package http provides the HTTP request block. The emitted code depends on
// the requests package; the dependency note is baked into the template text.
package http

import (
	"fmt"
	"strings"

	"github.com/vk/blockforge/internal/catalog"
)

// Module implements the catalog.Module interface for this package.
type Module struct{}

// TemplateHTTPRequest emits a requests.request call. Body and headers arrive
// either as triple-quoted literals (payload-carrying methods) or as None;
// headers are parsed into a dict line-by-line in the emitted code.
func TemplateHTTPRequest(p catalog.ResolvedParams) string {
	var b strings.Builder
	b.WriteString("import requests  # pip install requests\n")
	b.WriteString(fmt.Sprintf("_headers = {k.strip(): v.strip() for k, v in (line.split(\":\", 1) for line in (%s or \"\").splitlines() if \":\" in line)}\n", p.Get("headers")))

	call := fmt.Sprintf("requests.request(%s, %s, data=%s, headers=_headers or None)",
		p.Get("method"), p.Get("url"), p.Get("body"))
	if store := p.Get("store_in"); store != "" {
		b.WriteString(fmt.Sprintf("%s = %s", store, call))
	} else {
		b.WriteString(call)
	}
	return b.String()
}

// Register registers this package's templates.
func (m *Module) Register(r *catalog.Registry) {
	r.RegisterTemplate("TemplateHTTPRequest", TemplateHTTPRequest)
}
