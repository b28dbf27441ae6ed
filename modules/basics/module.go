// Package basics provides the starter blocks: printing, variables, comments
// and delays.
package basics

import (
	"fmt"
	"strings"

	"github.com/vk/blockforge/internal/catalog"
)

// Module implements the catalog.Module interface for this package.
type Module struct{}

// TemplatePrintMessage emits a print call.
func TemplatePrintMessage(p catalog.ResolvedParams) string {
	return fmt.Sprintf("print(%s)", p.Get("message"))
}

// TemplateDefineVariable emits an assignment. The name side is a symbol and
// arrives verbatim; the value side is already a literal or a reference.
func TemplateDefineVariable(p catalog.ResolvedParams) string {
	return fmt.Sprintf("%s = %s", p.Get("name"), p.Get("value"))
}

// TemplateComment turns the raw comment text into comment lines.
func TemplateComment(p catalog.ResolvedParams) string {
	text := p.Get("text")
	if text == "" {
		return "#"
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight("# "+line, " ")
	}
	return strings.Join(lines, "\n")
}

// TemplateWaitSeconds emits a sleep.
func TemplateWaitSeconds(p catalog.ResolvedParams) string {
	return fmt.Sprintf("import time\ntime.sleep(%s)", p.Get("seconds"))
}

// Register registers this package's templates.
func (m *Module) Register(r *catalog.Registry) {
	r.RegisterTemplate("TemplatePrintMessage", TemplatePrintMessage)
	r.RegisterTemplate("TemplateDefineVariable", TemplateDefineVariable)
	r.RegisterTemplate("TemplateComment", TemplateComment)
	r.RegisterTemplate("TemplateWaitSeconds", TemplateWaitSeconds)
}
