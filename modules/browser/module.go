// Package browser provides the browser-automation blocks. The emitted code
// depends on selenium; the dependency note is baked into the templates.
package browser

import (
	"fmt"

	"github.com/vk/blockforge/internal/catalog"
)

// Module implements the catalog.Module interface for this package.
type Module struct{}

// TemplateOpenBrowser emits driver startup and navigation. A blank capture
// name falls back to "driver" locally so the .get call still has a target;
// only a declared symbol reaches the scope.
func TemplateOpenBrowser(p catalog.ResolvedParams) string {
	store := p.Get("store_in")
	if store == "" {
		store = "driver"
	}
	return fmt.Sprintf("from selenium import webdriver  # pip install selenium\n%s = webdriver.Chrome()\n%s.get(%s)", store, store, p.Get("url"))
}

// TemplateClickElement emits a CSS-selector click.
func TemplateClickElement(p catalog.ResolvedParams) string {
	return fmt.Sprintf("%s.find_element(\"css selector\", %s).click()", p.Get("driver"), p.Get("selector"))
}

// TemplateExtractText emits element-text extraction, capturing the text when
// a symbol name was given.
func TemplateExtractText(p catalog.ResolvedParams) string {
	expr := fmt.Sprintf("%s.find_element(\"css selector\", %s).text", p.Get("driver"), p.Get("selector"))
	if store := p.Get("store_in"); store != "" {
		return fmt.Sprintf("%s = %s", store, expr)
	}
	return expr
}

// TemplateCloseBrowser emits driver shutdown.
func TemplateCloseBrowser(p catalog.ResolvedParams) string {
	return fmt.Sprintf("%s.quit()", p.Get("driver"))
}

// Register registers this package's templates.
func (m *Module) Register(r *catalog.Registry) {
	r.RegisterTemplate("TemplateOpenBrowser", TemplateOpenBrowser)
	r.RegisterTemplate("TemplateClickElement", TemplateClickElement)
	r.RegisterTemplate("TemplateExtractText", TemplateExtractText)
	r.RegisterTemplate("TemplateCloseBrowser", TemplateCloseBrowser)
}
