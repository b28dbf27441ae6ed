// Package gui provides the desktop-automation blocks. The emitted code
// depends on pyautogui; the dependency note is baked into the templates.
package gui

import (
	"fmt"

	"github.com/vk/blockforge/internal/catalog"
)

// Module implements the catalog.Module interface for this package.
type Module struct{}

// TemplateMouseClick emits a click at the given coordinates, or at the
// current pointer position when either coordinate resolved to the
// empty-string sentinel.
func TemplateMouseClick(p catalog.ResolvedParams) string {
	x, y := p.Get("x"), p.Get("y")
	if x == `""` || y == `""` {
		return fmt.Sprintf("import pyautogui  # pip install pyautogui\npyautogui.click(button=%s)", p.Get("button"))
	}
	return fmt.Sprintf("import pyautogui  # pip install pyautogui\npyautogui.click(x=%s, y=%s, button=%s)", x, y, p.Get("button"))
}

// TemplateWriteText emits keystroke typing.
func TemplateWriteText(p catalog.ResolvedParams) string {
	return fmt.Sprintf("import pyautogui  # pip install pyautogui\npyautogui.write(%s, interval=%s)", p.Get("text"), p.Get("interval"))
}

// TemplatePressKey emits a single key press.
func TemplatePressKey(p catalog.ResolvedParams) string {
	return fmt.Sprintf("import pyautogui  # pip install pyautogui\npyautogui.press(%s)", p.Get("key"))
}

// TemplateTakeScreenshot emits a screenshot, saved to disk only when a file
// name was provided (empty-string sentinel otherwise).
func TemplateTakeScreenshot(p catalog.ResolvedParams) string {
	call := "pyautogui.screenshot()"
	if filename := p.Get("filename"); filename != `""` {
		call = fmt.Sprintf("pyautogui.screenshot(%s)", filename)
	}
	if store := p.Get("store_in"); store != "" {
		call = fmt.Sprintf("%s = %s", store, call)
	}
	return "import pyautogui  # pip install pyautogui\n" + call
}

// Register registers this package's templates.
func (m *Module) Register(r *catalog.Registry) {
	r.RegisterTemplate("TemplateMouseClick", TemplateMouseClick)
	r.RegisterTemplate("TemplateWriteText", TemplateWriteText)
	r.RegisterTemplate("TemplatePressKey", TemplatePressKey)
	r.RegisterTemplate("TemplateTakeScreenshot", TemplateTakeScreenshot)
}
