// Package files provides the file read/write blocks.
package files

import (
	"fmt"

	"github.com/vk/blockforge/internal/catalog"
)

// Module implements the catalog.Module interface for this package.
type Module struct{}

// TemplateWriteFile emits a with-open write. The mode select arrives as a
// quoted literal, so it is compared against its quoted form here.
func TemplateWriteFile(p catalog.ResolvedParams) string {
	flag := `"w"`
	if p.Get("mode") == `"append"` {
		flag = `"a"`
	}
	return fmt.Sprintf("with open(%s, %s) as f:\n    f.write(%s)", p.Get("filename"), flag, p.Get("content"))
}

// TemplateReadFile emits a with-open read, capturing the contents when a
// symbol name was given.
func TemplateReadFile(p catalog.ResolvedParams) string {
	read := "f.read()"
	if store := p.Get("store_in"); store != "" {
		read = fmt.Sprintf("%s = f.read()", store)
	}
	return fmt.Sprintf("with open(%s) as f:\n    %s", p.Get("filename"), read)
}

// Register registers this package's templates.
func (m *Module) Register(r *catalog.Registry) {
	r.RegisterTemplate("TemplateWriteFile", TemplateWriteFile)
	r.RegisterTemplate("TemplateReadFile", TemplateReadFile)
}
