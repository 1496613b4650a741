package primitives

import (
	"embed"
	"io/fs"
)

//go:embed templates/primitives/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the built-in templates rooted so that names read
// "primitives/input.tpl".
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
