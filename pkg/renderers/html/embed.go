package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle for consumers that want to
// extend the built-in form markup.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
