package formdef

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-quoteform/pkg/model"
)

//go:embed defs/*.yaml
var embeddedDefs embed.FS

// Keys of the definitions shipped with the module.
const (
	QuoteKey   = "quote"
	ContactKey = "contact"
)

// EmbeddedFS exposes the built-in definition documents so callers can extend
// or replace them with their own fs.FS.
func EmbeddedFS() fs.FS {
	return embeddedDefs
}

// Embedded loads a built-in definition by key.
func Embedded(key string) (model.Definition, error) {
	store, err := LoadFS(embeddedDefs)
	if err != nil {
		return model.Definition{}, err
	}
	def, ok := store.Definition(key)
	if !ok {
		return model.Definition{}, fmt.Errorf("formdef: no embedded definition %q", key)
	}
	return def, nil
}
