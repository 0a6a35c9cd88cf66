package formdef

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-quoteform/pkg/model"
)

// LoadFS walks the provided filesystem and parses every JSON/YAML definition
// document it finds. When fsys is nil or holds no definition files, the
// returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{definitions: make(map[string]model.Definition)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("formdef: read %s: %w", path, err)
		}

		def, err := Parse(data)
		if err != nil {
			return fmt.Errorf("formdef: file %s: %w", path, err)
		}

		key := strings.TrimSpace(def.Key)
		if key == "" {
			key = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			def.Key = key
		}
		if _, exists := store.definitions[key]; exists {
			return fmt.Errorf("formdef: duplicate definition %q (file %s)", key, path)
		}

		store.definitions[key] = def
		store.order = append(store.order, key)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Parse decodes a single definition document, accepting JSON first and
// falling back to YAML, then validates it by building a registry.
func Parse(data []byte) (model.Definition, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return model.Definition{}, fmt.Errorf("document is empty")
	}

	var def model.Definition
	if err := json.Unmarshal(data, &def); err != nil {
		def = model.Definition{}
		if err := yaml.Unmarshal(data, &def); err != nil {
			return model.Definition{}, fmt.Errorf("invalid JSON or YAML: %w", err)
		}
	}

	if _, err := model.NewRegistry(def); err != nil {
		return model.Definition{}, err
	}
	return def, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
