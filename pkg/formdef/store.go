package formdef

import (
	"strings"

	"github.com/goliatone/go-quoteform/pkg/model"
)

// Store keeps the parsed form definitions from definition documents. It is
// safe for concurrent readers when treated as immutable after construction.
type Store struct {
	definitions map[string]model.Definition
	order       []string
}

// Definition returns the definition registered under the supplied key.
func (s *Store) Definition(key string) (model.Definition, bool) {
	if s == nil {
		return model.Definition{}, false
	}
	def, ok := s.definitions[strings.TrimSpace(key)]
	return def, ok
}

// Keys lists the registered definition keys in load order.
func (s *Store) Keys() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}

// Empty reports whether the store holds any definitions.
func (s *Store) Empty() bool {
	return s == nil || len(s.definitions) == 0
}
