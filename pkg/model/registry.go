package model

import (
	"errors"
	"fmt"
)

// Registry is the immutable, pre-indexed view of a Definition. It is built
// once at initialization so the engine never resolves fields or categories
// through repeated slice scans at validation time.
type Registry struct {
	def        Definition
	fields     map[Name]Field
	order      []Name
	categories map[Category]CategoryInfo
	catOrder   []Category
}

// NewRegistry validates a Definition and indexes it. Field names must be
// unique and non-empty; category-tagged fields must reference a declared
// category; cross-field rules must reference declared fields.
func NewRegistry(def Definition) (*Registry, error) {
	if len(def.Fields) == 0 {
		return nil, errors.New("model: definition has no fields")
	}

	r := &Registry{
		def:        def,
		fields:     make(map[Name]Field, len(def.Fields)),
		order:      make([]Name, 0, len(def.Fields)),
		categories: make(map[Category]CategoryInfo, len(def.Categories)),
		catOrder:   make([]Category, 0, len(def.Categories)),
	}

	for _, info := range def.Categories {
		if info.Key == "" {
			return nil, errors.New("model: category key is required")
		}
		if _, exists := r.categories[info.Key]; exists {
			return nil, fmt.Errorf("model: category %q declared twice", info.Key)
		}
		r.categories[info.Key] = info
		r.catOrder = append(r.catOrder, info.Key)
	}

	for _, field := range def.Fields {
		if field.Name == "" {
			return nil, errors.New("model: field name is required")
		}
		if string(field.Name) == PayloadKeyCategory {
			return nil, fmt.Errorf("model: field name %q is reserved", PayloadKeyCategory)
		}
		if _, exists := r.fields[field.Name]; exists {
			return nil, fmt.Errorf("model: field %q declared twice", field.Name)
		}
		if field.Category != "" {
			if _, ok := r.categories[field.Category]; !ok {
				return nil, fmt.Errorf("model: field %q references unknown category %q", field.Name, field.Category)
			}
		}
		r.fields[field.Name] = field
		r.order = append(r.order, field.Name)
	}

	for _, rule := range def.CrossRules {
		if _, ok := r.fields[rule.First]; !ok {
			return nil, fmt.Errorf("model: cross rule references unknown field %q", rule.First)
		}
		if _, ok := r.fields[rule.Second]; !ok {
			return nil, fmt.Errorf("model: cross rule references unknown field %q", rule.Second)
		}
		if rule.BeforeMessage == "" {
			return nil, fmt.Errorf("model: cross rule %s/%s needs a before message", rule.First, rule.Second)
		}
		if rule.MinYears > 0 && rule.TooEarlyMessage == "" {
			return nil, fmt.Errorf("model: cross rule %s/%s needs a too-early message", rule.First, rule.Second)
		}
	}

	return r, nil
}

// Definition returns the definition the registry was built from.
func (r *Registry) Definition() Definition {
	return r.def
}

// Field looks up a field by identity.
func (r *Registry) Field(name Name) (Field, bool) {
	field, ok := r.fields[name]
	return field, ok
}

// Fields returns every field in declaration order.
func (r *Registry) Fields() []Field {
	out := make([]Field, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.fields[name])
	}
	return out
}

// CrossRules returns the declared cross-field rules.
func (r *Registry) CrossRules() []CrossRule {
	return r.def.CrossRules
}

// Categories returns the closed category set in declaration order. Empty for
// single-panel forms such as the contact variant.
func (r *Registry) Categories() []CategoryInfo {
	out := make([]CategoryInfo, 0, len(r.catOrder))
	for _, key := range r.catOrder {
		out = append(out, r.categories[key])
	}
	return out
}

// HasCategory reports whether key belongs to the closed category set.
func (r *Registry) HasCategory(key Category) bool {
	_, ok := r.categories[key]
	return ok
}

// DefaultCategory resolves the category applied at startup and whenever an
// unrecognized key is requested: the declared default when valid, otherwise
// the first declared category, otherwise empty (single-panel form).
func (r *Registry) DefaultCategory() Category {
	if r.def.DefaultCategory != "" && r.HasCategory(r.def.DefaultCategory) {
		return r.def.DefaultCategory
	}
	if len(r.catOrder) > 0 {
		return r.catOrder[0]
	}
	return ""
}

// Title resolves the display title for a category from the definition's title
// table, falling back to the definition title or the generic default.
func (r *Registry) Title(key Category) string {
	if info, ok := r.categories[key]; ok && info.Title != "" {
		return info.Title
	}
	if r.def.Title != "" {
		return r.def.Title
	}
	return DefaultTitle
}

// Visible reports whether a field belongs to the active category's panel.
// Fields without a category are shared and always visible.
func (r *Registry) Visible(field Field, active Category) bool {
	return field.Category == "" || field.Category == active
}

// VisibleFields returns, in declaration order, the fields visible while the
// given category is active. This is the set the orchestrator validates: a
// required field hidden under an inactive panel must never block submission.
func (r *Registry) VisibleFields(active Category) []Field {
	out := make([]Field, 0, len(r.order))
	for _, name := range r.order {
		field := r.fields[name]
		if r.Visible(field, active) {
			out = append(out, field)
		}
	}
	return out
}

// RequiredMessage returns the message shown on empty required fields.
func (r *Registry) RequiredMessage() string {
	if r.def.Messages.Required != "" {
		return r.def.Messages.Required
	}
	return DefaultRequiredMessage
}

// StatusMessages resolves the form-level status copy with defaults applied.
func (r *Registry) StatusMessages() Messages {
	msgs := r.def.Messages
	if msgs.Required == "" {
		msgs.Required = DefaultRequiredMessage
	}
	if msgs.Invalid == "" {
		msgs.Invalid = DefaultInvalidMessage
	}
	if msgs.Sending == "" {
		msgs.Sending = DefaultSendingMessage
	}
	if msgs.Success == "" {
		msgs.Success = DefaultSuccessMessage
	}
	if msgs.Error == "" {
		msgs.Error = DefaultErrorMessage
	}
	return msgs
}
