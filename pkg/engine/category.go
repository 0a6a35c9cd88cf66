package engine

import (
	"github.com/goliatone/go-quoteform/pkg/model"
)

// ActiveCategory returns the category whose panel is currently visible. For
// single-panel forms this is empty.
func (e *Engine) ActiveCategory() model.Category {
	return e.active
}

// SetActiveCategory activates a category panel. Keys outside the closed set
// fall back to the definition's default. Switching clears every field error
// and blanks the status message, so stale feedback from another category never
// lingers. The effective key is returned.
func (e *Engine) SetActiveCategory(key model.Category) model.Category {
	if !e.registry.HasCategory(key) {
		key = e.registry.DefaultCategory()
	}
	e.active = key
	e.presenter.ClearAll()
	e.presenter.ShowStatus("", StatusEmpty)
	return key
}

// Title resolves the display title for the active category.
func (e *Engine) Title() string {
	return e.registry.Title(e.active)
}

// VisibleFields returns the fields belonging to the active panel plus the
// shared ones, in declaration order.
func (e *Engine) VisibleFields() []model.Field {
	return e.registry.VisibleFields(e.active)
}
