package engine

import (
	"strings"

	"github.com/goliatone/go-quoteform/pkg/model"
	"github.com/goliatone/go-quoteform/pkg/validation"
)

// Validate runs the full rule set against the fields visible under the active
// category and reports whether every rule passed. Prior errors and status are
// cleared first; every failing field gets exactly one message (first detected
// wins); rules never short-circuit, so all failures surface in one pass.
//
// Required-ness and visibility are evaluated together: a required field hidden
// under an inactive panel never blocks submission of the active category.
func (e *Engine) Validate() bool {
	e.presenter.ClearAll()
	e.presenter.ShowStatus("", StatusEmpty)

	failed := make(map[model.Name]bool)
	fail := func(name model.Name, message string) {
		if failed[name] {
			return
		}
		failed[name] = true
		e.presenter.SetError(name, message)
	}

	now := e.now()
	visible := e.registry.VisibleFields(e.active)
	requiredMessage := e.registry.RequiredMessage()

	// Empty required fields first, so format rules below only see values.
	for _, field := range visible {
		if field.Required && strings.TrimSpace(e.values[field.Name]) == "" {
			fail(field.Name, requiredMessage)
		}
	}

	for _, field := range visible {
		if field.Rule == model.RuleNone {
			continue
		}
		value := strings.TrimSpace(e.values[field.Name])
		if value == "" {
			continue
		}
		if fn := e.rules[field.Name]; fn != nil && !fn(value, now) {
			fail(field.Name, fieldMessage(field))
		}
	}

	for _, rule := range e.registry.CrossRules() {
		first, second, ok := e.crossOperands(rule)
		if !ok {
			continue
		}
		firstDate, okFirst := validation.ParseDate(strings.TrimSpace(e.values[first.Name]))
		secondDate, okSecond := validation.ParseDate(strings.TrimSpace(e.values[second.Name]))
		if !okFirst || !okSecond {
			continue
		}
		if message := validation.CheckCross(rule, firstDate, secondDate); message != "" {
			fail(rule.Second, message)
		}
	}

	// Normalization runs whether or not the pass succeeded, so a user
	// retrying a partially valid form sees cleaned values.
	e.normalizeVisible(visible)

	return len(failed) == 0
}

// ValidateField applies a single field's rule for live feedback. An empty
// value clears the field error instead of flagging it: emptiness belongs to
// the submit-time required check, which keeps typing feedback non-nagging.
func (e *Engine) ValidateField(name model.Name) {
	field, ok := e.registry.Field(name)
	if !ok || !e.registry.Visible(field, e.active) {
		return
	}
	value := strings.TrimSpace(e.values[name])
	if value == "" || field.Rule == model.RuleNone {
		e.presenter.SetError(name, "")
		return
	}
	if fn := e.rules[name]; fn != nil && !fn(value, e.now()) {
		e.presenter.SetError(name, liveMessage(field))
		return
	}
	e.presenter.SetError(name, "")
}

func (e *Engine) crossOperands(rule model.CrossRule) (model.Field, model.Field, bool) {
	first, okFirst := e.registry.Field(rule.First)
	second, okSecond := e.registry.Field(rule.Second)
	if !okFirst || !okSecond {
		return model.Field{}, model.Field{}, false
	}
	if !e.registry.Visible(first, e.active) || !e.registry.Visible(second, e.active) {
		return model.Field{}, model.Field{}, false
	}
	return first, second, true
}

func (e *Engine) normalizeVisible(visible []model.Field) {
	for _, field := range visible {
		if field.Normalize == model.NormalizeNone {
			continue
		}
		if value := e.values[field.Name]; value != "" {
			e.values[field.Name] = validation.NormalizeValue(field.Normalize, value)
		}
	}
}

func fieldMessage(field model.Field) string {
	if field.Message != "" {
		return field.Message
	}
	return model.DefaultInvalidMessage
}

func liveMessage(field model.Field) string {
	if field.LiveMessage != "" {
		return field.LiveMessage
	}
	return fieldMessage(field)
}
