package engine

import (
	"github.com/goliatone/go-quoteform/pkg/model"
)

// Status tags the form-level message with a style category.
type Status string

const (
	StatusEmpty   Status = ""
	StatusSending Status = "sending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Presenter binds validation outcomes to whatever surface displays them.
// SetError with an empty message clears the field's error; a non-empty one
// marks the field invalid and fills its message slot. Implementations must be
// idempotent under repeated identical calls and hold no state beyond the
// current snapshot.
type Presenter interface {
	SetError(name model.Name, message string)
	ClearAll()
	ShowStatus(message string, status Status)
}

// MemoryPresenter records errors and status in insertion order. It is the
// default presenter: renderers read its snapshot to paint inline messages, and
// callers use FirstInvalid to bring the first failing field into view.
type MemoryPresenter struct {
	errors  map[model.Name]string
	order   []model.Name
	message string
	status  Status
}

// NewMemoryPresenter returns an empty presenter.
func NewMemoryPresenter() *MemoryPresenter {
	return &MemoryPresenter{errors: make(map[model.Name]string)}
}

// SetError records or clears a field error.
func (p *MemoryPresenter) SetError(name model.Name, message string) {
	if message == "" {
		if _, ok := p.errors[name]; !ok {
			return
		}
		delete(p.errors, name)
		for i, existing := range p.order {
			if existing == name {
				p.order = append(p.order[:i], p.order[i+1:]...)
				break
			}
		}
		return
	}
	if _, ok := p.errors[name]; !ok {
		p.order = append(p.order, name)
	}
	p.errors[name] = message
}

// ClearAll removes every error marker and message slot.
func (p *MemoryPresenter) ClearAll() {
	p.errors = make(map[model.Name]string)
	p.order = nil
}

// ShowStatus replaces the form-level message. Empty message with StatusEmpty
// blanks the status surface.
func (p *MemoryPresenter) ShowStatus(message string, status Status) {
	p.message = message
	p.status = status
}

// ErrorFor returns the recorded message for a field, empty when the field is
// not marked invalid.
func (p *MemoryPresenter) ErrorFor(name model.Name) string {
	return p.errors[name]
}

// Errors returns a copy of the current field error set.
func (p *MemoryPresenter) Errors() map[model.Name]string {
	out := make(map[model.Name]string, len(p.errors))
	for name, message := range p.errors {
		out[name] = message
	}
	return out
}

// ErrorPaths exposes the error set keyed by string identity in the shape the
// render options consume.
func (p *MemoryPresenter) ErrorPaths() map[string][]string {
	if len(p.errors) == 0 {
		return nil
	}
	out := make(map[string][]string, len(p.errors))
	for name, message := range p.errors {
		out[string(name)] = []string{message}
	}
	return out
}

// FirstInvalid returns the earliest field marked invalid during the current
// snapshot, in recording order.
func (p *MemoryPresenter) FirstInvalid() (model.Name, bool) {
	if len(p.order) == 0 {
		return "", false
	}
	return p.order[0], true
}

// Status returns the current form-level message and its style category.
func (p *MemoryPresenter) Status() (string, Status) {
	return p.message, p.status
}

var _ Presenter = (*MemoryPresenter)(nil)
