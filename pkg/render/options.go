package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-quoteform/pkg/model"
)

// RenderOptions describe per-request data renderers use to customise their
// output without mutating the form definition.
type RenderOptions struct {
	// ActiveCategory selects which panel is shown. Empty falls back to the
	// definition's default category.
	ActiveCategory model.Category

	// Action is the submission endpoint the rendered form posts to. Empty
	// renders a form without a remote target (static friendly).
	Action string

	// Method overrides the HTTP method, defaulting to POST.
	Method string

	// Values pre-populates rendered controls keyed by field identity.
	Values map[string]any

	// Errors surfaces validation feedback keyed by field identity. The
	// renderer maps these into inline message slots next to each control.
	Errors map[string][]string

	// StatusMessage and StatusLevel fill the form-level status surface.
	StatusMessage string
	StatusLevel   string

	// Theme carries a resolved go-theme configuration so chrome classes and
	// CSS variables follow the caller's theme selection. Nil uses defaults.
	Theme *theme.RendererConfig
}
