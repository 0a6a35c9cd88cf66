package render

import (
	"context"

	"github.com/goliatone/go-quoteform/pkg/model"
)

// Renderer converts a form registry plus per-request state into a byte
// representation (HTML for the built-in renderer, prompts for the TUI one).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form *model.Registry, options RenderOptions) ([]byte, error)
}
