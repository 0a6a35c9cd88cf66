package quoteform

import (
	"context"
	"fmt"

	"github.com/goliatone/go-quoteform/pkg/engine"
	"github.com/goliatone/go-quoteform/pkg/formdef"
	"github.com/goliatone/go-quoteform/pkg/model"
	pkgopenapi "github.com/goliatone/go-quoteform/pkg/openapi"
	"github.com/goliatone/go-quoteform/pkg/render"
	"github.com/goliatone/go-quoteform/pkg/renderers/html"
)

// RenderOptions describes per-request overrides that renderers can use to
// prefill values or surface validation errors.
type RenderOptions = render.RenderOptions

// Payload is the sanitized key/value map submitted to a sink.
type Payload = engine.Payload

// NewEngine builds an engine from any validated definition.
func NewEngine(def model.Definition, options ...engine.Option) (*engine.Engine, error) {
	registry, err := model.NewRegistry(def)
	if err != nil {
		return nil, err
	}
	return engine.New(registry, options...)
}

// NewQuoteEngine builds an engine over the built-in multi-category insurance
// quote definition.
func NewQuoteEngine(options ...engine.Option) (*engine.Engine, error) {
	return newEmbeddedEngine(formdef.QuoteKey, options...)
}

// NewContactEngine builds an engine over the built-in contact definition.
func NewContactEngine(options ...engine.Option) (*engine.Engine, error) {
	return newEmbeddedEngine(formdef.ContactKey, options...)
}

func newEmbeddedEngine(key string, options ...engine.Option) (*engine.Engine, error) {
	def, err := formdef.Embedded(key)
	if err != nil {
		return nil, err
	}
	return NewEngine(def, options...)
}

// NewEngineFromOpenAPI loads an OpenAPI document, derives a form definition
// from the named operation's request body, and builds an engine over it.
func NewEngineFromOpenAPI(ctx context.Context, source pkgopenapi.Source, operationID string, options ...engine.Option) (*engine.Engine, error) {
	var loaderOpts []pkgopenapi.LoaderOption
	if source != nil && source.Kind() == pkgopenapi.SourceKindURL {
		loaderOpts = append(loaderOpts, pkgopenapi.WithHTTPFallback(0))
	}
	doc, err := NewLoader(loaderOpts...).Load(ctx, source)
	if err != nil {
		return nil, err
	}

	def, err := NewBuilder().Definition(ctx, doc, operationID)
	if err != nil {
		return nil, err
	}
	return NewEngine(def, options...)
}

// DefaultRenderers builds a registry holding the built-in renderers. Callers
// embedding quoteform into a larger surface can register their own renderers
// alongside.
func DefaultRenderers() (*render.Registry, error) {
	htmlRenderer, err := html.New()
	if err != nil {
		return nil, err
	}
	registry := render.NewRegistry()
	registry.MustRegister(htmlRenderer)
	return registry, nil
}

// RenderHTML renders the engine's current view: active category, stored
// values, presenter errors, and the status line. The presenter must be the
// built-in MemoryPresenter (or left defaulted) for errors to carry over.
func RenderHTML(ctx context.Context, eng *engine.Engine, options ...html.Option) ([]byte, error) {
	if eng == nil {
		return nil, fmt.Errorf("quoteform: engine is required")
	}

	renderer, err := html.New(options...)
	if err != nil {
		return nil, err
	}

	opts := render.RenderOptions{
		ActiveCategory: eng.ActiveCategory(),
		Values:         eng.ValuePaths(),
	}
	if presenter, ok := eng.Presenter().(*engine.MemoryPresenter); ok {
		opts.Errors = presenter.ErrorPaths()
		message, status := presenter.Status()
		opts.StatusMessage = message
		opts.StatusLevel = string(status)
	}

	return renderer.Render(ctx, eng.Registry(), opts)
}
