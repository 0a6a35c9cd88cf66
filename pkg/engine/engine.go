package engine

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/goliatone/go-quoteform/pkg/model"
	"github.com/goliatone/go-quoteform/pkg/validation"
)

// Option customises the engine configuration.
type Option func(*Engine)

// WithPresenter injects the surface that displays field errors and status.
// Defaults to a MemoryPresenter.
func WithPresenter(presenter Presenter) Option {
	return func(e *Engine) {
		if presenter != nil {
			e.presenter = presenter
		}
	}
}

// WithSink injects the delivery target for accepted payloads. Without a sink
// the engine stays static friendly: a valid submission is treated as accepted
// immediately and no network call is made.
func WithSink(sink Sink) Option {
	return func(e *Engine) {
		e.sink = sink
	}
}

// WithEndpoint configures an HTTPSink posting JSON to the given URL. An empty
// URL leaves the engine without a sink.
func WithEndpoint(url string) Option {
	return func(e *Engine) {
		if url != "" {
			e.sink = &HTTPSink{Endpoint: url}
		}
	}
}

// WithHTTPClient sets the client used when the sink is the built-in HTTPSink.
func WithHTTPClient(client *http.Client) Option {
	return func(e *Engine) {
		e.httpClient = client
	}
}

// WithClock overrides the reference instant the date rules classify against.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// Engine owns the mutable state of one form instance: current field values,
// the active category, the error/status presenter, and the submission state.
// All rule lookups go through the registry built at construction; validation
// results are recomputed on every pass and never cached.
type Engine struct {
	mu sync.Mutex

	registry   *model.Registry
	rules      map[model.Name]validation.Func
	presenter  Presenter
	sink       Sink
	httpClient *http.Client
	clock      func() time.Time

	values map[model.Name]string
	active model.Category
	state  State
}

// New builds an engine over a validated registry. Every field's rule kind is
// bound to its predicate here so a definition referencing an unknown kind
// fails at initialization instead of first submit.
func New(registry *model.Registry, options ...Option) (*Engine, error) {
	if registry == nil {
		return nil, fmt.Errorf("engine: registry is required")
	}

	e := &Engine{
		registry: registry,
		rules:    make(map[model.Name]validation.Func),
		clock:    time.Now,
		values:   make(map[model.Name]string),
		state:    StateIdle,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.presenter == nil {
		e.presenter = NewMemoryPresenter()
	}
	if sink, ok := e.sink.(*HTTPSink); ok && sink.Client == nil {
		sink.Client = e.httpClient
	}

	for _, field := range registry.Fields() {
		fn, err := validation.ForKind(field.Rule, field.RuleParam)
		if err != nil {
			return nil, fmt.Errorf("engine: field %q: %w", field.Name, err)
		}
		e.rules[field.Name] = fn
	}

	e.active = registry.DefaultCategory()
	return e, nil
}

// Registry exposes the definition registry the engine was built over.
func (e *Engine) Registry() *model.Registry {
	return e.registry
}

// Presenter returns the configured presenter.
func (e *Engine) Presenter() Presenter {
	return e.presenter
}

// State returns the current submission state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// SetValue stores a field's raw value. Unknown identities are rejected so
// stringly-typed call sites surface immediately.
func (e *Engine) SetValue(name model.Name, value string) error {
	if _, ok := e.registry.Field(name); !ok {
		return fmt.Errorf("engine: unknown field %q", name)
	}
	e.values[name] = value
	return nil
}

// SetValues stores a batch of raw values, rejecting the first unknown field.
func (e *Engine) SetValues(values map[model.Name]string) error {
	for name, value := range values {
		if err := e.SetValue(name, value); err != nil {
			return err
		}
	}
	return nil
}

// Value returns a field's raw value.
func (e *Engine) Value(name model.Name) string {
	return e.values[name]
}

// Values returns a copy of every non-empty stored value.
func (e *Engine) Values() map[model.Name]string {
	out := make(map[model.Name]string, len(e.values))
	for name, value := range e.values {
		if value == "" {
			continue
		}
		out[name] = value
	}
	return out
}

// ValuePaths exposes current values keyed by string identity in the shape the
// render options consume.
func (e *Engine) ValuePaths() map[string]any {
	if len(e.values) == 0 {
		return nil
	}
	out := make(map[string]any, len(e.values))
	for name, value := range e.values {
		if value == "" {
			continue
		}
		out[string(name)] = value
	}
	return out
}

func (e *Engine) resetValues() {
	e.values = make(map[model.Name]string)
}

func (e *Engine) now() time.Time {
	return e.clock()
}
