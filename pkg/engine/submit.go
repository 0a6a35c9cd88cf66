package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-quoteform/pkg/model"
	"github.com/goliatone/go-quoteform/pkg/validation"
)

// Payload is the flat key/value structure delivered to a sink: every visible
// field's normalized value plus the active category marker.
type Payload map[string]string

// Sink receives an accepted payload. Delivery is attempted exactly once per
// submission; any returned error moves the engine to the error state with
// field values preserved.
type Sink interface {
	Deliver(ctx context.Context, payload Payload) error
}

// SinkFunc adapts a function into a Sink.
type SinkFunc func(ctx context.Context, payload Payload) error

// Deliver delegates to the underlying function.
func (fn SinkFunc) Deliver(ctx context.Context, payload Payload) error {
	return fn(ctx, payload)
}

// HTTPSink posts the payload as a JSON object to a configured endpoint. Any
// non-2xx response or transport error counts as failure; there is no retry,
// timeout, or cancellation beyond what the client and context impose.
type HTTPSink struct {
	Endpoint string
	Client   *http.Client
}

// Deliver issues the single POST.
func (s *HTTPSink) Deliver(ctx context.Context, payload Payload) error {
	if s.Endpoint == "" {
		return fmt.Errorf("engine: http sink endpoint is empty")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("engine: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("engine: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	res, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("engine: deliver payload: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("engine: endpoint returned %s", res.Status)
	}
	return nil
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeText strips markup from free-text values before they enter the
// payload. The strict policy escapes entities, so the surviving text is
// unescaped back to plain characters.
func sanitizeText(raw string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(raw)))
}

// BuildPayload flattens the currently visible field values, applies the
// normalization table, sanitizes free-text entries, and attaches the active
// category. A plate field additionally emits its canonical form under the
// matricula_normalizada key, matching the wire contract consumers expect.
func (e *Engine) BuildPayload() Payload {
	payload := make(Payload)

	for _, field := range e.registry.VisibleFields(e.active) {
		value := strings.TrimSpace(e.values[field.Name])
		if value == "" {
			continue
		}
		value = validation.NormalizeValue(field.Normalize, value)
		if field.FreeText {
			value = sanitizeText(value)
		}
		payload[string(field.Name)] = value

		if field.Rule == model.RulePlatePT {
			payload[model.PayloadKeyPlateNormalized] = validation.NormalizePlate(value)
		}
	}

	if e.active != "" {
		payload[model.PayloadKeyCategory] = string(e.active)
	}
	return payload
}

// Submit drives one full submission: validate, build the payload, deliver it,
// and settle in a terminal state. The returned state is where the engine
// landed:
//
//   - StateIdle: validation failed; errors and the aggregate status message
//     are shown, values untouched.
//   - StateSuccess: the payload was accepted (or no sink is configured); the
//     form is reset and the active category re-applied.
//   - StateError: delivery failed; values are preserved and the returned
//     error wraps the transport failure.
//
// A submit while a prior one is sending returns ErrSubmissionInFlight.
func (e *Engine) Submit(ctx context.Context) (State, error) {
	messages := e.registry.StatusMessages()

	e.mu.Lock()
	if e.state == StateSending {
		e.mu.Unlock()
		return StateSending, ErrSubmissionInFlight
	}
	e.state = StateValidating

	if !e.Validate() {
		e.state = StateIdle
		e.mu.Unlock()
		e.presenter.ShowStatus(messages.Invalid, StatusError)
		return StateIdle, nil
	}

	payload := e.BuildPayload()

	if e.sink == nil {
		e.settleSuccess(messages.Success)
		e.mu.Unlock()
		return StateSuccess, nil
	}

	e.state = StateSending
	e.mu.Unlock()

	e.presenter.ShowStatus(messages.Sending, StatusSending)
	err := e.sink.Deliver(ctx, payload)

	e.mu.Lock()
	defer e.mu.Unlock()

	if err != nil {
		// Keep entered values so the user can retry.
		e.state = StateError
		e.presenter.ShowStatus(messages.Error, StatusError)
		return StateError, err
	}

	e.settleSuccess(messages.Success)
	return StateSuccess, nil
}

// settleSuccess resets the form, re-applies the active category (reset would
// otherwise fall back to the markup default panel), and shows the success
// notice. Callers hold the mutex.
func (e *Engine) settleSuccess(message string) {
	e.resetValues()
	e.SetActiveCategory(e.active)
	e.presenter.ShowStatus(message, StatusSuccess)
	e.state = StateSuccess
}

// Reopen returns a terminal success or error display to the editable idle
// form without re-running validation, the "send another" affordance. It is a
// no-op in any other state.
func (e *Engine) Reopen() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateSuccess && e.state != StateError {
		return
	}
	e.state = StateIdle
	e.presenter.ShowStatus("", StatusEmpty)
}
