package engine

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-quoteform/pkg/model"
)

func TestBuildPayload(t *testing.T) {
	eng := newTestEngine(t)
	fillValidAuto(t, eng)
	eng.SetValue(model.FieldNome, "  Ana <b>Silva</b>  ")
	eng.SetValue(model.FieldNIF, "123 456 789")
	eng.SetValue(model.FieldMatricula, "ab-12-cd")
	eng.SetValue(model.FieldCilindrada, "125") // hidden under auto

	got := eng.BuildPayload()
	want := Payload{
		"nome":                  "Ana Silva",
		"nif":                   "123456789",
		"email":                 "ana@example.com",
		"data_nascimento":       "1990-05-20",
		"inicio_seguro":         "2026-04-01",
		"matricula":             "AB12CD",
		"matricula_normalizada": "AB12CD",
		"data_carta":            "2010-07-15",
		"categoria":             "auto",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmitWithoutSinkSettlesSuccess(t *testing.T) {
	eng := newTestEngine(t)
	fillValidAuto(t, eng)

	state, err := eng.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if state != StateSuccess {
		t.Fatalf("state = %s, want success", state)
	}

	// Success resets the form but keeps the chosen category active.
	if got := eng.Value(model.FieldNome); got != "" {
		t.Fatalf("values should reset after success, nome = %q", got)
	}
	if got := eng.ActiveCategory(); got != model.CategoryAuto {
		t.Fatalf("active category after success = %q, want auto", got)
	}

	message, status := presenterOf(t, eng).Status()
	if status != StatusSuccess || message != model.DefaultSuccessMessage {
		t.Fatalf("status = %q/%q, want the success notice", message, status)
	}
}

func TestSubmitInvalidStaysIdle(t *testing.T) {
	eng := newTestEngine(t)

	state, err := eng.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if state != StateIdle {
		t.Fatalf("state = %s, want idle", state)
	}

	message, status := presenterOf(t, eng).Status()
	if status != StatusError || message != model.DefaultInvalidMessage {
		t.Fatalf("status = %q/%q, want the aggregate invalid notice", message, status)
	}
	if _, ok := presenterOf(t, eng).FirstInvalid(); !ok {
		t.Fatalf("expected at least one flagged field")
	}
}

func TestSubmitDeliversPayload(t *testing.T) {
	var received Payload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	eng := newTestEngine(t, WithEndpoint(server.URL))
	fillValidAuto(t, eng)

	state, err := eng.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if state != StateSuccess {
		t.Fatalf("state = %s, want success", state)
	}
	if received["nif"] != "123456789" || received["categoria"] != "auto" {
		t.Fatalf("endpoint received %v", received)
	}
}

func TestSubmitFailurePreservesValues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	eng := newTestEngine(t, WithEndpoint(server.URL))
	fillValidAuto(t, eng)

	state, err := eng.Submit(context.Background())
	if err == nil {
		t.Fatalf("expected delivery error")
	}
	if state != StateError {
		t.Fatalf("state = %s, want error", state)
	}
	if got := eng.Value(model.FieldNome); got != "Ana Silva" {
		t.Fatalf("values must survive a failed delivery, nome = %q", got)
	}

	message, status := presenterOf(t, eng).Status()
	if status != StatusError || message != model.DefaultErrorMessage {
		t.Fatalf("status = %q/%q, want the error notice", message, status)
	}
}

func TestSubmitRejectsConcurrentAttempt(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	eng := newTestEngine(t, WithSink(SinkFunc(func(ctx context.Context, payload Payload) error {
		close(started)
		<-release
		return nil
	})))
	fillValidAuto(t, eng)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := eng.Submit(context.Background()); err != nil {
			t.Errorf("first submit: %v", err)
		}
	}()

	<-started
	if _, err := eng.Submit(context.Background()); !errors.Is(err, ErrSubmissionInFlight) {
		t.Fatalf("second submit error = %v, want ErrSubmissionInFlight", err)
	}

	close(release)
	<-done

	if got := eng.State(); got != StateSuccess {
		t.Fatalf("final state = %s, want success", got)
	}
}

func TestReopenReturnsToIdle(t *testing.T) {
	eng := newTestEngine(t)
	fillValidAuto(t, eng)

	if _, err := eng.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	eng.Reopen()

	if got := eng.State(); got != StateIdle {
		t.Fatalf("state after reopen = %s, want idle", got)
	}
	if message, status := presenterOf(t, eng).Status(); message != "" || status != StatusEmpty {
		t.Fatalf("reopen should blank the status, got %q/%q", message, status)
	}
}

func TestReopenIgnoredWhileIdle(t *testing.T) {
	eng := newTestEngine(t)
	presenterOf(t, eng).ShowStatus("typing...", StatusSending)

	eng.Reopen()

	if message, _ := presenterOf(t, eng).Status(); message != "typing..." {
		t.Fatalf("reopen while idle must be a no-op, status = %q", message)
	}
}
