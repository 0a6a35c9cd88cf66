package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-quoteform/pkg/model"
)

func TestMemoryPresenterRecordsInsertionOrder(t *testing.T) {
	p := NewMemoryPresenter()
	p.SetError(model.FieldNIF, "bad nif")
	p.SetError(model.FieldNome, "bad name")
	p.SetError(model.FieldNIF, "still bad") // overwrite keeps position

	first, ok := p.FirstInvalid()
	if !ok || first != model.FieldNIF {
		t.Fatalf("first invalid = %q/%v, want nif", first, ok)
	}
	if got := p.ErrorFor(model.FieldNIF); got != "still bad" {
		t.Fatalf("overwritten message = %q", got)
	}
}

func TestMemoryPresenterClearSingleField(t *testing.T) {
	p := NewMemoryPresenter()
	p.SetError(model.FieldNIF, "bad nif")
	p.SetError(model.FieldNome, "bad name")

	p.SetError(model.FieldNIF, "")

	if got := p.ErrorFor(model.FieldNIF); got != "" {
		t.Fatalf("cleared field still has %q", got)
	}
	first, ok := p.FirstInvalid()
	if !ok || first != model.FieldNome {
		t.Fatalf("first invalid after clear = %q/%v, want nome", first, ok)
	}

	// Clearing an unmarked field is a no-op.
	p.SetError(model.FieldEmail, "")
	if len(p.Errors()) != 1 {
		t.Fatalf("unexpected error set: %v", p.Errors())
	}
}

func TestMemoryPresenterClearAll(t *testing.T) {
	p := NewMemoryPresenter()
	p.SetError(model.FieldNIF, "bad nif")
	p.ShowStatus("sending", StatusSending)

	p.ClearAll()

	if len(p.Errors()) != 0 {
		t.Fatalf("errors survived ClearAll: %v", p.Errors())
	}
	if _, ok := p.FirstInvalid(); ok {
		t.Fatalf("first invalid should be empty after ClearAll")
	}
	// ClearAll leaves the status surface alone; that is ShowStatus's job.
	if message, status := p.Status(); message != "sending" || status != StatusSending {
		t.Fatalf("status changed by ClearAll: %q/%q", message, status)
	}
}

func TestMemoryPresenterErrorPaths(t *testing.T) {
	p := NewMemoryPresenter()
	if p.ErrorPaths() != nil {
		t.Fatalf("empty presenter should expose nil paths")
	}

	p.SetError(model.FieldNIF, "bad nif")
	p.SetError(model.FieldNome, "bad name")

	want := map[string][]string{
		"nif":  {"bad nif"},
		"nome": {"bad name"},
	}
	if diff := cmp.Diff(want, p.ErrorPaths()); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
}
