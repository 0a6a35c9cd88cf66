package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-quoteform/pkg/model"
)

func TestValidateAcceptsCompleteForm(t *testing.T) {
	eng := newTestEngine(t)
	fillValidAuto(t, eng)

	if !eng.Validate() {
		t.Fatalf("valid auto form was rejected: %v", presenterOf(t, eng).Errors())
	}
}

func TestValidateFlagsEveryFailure(t *testing.T) {
	eng := newTestEngine(t)
	// nome missing, nif malformed, matricula missing, email malformed.
	eng.SetValue(model.FieldNIF, "123")
	eng.SetValue(model.FieldEmail, "not-an-email")
	eng.SetValue(model.FieldDataNascimento, "1990-05-20")

	if eng.Validate() {
		t.Fatalf("invalid form was accepted")
	}

	presenter := presenterOf(t, eng)
	want := map[model.Name]string{
		model.FieldNome:      model.DefaultRequiredMessage,
		model.FieldNIF:       "NIF inválido.",
		model.FieldEmail:     "Email inválido.",
		model.FieldMatricula: model.DefaultRequiredMessage,
	}
	if diff := cmp.Diff(want, presenter.Errors()); diff != "" {
		t.Fatalf("error set mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateRequiredWinsOverFormat(t *testing.T) {
	eng := newTestEngine(t)
	// Whitespace-only value is both empty (required) and would fail the
	// format rule; only the required message may surface.
	eng.SetValue(model.FieldNIF, "   ")

	eng.Validate()

	if got := presenterOf(t, eng).ErrorFor(model.FieldNIF); got != model.DefaultRequiredMessage {
		t.Fatalf("nif error = %q, want the required message", got)
	}
}

func TestValidateSkipsHiddenPanels(t *testing.T) {
	eng := newTestEngine(t)
	eng.SetActiveCategory(model.CategoryMoto)
	fillValidAuto(t, eng)
	// matricula is required under auto but must not block a moto submission,
	// and its stored garbage must not be validated either.
	eng.SetValue(model.FieldMatricula, "garbage")

	if !eng.Validate() {
		t.Fatalf("moto form blocked by hidden auto fields: %v", presenterOf(t, eng).Errors())
	}
}

func TestValidateSkipsEmptyOptionalFields(t *testing.T) {
	eng := newTestEngine(t)
	fillValidAuto(t, eng)
	eng.SetValue(model.FieldEmail, "")

	if !eng.Validate() {
		t.Fatalf("empty optional field should not fail its format rule")
	}
}

func TestValidateCrossRule(t *testing.T) {
	cases := []struct {
		name  string
		birth string
		carta string
		want  string
	}{
		{"licence before birth", "2000-01-01", "1999-06-01", "A carta tem de ser posterior ao nascimento."},
		{"licence under the age gap", "2000-01-01", "2015-06-01", "A carta exige 16 anos de idade."},
		{"licence past the age gap", "2000-01-01", "2016-06-01", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			eng := newTestEngine(t)
			fillValidAuto(t, eng)
			eng.SetValue(model.FieldDataNascimento, tc.birth)
			eng.SetValue(model.FieldDataCarta, tc.carta)

			valid := eng.Validate()
			got := presenterOf(t, eng).ErrorFor(model.FieldDataCarta)
			if got != tc.want {
				t.Fatalf("data_carta error = %q, want %q", got, tc.want)
			}
			if tc.want == "" && !valid {
				t.Fatalf("form should validate: %v", presenterOf(t, eng).Errors())
			}
		})
	}
}

func TestValidateCrossRuleSkippedWhenPanelHidden(t *testing.T) {
	eng := newTestEngine(t)
	eng.SetActiveCategory(model.CategoryMoto)
	fillValidAuto(t, eng)
	eng.SetValue(model.FieldDataCarta, "1980-01-01")

	if !eng.Validate() {
		t.Fatalf("hidden cross-rule operand should not fire: %v", presenterOf(t, eng).Errors())
	}
}

func TestValidateNormalizesValues(t *testing.T) {
	eng := newTestEngine(t)
	fillValidAuto(t, eng)
	eng.SetValue(model.FieldNIF, "123 456 789")
	eng.SetValue(model.FieldMatricula, "ab-12-cd")

	if !eng.Validate() {
		t.Fatalf("form should validate: %v", presenterOf(t, eng).Errors())
	}
	if got := eng.Value(model.FieldNIF); got != "123456789" {
		t.Fatalf("nif after normalization = %q", got)
	}
	if got := eng.Value(model.FieldMatricula); got != "AB12CD" {
		t.Fatalf("matricula after normalization = %q", got)
	}
}

func TestValidateNormalizesEvenWhenInvalid(t *testing.T) {
	eng := newTestEngine(t)
	eng.SetValue(model.FieldNIF, "123 456 780")

	if eng.Validate() {
		t.Fatalf("form with bad checksum should not validate")
	}
	if got := eng.Value(model.FieldNIF); got != "123456780" {
		t.Fatalf("normalization should run on failed passes too, got %q", got)
	}
}

func TestValidateFieldLiveFeedback(t *testing.T) {
	eng := newTestEngine(t)
	presenter := presenterOf(t, eng)

	eng.SetValue(model.FieldEmail, "broken@")
	eng.ValidateField(model.FieldEmail)
	if got := presenter.ErrorFor(model.FieldEmail); got != "Verifique o email." {
		t.Fatalf("live error = %q, want the live message", got)
	}

	eng.SetValue(model.FieldEmail, "ana@example.com")
	eng.ValidateField(model.FieldEmail)
	if got := presenter.ErrorFor(model.FieldEmail); got != "" {
		t.Fatalf("valid value should clear the live error, got %q", got)
	}
}

func TestValidateFieldEmptyClearsInsteadOfNagging(t *testing.T) {
	eng := newTestEngine(t)
	presenter := presenterOf(t, eng)

	eng.SetValue(model.FieldNome, "")
	eng.ValidateField(model.FieldNome)
	if got := presenter.ErrorFor(model.FieldNome); got != "" {
		t.Fatalf("empty value should not produce live feedback, got %q", got)
	}
}

func TestValidateFieldIgnoresHiddenFields(t *testing.T) {
	eng := newTestEngine(t)
	eng.SetActiveCategory(model.CategoryMoto)
	presenter := presenterOf(t, eng)

	eng.SetValue(model.FieldMatricula, "garbage")
	eng.ValidateField(model.FieldMatricula)
	if got := presenter.ErrorFor(model.FieldMatricula); got != "" {
		t.Fatalf("hidden field should not receive live feedback, got %q", got)
	}
}

func TestValidateFieldFallsBackToSubmitMessage(t *testing.T) {
	eng := newTestEngine(t)
	presenter := presenterOf(t, eng)

	// nif declares no live message, so the submit-time copy is reused.
	eng.SetValue(model.FieldNIF, "123")
	eng.ValidateField(model.FieldNIF)
	if got := presenter.ErrorFor(model.FieldNIF); got != "NIF inválido." {
		t.Fatalf("live fallback = %q", got)
	}
}
