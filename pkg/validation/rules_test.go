package validation

import (
	"testing"
	"time"

	"github.com/goliatone/go-quoteform/pkg/model"
)

func TestForKindUnknownKind(t *testing.T) {
	if _, err := ForKind(model.RuleKind("bogus"), 0); err == nil {
		t.Fatalf("expected error for unknown rule kind")
	}
}

func TestForKindNoneAlwaysPasses(t *testing.T) {
	fn, err := ForKind(model.RuleNone, 0)
	if err != nil {
		t.Fatalf("bind none rule: %v", err)
	}
	if !fn("anything at all", time.Now()) {
		t.Fatalf("none rule should accept any value")
	}
}

func TestForKindMinWordsDefault(t *testing.T) {
	fn, err := ForKind(model.RuleMinWords, 0)
	if err != nil {
		t.Fatalf("bind min-words rule: %v", err)
	}
	if fn("Ana", time.Now()) {
		t.Fatalf("default min-words should require two words")
	}
	if !fn("Ana Silva", time.Now()) {
		t.Fatalf("two words should pass the default min-words")
	}
}

func TestForKindMinLengthParam(t *testing.T) {
	fn, err := ForKind(model.RuleMinLength, 10)
	if err != nil {
		t.Fatalf("bind min-length rule: %v", err)
	}
	if fn("curto", time.Now()) {
		t.Fatalf("five runes should fail a ten-rune minimum")
	}
	if !fn("mensagem longa", time.Now()) {
		t.Fatalf("fourteen runes should pass a ten-rune minimum")
	}
}

func TestNormalizeValue(t *testing.T) {
	if got := NormalizeValue(model.NormalizeDigits, " 912 345 678 "); got != "912345678" {
		t.Fatalf("digits normalization = %q, want 912345678", got)
	}
	if got := NormalizeValue(model.NormalizePlate, "ab-12-cd"); got != "AB12CD" {
		t.Fatalf("plate normalization = %q, want AB12CD", got)
	}
	if got := NormalizeValue(model.NormalizeNone, " keep me "); got != " keep me " {
		t.Fatalf("no-op normalization should pass values through, got %q", got)
	}
}

func TestCheckCross(t *testing.T) {
	rule := model.CrossRule{
		First:           "data_nascimento",
		Second:          "data_carta",
		MinYears:        16,
		BeforeMessage:   "A data da carta tem de ser posterior à data de nascimento.",
		TooEarlyMessage: "A carta só pode ser emitida 16 anos após o nascimento.",
	}

	birth := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.Local)

	cases := []struct {
		name   string
		second time.Time
		want   string
	}{
		{"licence before birth", time.Date(1999, time.June, 1, 0, 0, 0, 0, time.Local), rule.BeforeMessage},
		{"licence equal to birth", birth, rule.BeforeMessage},
		{"licence inside the gap", time.Date(2015, time.June, 1, 0, 0, 0, 0, time.Local), rule.TooEarlyMessage},
		{"licence exactly at the gap", time.Date(2016, time.January, 1, 0, 0, 0, 0, time.Local), ""},
		{"licence after the gap", time.Date(2016, time.June, 1, 0, 0, 0, 0, time.Local), ""},
	}
	for _, tc := range cases {
		if got := CheckCross(rule, birth, tc.second); got != tc.want {
			t.Errorf("%s: CheckCross = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestCheckCrossWithoutGap(t *testing.T) {
	rule := model.CrossRule{
		First:         "data_nascimento",
		Second:        "inicio",
		BeforeMessage: "Tem de ser posterior.",
	}
	first := time.Date(2020, time.May, 1, 0, 0, 0, 0, time.Local)
	next := first.AddDate(0, 0, 1)

	if got := CheckCross(rule, first, next); got != "" {
		t.Fatalf("next day should satisfy a gapless rule, got %q", got)
	}
	if got := CheckCross(rule, first, first); got != rule.BeforeMessage {
		t.Fatalf("same day should violate a gapless rule, got %q", got)
	}
}
