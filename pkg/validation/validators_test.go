package validation

import (
	"testing"
	"time"
)

func TestIsNIF(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"123456789", true},
		{"504426770", true},
		{"123456780", false},
		{"504426773", false},
		{"111111111", false},
		{"12345678", false},
		{"1234567890", false},
		{"12345678a", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsNIF(tc.value); got != tc.want {
			t.Errorf("IsNIF(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestIsPhonePT(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"912345678", true},
		{"961234567", true},
		{"812345678", false},
		{"91234567", false},
		{"9123456789", false},
		{"91234567a", false},
	}
	for _, tc := range cases {
		if got := IsPhonePT(tc.value); got != tc.want {
			t.Errorf("IsPhonePT(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestIsPostalPT(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"1234-567", true},
		{"1234567", false},
		{"12345-67", false},
		{"123-4567", false},
		{"1234-56a", false},
	}
	for _, tc := range cases {
		if got := IsPostalPT(tc.value); got != tc.want {
			t.Errorf("IsPostalPT(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestIsPlatePT(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"AB-12-CD", true},
		{"AB12CD", true},
		{"ab 12 cd", true},
		{"12-AB-34", true},
		{"AB-12-34", true},
		{"12-34-AB", true},
		{"ABC123", false},
		{"AB-12-C", false},
		{"AB-12-CDE", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsPlatePT(tc.value); got != tc.want {
			t.Errorf("IsPlatePT(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestNormalizePlate(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{"ab-12-cd", "AB12CD"},
		{"ab 12 cd", "AB12CD"},
		{"AB12CD", "AB12CD"},
	}
	for _, tc := range cases {
		if got := NormalizePlate(tc.value); got != tc.want {
			t.Errorf("NormalizePlate(%q) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestIsEmail(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"ana@example.com", true},
		{"ana.silva@mail.example.pt", true},
		{"ana@", false},
		{"@example.com", false},
		{"ana example@example.com", false},
		{"ana@example", false},
	}
	for _, tc := range cases {
		if got := IsEmail(tc.value); got != tc.want {
			t.Errorf("IsEmail(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestMinWords(t *testing.T) {
	if !MinWords("Ana Silva", 2) {
		t.Errorf("two words should satisfy a two-word minimum")
	}
	if MinWords("Ana", 2) {
		t.Errorf("one word should not satisfy a two-word minimum")
	}
	if !MinWords("  Ana   Maria  Silva ", 2) {
		t.Errorf("extra whitespace should not affect the word count")
	}
}

func TestMinLength(t *testing.T) {
	if !MinLength("olá bom dia", 10) {
		t.Errorf("11 runes should satisfy a 10 minimum")
	}
	if MinLength("olá", 10) {
		t.Errorf("3 runes should not satisfy a 10 minimum")
	}
}

func TestDateClassification(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.Local)

	if !IsPastDate("2000-01-01", now) {
		t.Errorf("2000-01-01 should be in the past")
	}
	if IsPastDate("2026-03-10", now) {
		t.Errorf("today should not count as past")
	}
	if IsPastDate("2030-01-01", now) {
		t.Errorf("a future date should not count as past")
	}

	if !IsTodayOrFuture("2026-03-10", now) {
		t.Errorf("today should count as today-or-future")
	}
	if !IsTodayOrFuture("2026-03-11", now) {
		t.Errorf("tomorrow should count as today-or-future")
	}
	if IsTodayOrFuture("2026-03-09", now) {
		t.Errorf("yesterday should not count as today-or-future")
	}

	if IsPastDate("not-a-date", now) || IsTodayOrFuture("not-a-date", now) {
		t.Errorf("unparseable dates should fail both classifications")
	}
}
