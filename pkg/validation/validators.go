package validation

import (
	"regexp"
	"strings"
)

// The validators in this file are pure predicates over trimmed strings. Empty
// input is the caller's concern: the orchestrator runs format rules only on
// non-empty visible values, so every predicate here simply reports pass/fail
// and never produces an error.

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)
	postalPattern = regexp.MustCompile(`^\d{4}-\d{3}$`)
	phonePattern  = regexp.MustCompile(`^9\d{8}$`)
	digitsPattern = regexp.MustCompile(`\D+`)
	plateCharset  = regexp.MustCompile(`^[A-Z0-9]{6}$`)

	// Accepted PT plate layouts over the normalized 6-character form.
	platePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^[A-Z]{2}\d{2}[A-Z]{2}$`), // AA00AA
		regexp.MustCompile(`^\d{2}[A-Z]{2}\d{2}$`),    // 00AA00
		regexp.MustCompile(`^[A-Z]{2}\d{4}$`),         // AA0000
		regexp.MustCompile(`^\d{4}[A-Z]{2}$`),         // 0000AA
	}
)

// OnlyDigits strips every non-digit rune.
func OnlyDigits(value string) string {
	return digitsPattern.ReplaceAllString(value, "")
}

// IsEmail checks the local@domain.tld shape with a top-level segment of at
// least two characters. Embedded whitespace fails.
func IsEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// IsPhonePT accepts national mobile numbers: exactly nine digits starting
// with 9, after stripping separators.
func IsPhonePT(value string) bool {
	return phonePattern.MatchString(OnlyDigits(value))
}

// IsPostalPT accepts the exact DDDD-DDD shape.
func IsPostalPT(value string) bool {
	return postalPattern.MatchString(strings.TrimSpace(value))
}

// IsNIF runs the structural checksum over a nine-digit tax identifier: the
// ninth digit must equal 11 - (Σ digit[i]*(9-i)) mod 11, clamped to zero when
// the modulus is below two. Registry existence is not verified.
func IsNIF(value string) bool {
	digits := OnlyDigits(value)
	if len(digits) != 9 {
		return false
	}
	sum := 0
	for i := 0; i < 8; i++ {
		sum += int(digits[i]-'0') * (9 - i)
	}
	mod := sum % 11
	check := 11 - mod
	if mod < 2 {
		check = 0
	}
	return int(digits[8]-'0') == check
}

// NormalizePlate upper-cases a registration plate and removes whitespace and
// hyphens, yielding the canonical 6-character form.
func NormalizePlate(value string) string {
	upper := strings.ToUpper(strings.TrimSpace(value))
	upper = strings.Join(strings.Fields(upper), "")
	return strings.ReplaceAll(upper, "-", "")
}

// IsPlatePT accepts the common PT registration layouts (AA00AA, 00AA00,
// AA0000, 0000AA), with or without hyphens.
func IsPlatePT(value string) bool {
	normalized := NormalizePlate(value)
	if !plateCharset.MatchString(normalized) {
		return false
	}
	for _, pattern := range platePatterns {
		if pattern.MatchString(normalized) {
			return true
		}
	}
	return false
}

// MinWords reports whether the value splits into at least min non-empty
// whitespace-separated tokens. A two-word minimum is the full-name heuristic.
func MinWords(value string, min int) bool {
	return len(strings.Fields(value)) >= min
}

// MinLength reports whether the trimmed value holds at least min runes.
func MinLength(value string, min int) bool {
	return len([]rune(strings.TrimSpace(value))) >= min
}
