package validation

import (
	"fmt"
	"time"

	"github.com/goliatone/go-quoteform/pkg/model"
)

// Func is the uniform shape every bound validator resolves to. The reference
// instant only matters to the date kinds; the others ignore it.
type Func func(value string, now time.Time) bool

// ForKind binds a rule kind from a definition to its predicate. The param
// carries the threshold for the counted kinds (min-words defaults to 2,
// min-length to 1 when the definition leaves it at zero).
func ForKind(kind model.RuleKind, param int) (Func, error) {
	switch kind {
	case model.RuleNone:
		return func(string, time.Time) bool { return true }, nil
	case model.RuleEmail:
		return func(v string, _ time.Time) bool { return IsEmail(v) }, nil
	case model.RulePhonePT:
		return func(v string, _ time.Time) bool { return IsPhonePT(v) }, nil
	case model.RulePostalPT:
		return func(v string, _ time.Time) bool { return IsPostalPT(v) }, nil
	case model.RuleNIF:
		return func(v string, _ time.Time) bool { return IsNIF(v) }, nil
	case model.RulePlatePT:
		return func(v string, _ time.Time) bool { return IsPlatePT(v) }, nil
	case model.RuleMinWords:
		min := param
		if min <= 0 {
			min = 2
		}
		return func(v string, _ time.Time) bool { return MinWords(v, min) }, nil
	case model.RuleMinLength:
		min := param
		if min <= 0 {
			min = 1
		}
		return func(v string, _ time.Time) bool { return MinLength(v, min) }, nil
	case model.RulePastDate:
		return IsPastDate, nil
	case model.RuleTodayOrFuture:
		return IsTodayOrFuture, nil
	default:
		return nil, fmt.Errorf("validation: unknown rule kind %q", kind)
	}
}

// NormalizeValue applies a definition's normalization kind to a raw value.
// Unknown kinds pass the value through untouched.
func NormalizeValue(kind model.Normalize, value string) string {
	switch kind {
	case model.NormalizeDigits:
		return OnlyDigits(value)
	case model.NormalizePlate:
		return NormalizePlate(value)
	default:
		return value
	}
}

// CheckCross evaluates a cross-field rule over two already-parsed dates.
// It returns the violation message for the dependent field, or empty when the
// rule holds. The earlier-than-first violation wins over the minimum-gap one.
func CheckCross(rule model.CrossRule, first, second time.Time) string {
	if !second.After(first) {
		return rule.BeforeMessage
	}
	if rule.MinYears > 0 {
		minimum := first.AddDate(rule.MinYears, 0, 0)
		if second.Before(minimum) {
			return rule.TooEarlyMessage
		}
	}
	return ""
}
