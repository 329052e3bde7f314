package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownField is returned when no rule exists for a field path.
	ErrUnknownField = errors.New("validation: unknown field")
	// ErrFieldType is returned when a parser is used on a field of another type.
	ErrFieldType = errors.New("validation: field type mismatch")
	// ErrNotNumeric rejects input that does not parse as a number.
	ErrNotNumeric = errors.New("validation: value is not numeric")
	// ErrNotInteger rejects fractional input for count fields.
	ErrNotInteger = errors.New("validation: value is not a whole number")
	// ErrOutOfRange rejects input above the field maximum.
	ErrOutOfRange = errors.New("validation: value out of range")
	// ErrTooLong rejects text longer than the field maximum.
	ErrTooLong = errors.New("validation: value too long")
	// ErrNotAllowed rejects values outside an enum.
	ErrNotAllowed = errors.New("validation: value not allowed")
)

// ParseCount converts raw input for an integer field. Empty input is 0,
// negative input floors to the field minimum, anything else outside the
// range or not a whole number is rejected.
func ParseCount(path, input string) (int, error) {
	rule, d, err := parseNumeric(path, input, FieldTypeInteger)
	if err != nil {
		return 0, err
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, fmt.Errorf("%w: %s %q", ErrNotInteger, rule.Label, input)
	}
	return int(d.IntPart()), nil
}

// ParseMeasure converts raw input for a length or volume field using the same
// rules as ParseCount but keeping decimals.
func ParseMeasure(path, input string) (decimal.Decimal, error) {
	_, d, err := parseNumeric(path, input, FieldTypeNumber)
	if err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// ParseText enforces the length and enum bounds of a text field without
// trimming. Required-ness is left to Validate so partially filled forms stay
// editable.
func ParseText(path, input string) (string, error) {
	rule, ok := RuleFor(path)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownField, path)
	}
	if rule.Type != FieldTypeString {
		return "", fmt.Errorf("%w: %s is %s", ErrFieldType, path, rule.Type)
	}
	if rule.MaxLength > 0 && utf8.RuneCountInString(input) > rule.MaxLength {
		return "", fmt.Errorf("%w: %s cannot exceed %d characters", ErrTooLong, rule.Label, rule.MaxLength)
	}
	if len(rule.Enum) > 0 && !contains(rule.Enum, input) {
		return "", fmt.Errorf("%w: %s must be one of %s", ErrNotAllowed, rule.Label, quoteAll(rule.Enum))
	}
	return input, nil
}

func parseNumeric(path, input string, want FieldType) (Rule, decimal.Decimal, error) {
	rule, ok := RuleFor(path)
	if !ok {
		return Rule{}, decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownField, path)
	}
	if rule.Type != want {
		return rule, decimal.Zero, fmt.Errorf("%w: %s is %s", ErrFieldType, path, rule.Type)
	}

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return rule, decimal.NewFromInt(rule.Min), nil
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return rule, decimal.Zero, fmt.Errorf("%w: %s %q", ErrNotNumeric, rule.Label, input)
	}

	min := decimal.NewFromInt(rule.Min)
	if d.LessThan(min) {
		return rule, min, nil
	}
	if d.GreaterThan(decimal.NewFromInt(rule.Max)) {
		return rule, decimal.Zero, fmt.Errorf("%w: %s cannot exceed %d", ErrOutOfRange, rule.Label, rule.Max)
	}
	return rule, d, nil
}
