package errors

import "strings"

// ValidatePositive reports an ErrCodeInvalidOptions error when v is below 1.
func ValidatePositive(name string, v int) error {
	if v < 1 {
		return New(ErrCodeInvalidOptions, "%s must be at least 1, got %d", name, v)
	}
	return nil
}

// ValidateNonNegative reports an ErrCodeInvalidOptions error when v is negative.
func ValidateNonNegative(name string, v int) error {
	if v < 0 {
		return New(ErrCodeInvalidOptions, "%s must not be negative, got %d", name, v)
	}
	return nil
}

// ValidateChoice checks that value is one of the allowed choices.
// The comparison is case-sensitive; the error lists the choices in order.
func ValidateChoice(code Code, name, value string, choices []string) error {
	for _, c := range choices {
		if value == c {
			return nil
		}
	}
	return New(code, "invalid %s: %q (must be one of %s)", name, value, strings.Join(choices, ", "))
}
