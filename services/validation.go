package services

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var editPattern = regexp.MustCompile(`^[0-9]*\.?[0-9]*$`)

// NormalizeEdit turns a comma decimal separator into a period.
func NormalizeEdit(s string) string {
	return strings.ReplaceAll(s, ",", ".")
}

// ValidateEdit checks an already normalized edit string. Empty is valid and
// means "unset".
func ValidateEdit(s string) error {
	return validation.Validate(s,
		validation.Match(editPattern).Error("must contain only digits and at most one decimal separator"),
	)
}

// IsValidEdit reports whether s, after normalization, is an acceptable edit.
func IsValidEdit(s string) bool {
	return ValidateEdit(NormalizeEdit(s)) == nil
}
