// Package validation contains the field-level predicates applied to form
// input before an entity is built from it.
package validation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var (
	numericPattern     = regexp.MustCompile(`^-?[0-9][0-9.,]*$`)
	wholeNumberPattern = regexp.MustCompile(`^[0-9]+$`)
)

// IsNumeric reports whether s is a decimal number string: an optional leading
// minus, then digits with embedded '.' or ',' separators. The empty string is
// not numeric.
func IsNumeric(s string) bool {
	return numericPattern.MatchString(s)
}

// IsWholeNumber reports whether s consists of one or more digits only.
// A sign or a decimal point disqualifies it.
func IsWholeNumber(s string) bool {
	return wholeNumberPattern.MatchString(s)
}

// IsStrongPassword reports whether a password is acceptable: at least 8
// characters, no whitespace anywhere, and at least one digit, one uppercase
// letter and one symbol.
func IsStrongPassword(s string) bool {
	if len(s) < 8 {
		return false
	}

	var hasNumber, hasUppercase, hasSymbol bool
	for _, ch := range s {
		if unicode.IsSpace(ch) {
			return false
		}
		switch {
		case unicode.IsDigit(ch):
			hasNumber = true
		case unicode.IsUpper(ch):
			hasUppercase = true
		case !unicode.IsLetter(ch):
			hasSymbol = true
		}
	}

	return hasNumber && hasUppercase && hasSymbol
}

// ParseDecimal parses a string accepted by IsNumeric into a decimal,
// dropping thousands separators first.
func ParseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
}

// ParseOptionalDecimal is ParseDecimal for fields that may be left empty;
// an empty string yields zero.
func ParseOptionalDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return ParseDecimal(s)
}
