package kernel

import (
	"errors"
	"strings"
	"unicode/utf8"

	"warehouse/internal/pkg/errs"
)

// CodeMaxLength bounds container, location and SKU codes. It matches the
// varchar width of the code columns.
const CodeMaxLength = 64

// ErrCodeIsNotConstructed is returned when a zero-value Code is used.
var ErrCodeIsNotConstructed = errs.NewValueIsRequiredError("Code must be created via NewCode")

// Code is a human-assigned identifier such as a container code ("C-1001"),
// a location code ("A-01-01") or a SKU ("SKU-9").
//
// Codes arrive as untyped text from scanners and forms. NewCode trims the
// surrounding whitespace and treats a blank string as absent, so the zero
// value doubles as "no code given".
type Code struct {
	value string
}

// NewCode validates raw and returns it as a Code. paramName is used in the
// returned error so callers can tell which field was rejected.
//
// Returns:
//   - errs.ValueIsRequiredError if raw is blank
//   - errs.ValueIsOutOfRangeError if raw is longer than CodeMaxLength runes
//   - errs.ValueIsInvalidError if raw contains control characters
func NewCode(paramName string, raw string) (Code, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Code{}, errs.NewValueIsRequiredError(paramName)
	}

	if n := utf8.RuneCountInString(value); n > CodeMaxLength {
		return Code{}, errs.NewValueIsOutOfRangeError(paramName+" length", n, 1, CodeMaxLength)
	}

	if strings.ContainsFunc(value, isControl) {
		return Code{}, errs.NewValueIsInvalidErrorWithCause(paramName, errors.New("contains control characters"))
	}

	return Code{value: value}, nil
}

// MustNewCode is NewCode for constants and tests. It panics on invalid input.
func MustNewCode(raw string) Code {
	code, err := NewCode("code", raw)
	if err != nil {
		panic(err)
	}
	return code
}

// String returns the trimmed code.
func (c Code) String() string {
	return c.value
}

// IsZero reports whether the code is absent.
func (c Code) IsZero() bool {
	return c.value == ""
}

// IsEqual compares codes exactly; codes are case sensitive.
func (c Code) IsEqual(other Code) bool {
	return c.value == other.value
}

// Validate returns ErrCodeIsNotConstructed for the zero value.
func (c Code) Validate() error {
	if c.IsZero() {
		return ErrCodeIsNotConstructed
	}
	return nil
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}
