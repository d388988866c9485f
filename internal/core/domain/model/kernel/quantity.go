package kernel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"warehouse/internal/pkg/errs"
)

// QuantityMax is the largest quantity a container can hold. It matches the
// integer column the quantity is stored in.
const QuantityMax = math.MaxInt32

// ParseQuantity parses a quantity that arrived as text.
//
// Parsing rules:
//   - blank, unparsable and non-finite values ("", "abc", "NaN", "Inf") are
//     treated as missing and return errs.ValueIsRequiredError
//   - fractional values ("1.5") return errs.ValueIsInvalidError
//   - negative or too large values return errs.ValueIsOutOfRangeError
//
// Integral values written in float notation ("10.0", "1e2") are accepted.
func ParseQuantity(paramName string, raw string) (int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, errs.NewValueIsRequiredError(paramName)
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errs.NewValueIsRequiredErrorWithCause(paramName, fmt.Errorf("%q is not a number", value))
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errs.NewValueIsRequiredErrorWithCause(paramName, fmt.Errorf("%q is not a finite number", value))
	}

	if f != math.Trunc(f) {
		return 0, errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%q is not an integer", value))
	}

	if f < 0 || f > QuantityMax {
		return 0, errs.NewValueIsOutOfRangeError(paramName, value, 0, QuantityMax)
	}

	return int(f), nil
}

// ValidateQuantity checks a typed quantity against the same bounds ParseQuantity applies.
func ValidateQuantity(paramName string, quantity int) error {
	if quantity < 0 || quantity > QuantityMax {
		return errs.NewValueIsOutOfRangeError(paramName, quantity, 0, QuantityMax)
	}
	return nil
}
