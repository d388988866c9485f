package container

import (
	"fmt"
	"strings"

	"warehouse/internal/pkg/errs"
)

// Decision is the outcome of a quality control inspection.
type Decision int

const (
	// UnknownDecision is the zero value and is never valid.
	UnknownDecision Decision = iota

	// Pass moves the container to Stored.
	Pass

	// Fail moves the container to QCHold.
	Fail
)

// ParseDecision accepts "pass" or "fail", ignoring case and surrounding spaces.
// Every other value, blank included, is rejected.
func ParseDecision(raw string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pass":
		return Pass, nil
	case "fail":
		return Fail, nil
	case "":
		return UnknownDecision, errs.NewValueIsRequiredError("decision")
	default:
		return UnknownDecision, errs.NewValueIsInvalidErrorWithCause(
			"decision",
			fmt.Errorf("%q is not one of pass, fail", raw),
		)
	}
}

// Validate rejects UnknownDecision and out-of-range values.
func (d Decision) Validate() error {
	if d != Pass && d != Fail {
		return errs.NewValueIsInvalidErrorWithCause("decision", fmt.Errorf("%d is not a valid decision", d))
	}
	return nil
}

func (d Decision) String() string {
	switch d {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	default:
		return "unknown"
	}
}
