package container

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status represents the lifecycle state of a container.
//
// State transitions:
//
//	(new) ──receive/assemble──> PendingQC ──inspect pass──> Stored
//	                                │                         │
//	                                └──inspect fail──> QCHold │
//	                                                          │
//	 any loaded state ──pick──> InTransit <───────────────────┘
//	 any loaded state ──consume (assembly material)──> Empty
//	 any state, Unknown included ──return──> Idle
//
// A loaded state is any state that holds material: PendingQC, Stored, QCHold
// and InTransit. Idle and Empty containers hold nothing, so inspecting,
// picking or consuming them is rejected. Putaway changes the location only
// and is allowed from every state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Idle is a reusable empty container, e.g. after a return.
	Idle

	// PendingQC is a received or assembled container waiting for inspection.
	PendingQC

	// Stored is a container that passed inspection.
	Stored

	// QCHold is a container that failed inspection.
	QCHold

	// InTransit is a picked container on its way out.
	InTransit

	// Empty is an assembly material container whose content was consumed.
	Empty
)

// getStatusStrings returns the persisted name of every status.
// The names match the values stored by the existing warehouse database.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Idle:      "Idle",
		PendingQC: "Pending_QC",
		Stored:    "Stored",
		QCHold:    "QC_Hold",
		InTransit: "In_Transit",
		Empty:     "Empty",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Idle:      "Idle",
		PendingQC: "Pending_QC",
		Stored:    "Stored",
		QCHold:    "QC_Hold",
		InTransit: "In_Transit",
		Empty:     "Empty",
	}
}

// Statuses returns every valid status in declaration order.
func Statuses() []Status {
	return []Status{Idle, PendingQC, Stored, QCHold, InTransit, Empty}
}

// ParseStatus converts a persisted status name back to a Status.
// Anything outside the enumeration is rejected; the engine never writes it.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the six lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, or "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// HoldsMaterial reports whether a container in this status carries a SKU and quantity.
func (s Status) HoldsMaterial() bool {
	switch s {
	case PendingQC, Stored, QCHold, InTransit:
		return true
	default:
		return false
	}
}

// ValidateCanHoldMaterial checks the consistency between the status and the
// presence of a SKU and quantity.
//
// Business Rules:
//   - Idle and Empty containers must not hold material
//   - every other status must hold material
func (s Status) ValidateCanHoldMaterial(hasMaterial bool) error {
	if err := s.Validate(); err != nil {
		return err
	}

	if hasMaterial && !s.HoldsMaterial() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to hold material", s.String()),
		)
	}

	if !hasMaterial && s.HoldsMaterial() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to hold no material", s.String()),
		)
	}

	return nil
}

// Inspect transitions the status according to a QC decision.
//
// Valid transitions:
//   - any loaded status -> Stored (pass)
//   - any loaded status -> QCHold (fail)
//
// Re-inspection of Stored or QCHold containers is allowed.
func (s Status) Inspect(decision Decision) (Status, error) {
	if err := decision.Validate(); err != nil {
		return Unknown, err
	}

	if !s.HoldsMaterial() {
		return Unknown, errs.NewTransitionIsNotAllowedError("inspect", s.String())
	}

	if decision == Pass {
		return Stored, nil
	}
	return QCHold, nil
}

// Pick transitions any loaded status to InTransit.
// Picking an InTransit container is allowed and changes nothing.
func (s Status) Pick() (Status, error) {
	if !s.HoldsMaterial() {
		return Unknown, errs.NewTransitionIsNotAllowedError("pick", s.String())
	}

	return InTransit, nil
}

// Consume transitions an assembly material container to Empty.
func (s Status) Consume() (Status, error) {
	if !s.HoldsMaterial() {
		return Unknown, errs.NewTransitionIsNotAllowedError("consume", s.String())
	}

	return Empty, nil
}

// Return transitions any valid status, and Unknown, to Idle. It is the way
// to bring a container with an unrecognized stored status back into the
// lifecycle.
func (s Status) Return() (Status, error) {
	if s != Unknown {
		if err := s.Validate(); err != nil {
			return Unknown, err
		}
	}

	return Idle, nil
}
