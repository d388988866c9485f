package errs

import "errors"

// Kind is the closed set of failure categories exposed at the lifecycle
// engine boundary.
type Kind int

const (
	// KindNone is reported for a nil error.
	KindNone Kind = iota

	// KindValidation covers missing or malformed input and illegal transitions.
	// Nothing has been mutated.
	KindValidation

	// KindNotFound means a referenced container or location does not resolve.
	// Nothing has been mutated.
	KindNotFound

	// KindConflict means a container code that must be new already exists.
	// Nothing has been mutated.
	KindConflict

	// KindBackend covers store faults and every unclassified error.
	KindBackend

	// KindPartialApplication means a multi-step operation may have persisted
	// some of its steps. Callers must inspect and remediate.
	KindPartialApplication
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindNone:               "none",
		KindValidation:         "validation",
		KindNotFound:           "not_found",
		KindConflict:           "conflict",
		KindBackend:            "backend",
		KindPartialApplication: "partial_application",
	}
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "backend"
}

// KindOf classifies err. The check order matters: a partial application wraps
// its cause, which may itself be a conflict or a not found error.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrPartialApplication):
		return KindPartialApplication
	case errors.Is(err, ErrObjectAlreadyExists):
		return KindConflict
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange),
		errors.Is(err, ErrTransitionIsNotAllowed):
		return KindValidation
	default:
		return KindBackend
	}
}
