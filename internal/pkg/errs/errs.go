package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound         = errors.New("object not found")
	ErrObjectAlreadyExists    = errors.New("object already exists")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsOutOfRange      = errors.New("value is out of range")
	ErrValueIsRequired        = errors.New("value is required")
	ErrTransitionIsNotAllowed = errors.New("transition is not allowed")
	ErrPartialApplication     = errors.New("operation was partially applied")
	ErrStoredStateIsInvalid   = errors.New("stored state is invalid")
)

// ObjectNotFoundError reports that an object identified by ID could not be found.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	msg := fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID))
	return withCause(msg, e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectAlreadyExistsError reports that an object with the same natural key exists.
type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectAlreadyExistsError(paramName string, id any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id}
}

func NewObjectAlreadyExistsErrorWithCause(paramName string, id any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	msg := fmt.Sprintf("%s: %s %s", ErrObjectAlreadyExists, e.ParamName, sanitize(e.ID))
	return withCause(msg, e.Cause)
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// ValueIsInvalidError reports a value that failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside the [Min, Max] bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsOutOfRange, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a required value that is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// TransitionIsNotAllowedError reports an operation that is illegal for the
// current lifecycle state of an object.
type TransitionIsNotAllowedError struct {
	Operation string
	From      string
	Cause     error
}

func NewTransitionIsNotAllowedError(operation, from string) *TransitionIsNotAllowedError {
	return &TransitionIsNotAllowedError{Operation: operation, From: from}
}

func NewTransitionIsNotAllowedErrorWithCause(operation, from string, cause error) *TransitionIsNotAllowedError {
	return &TransitionIsNotAllowedError{Operation: operation, From: from, Cause: cause}
}

func (e *TransitionIsNotAllowedError) Error() string {
	msg := fmt.Sprintf("%s: cannot %s from %s", ErrTransitionIsNotAllowed, e.Operation, e.From)
	return withCause(msg, e.Cause)
}

func (e *TransitionIsNotAllowedError) Unwrap() error {
	return ErrTransitionIsNotAllowed
}

// PartialApplicationError reports a multi-step operation whose first steps may
// have been persisted while a later step failed. Applied lists the steps that
// were written before the failure.
type PartialApplicationError struct {
	Operation string
	Applied   []string
	Cause     error
}

func NewPartialApplicationError(operation string, applied []string, cause error) *PartialApplicationError {
	return &PartialApplicationError{Operation: operation, Applied: applied, Cause: cause}
}

func (e *PartialApplicationError) Error() string {
	msg := fmt.Sprintf("%s: %s applied [%s]", ErrPartialApplication, e.Operation, strings.Join(e.Applied, ", "))
	return withCause(msg, e.Cause)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *PartialApplicationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrPartialApplication}
	}
	return []error{ErrPartialApplication, e.Cause}
}

// StoredStateIsInvalidError reports a persisted record that cannot be rebuilt
// into a valid object. The cause is kept for the message only, so a
// validation failure inside it is not mistaken for bad input.
type StoredStateIsInvalidError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewStoredStateIsInvalidError(paramName string, id any, cause error) *StoredStateIsInvalidError {
	return &StoredStateIsInvalidError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *StoredStateIsInvalidError) Error() string {
	msg := fmt.Sprintf("%s: %s %s", ErrStoredStateIsInvalid, e.ParamName, sanitize(e.ID))
	return withCause(msg, e.Cause)
}

func (e *StoredStateIsInvalidError) Unwrap() error {
	return ErrStoredStateIsInvalid
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause.Error()))
}

func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "\n", " ")), " ")
}
