// Package guard provides the constructor guard used by commands and queries to
// reject zero-value instances that bypassed validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as created through its constructor. Embed it in
// a struct and call Validate from the struct's own Validate method; a zero-value
// struct fails validation.
//
// Example usage:
//
//	var ErrPickCommandIsNotConstructed = errors.New("PickContainerCommand must be created via NewPickContainerCommand")
//
//	type PickContainerCommand struct {
//	    code  kernel.Code
//	    guard guard.ConstructorGuard
//	}
//
//	func (c PickContainerCommand) Validate() error {
//	    return c.guard.Validate(ErrPickCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
