// Package location models the named storage slots and logical zones a
// container can occupy: docks, shelves and assembly lines.
//
// Locations are provisioned outside the lifecycle core. The core only
// resolves a location code to its internal identifier and never creates,
// renames or deletes a location.
package location

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
)

// Well-known location codes the lifecycle engine resolves on its own.
const (
	// ReceivingCode is the dock where received containers are registered.
	ReceivingCode = "RECEIVING"

	// AssemblyLineCode is where assembled product containers are created.
	AssemblyLineCode = "ASSEMBLY-LINE-1"
)

// ErrLocationIsNotConstructed is returned when a Location bypassed NewLocation.
var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

// Receiving returns the code of the receiving dock.
func Receiving() kernel.Code {
	return kernel.MustNewCode(ReceivingCode)
}

// AssemblyLine returns the code of the assembly line.
func AssemblyLine() kernel.Code {
	return kernel.MustNewCode(AssemblyLineCode)
}

// Location is a named place identified internally by a stable UUID.
type Location struct {
	id            kernel.UUID
	code          kernel.Code
	isConstructed bool
}

// NewLocation creates a Location from a validated identifier and code.
func NewLocation(id kernel.UUID, code kernel.Code) (*Location, error) {
	if err := errors.Join(id.Validate(), code.Validate()); err != nil {
		return nil, err
	}

	return &Location{
		id:            id,
		code:          code,
		isConstructed: true,
	}, nil
}

// Validate ensures the Location was created through NewLocation.
func (l *Location) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationIsNotConstructed
	}
	return nil
}

// ID returns the internal identifier containers reference.
func (l *Location) ID() kernel.UUID {
	return l.id
}

// Code returns the human-assigned code, e.g. "A-01-01".
func (l *Location) Code() kernel.Code {
	return l.code
}
