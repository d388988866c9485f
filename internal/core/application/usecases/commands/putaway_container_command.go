package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrPutawayContainerCommandIsNotConstructed = errors.New(
		"PutawayContainerCommand must be created via NewPutawayContainerCommand constructor",
	)
)

// PutawayContainerCommand moves a container to a storage location.
//
// Example:
//
//	cmd, err := NewPutawayContainerCommand("C-1001", "A-01-01")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type PutawayContainerCommand struct { //nolint:recvcheck //using for validation
	containerCode kernel.Code
	locationCode  kernel.Code

	guard guard.ConstructorGuard
}

// NewPutawayContainerCommand creates a putaway command.
func NewPutawayContainerCommand(containerCode string, locationCode string) (PutawayContainerCommand, error) {
	command := PutawayContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setContainerCode(containerCode),
		command.setLocationCode(locationCode),
	); err != nil {
		return PutawayContainerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PutawayContainerCommand) Validate() error {
	return c.guard.Validate(ErrPutawayContainerCommandIsNotConstructed)
}

// ContainerCode returns the code of the moved container.
func (c PutawayContainerCommand) ContainerCode() kernel.Code {
	return c.containerCode
}

// LocationCode returns the code of the target location.
func (c PutawayContainerCommand) LocationCode() kernel.Code {
	return c.locationCode
}

func (c *PutawayContainerCommand) setContainerCode(raw string) error {
	code, err := kernel.NewCode("containerCode", raw)
	if err != nil {
		return err
	}

	c.containerCode = code
	return nil
}

func (c *PutawayContainerCommand) setLocationCode(raw string) error {
	code, err := kernel.NewCode("locationCode", raw)
	if err != nil {
		return err
	}

	c.locationCode = code
	return nil
}
