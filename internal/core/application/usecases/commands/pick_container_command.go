package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrPickContainerCommandIsNotConstructed = errors.New(
		"PickContainerCommand must be created via NewPickContainerCommand constructor",
	)
)

// PickContainerCommand marks a container as picked for shipment.
type PickContainerCommand struct { //nolint:recvcheck //using for validation
	containerCode kernel.Code

	guard guard.ConstructorGuard
}

// NewPickContainerCommand creates a pick command.
func NewPickContainerCommand(containerCode string) (PickContainerCommand, error) {
	command := PickContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setContainerCode(containerCode); err != nil {
		return PickContainerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PickContainerCommand) Validate() error {
	return c.guard.Validate(ErrPickContainerCommandIsNotConstructed)
}

// ContainerCode returns the code of the picked container.
func (c PickContainerCommand) ContainerCode() kernel.Code {
	return c.containerCode
}

func (c *PickContainerCommand) setContainerCode(raw string) error {
	code, err := kernel.NewCode("containerCode", raw)
	if err != nil {
		return err
	}

	c.containerCode = code
	return nil
}
