package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrReturnContainerCommandIsNotConstructed = errors.New(
		"ReturnContainerCommand must be created via NewReturnContainerCommand constructor",
	)
)

// ReturnContainerCommand resets a container so it can be reused.
type ReturnContainerCommand struct { //nolint:recvcheck //using for validation
	containerCode kernel.Code

	guard guard.ConstructorGuard
}

// NewReturnContainerCommand creates a return command.
func NewReturnContainerCommand(containerCode string) (ReturnContainerCommand, error) {
	command := ReturnContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setContainerCode(containerCode); err != nil {
		return ReturnContainerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnContainerCommand) Validate() error {
	return c.guard.Validate(ErrReturnContainerCommandIsNotConstructed)
}

// ContainerCode returns the code of the returned container.
func (c ReturnContainerCommand) ContainerCode() kernel.Code {
	return c.containerCode
}

func (c *ReturnContainerCommand) setContainerCode(raw string) error {
	code, err := kernel.NewCode("containerCode", raw)
	if err != nil {
		return err
	}

	c.containerCode = code
	return nil
}
