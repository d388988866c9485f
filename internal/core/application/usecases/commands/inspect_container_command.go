package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/container"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrInspectContainerCommandIsNotConstructed = errors.New(
		"InspectContainerCommand must be created via NewInspectContainerCommand constructor",
	)
)

// InspectContainerCommand records a quality control decision for a container.
type InspectContainerCommand struct { //nolint:recvcheck //using for validation
	containerCode kernel.Code
	decision      container.Decision

	guard guard.ConstructorGuard
}

// NewInspectContainerCommand creates an inspection command.
// The decision must be "pass" or "fail" in any letter case.
func NewInspectContainerCommand(containerCode string, decision string) (InspectContainerCommand, error) {
	command := InspectContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setContainerCode(containerCode),
		command.setDecision(decision),
	); err != nil {
		return InspectContainerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c InspectContainerCommand) Validate() error {
	return c.guard.Validate(ErrInspectContainerCommandIsNotConstructed)
}

// ContainerCode returns the code of the inspected container.
func (c InspectContainerCommand) ContainerCode() kernel.Code {
	return c.containerCode
}

// Decision returns the QC decision.
func (c InspectContainerCommand) Decision() container.Decision {
	return c.decision
}

func (c *InspectContainerCommand) setContainerCode(raw string) error {
	code, err := kernel.NewCode("containerCode", raw)
	if err != nil {
		return err
	}

	c.containerCode = code
	return nil
}

func (c *InspectContainerCommand) setDecision(raw string) error {
	decision, err := container.ParseDecision(raw)
	if err != nil {
		return err
	}

	c.decision = decision
	return nil
}
