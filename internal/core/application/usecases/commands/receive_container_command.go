package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrReceiveContainerCommandIsNotConstructed = errors.New(
		"ReceiveContainerCommand must be created via NewReceiveContainerCommand constructor",
	)
)

// ReceiveContainerCommand represents a request to register a container
// arriving at the receiving dock with its content.
//
// Example:
//
//	cmd, err := NewReceiveContainerCommand("C-1001", "SKU-9", 10)
//	if err != nil {
//	    return fmt.Errorf("invalid receiving data: %w", err)
//	}
//
//	handler := NewReceiveContainerCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to receive container: %w", err)
//	}
type ReceiveContainerCommand struct { //nolint:recvcheck //using for validation
	containerCode kernel.Code
	sku           kernel.Code
	quantity      int

	guard guard.ConstructorGuard
}

// NewReceiveContainerCommand creates a command to receive a new container.
// Codes are trimmed; blank codes and negative quantities are rejected.
func NewReceiveContainerCommand(containerCode string, sku string, quantity int) (ReceiveContainerCommand, error) {
	command := ReceiveContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setContainerCode(containerCode),
		command.setSKU(sku),
		command.setQuantity(quantity),
	); err != nil {
		return ReceiveContainerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveContainerCommand) Validate() error {
	return c.guard.Validate(ErrReceiveContainerCommandIsNotConstructed)
}

// ContainerCode returns the code of the container to create.
func (c ReceiveContainerCommand) ContainerCode() kernel.Code {
	return c.containerCode
}

// SKU returns the received SKU.
func (c ReceiveContainerCommand) SKU() kernel.Code {
	return c.sku
}

// Quantity returns the received quantity.
func (c ReceiveContainerCommand) Quantity() int {
	return c.quantity
}

func (c *ReceiveContainerCommand) setContainerCode(raw string) error {
	code, err := kernel.NewCode("containerCode", raw)
	if err != nil {
		return err
	}

	c.containerCode = code
	return nil
}

func (c *ReceiveContainerCommand) setSKU(raw string) error {
	sku, err := kernel.NewCode("sku", raw)
	if err != nil {
		return err
	}

	c.sku = sku
	return nil
}

func (c *ReceiveContainerCommand) setQuantity(quantity int) error {
	if err := kernel.ValidateQuantity("quantity", quantity); err != nil {
		return err
	}

	c.quantity = quantity
	return nil
}
