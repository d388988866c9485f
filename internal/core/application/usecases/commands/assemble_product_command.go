package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrAssembleProductCommandIsNotConstructed = errors.New(
		"AssembleProductCommand must be created via NewAssembleProductCommand constructor",
	)
)

// AssembleProductCommand consumes a material container on the assembly line
// and produces a new product container.
//
// Example:
//
//	cmd, err := NewAssembleProductCommand("M-1", "P-1", "FG-1", 4)
//	if err != nil {
//	    return fmt.Errorf("invalid assembly data: %w", err)
//	}
//
//	handler := NewAssembleProductCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("assembly failed: %w", err)
//	}
type AssembleProductCommand struct { //nolint:recvcheck //using for validation
	materialCode kernel.Code
	productCode  kernel.Code
	productSKU   kernel.Code
	productQty   int

	guard guard.ConstructorGuard
}

// NewAssembleProductCommand creates an assembly command.
func NewAssembleProductCommand(
	materialCode string,
	productCode string,
	productSKU string,
	productQty int,
) (AssembleProductCommand, error) {
	command := AssembleProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMaterialCode(materialCode),
		command.setProductCode(productCode),
		command.setProductSKU(productSKU),
		command.setProductQty(productQty),
	); err != nil {
		return AssembleProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssembleProductCommand) Validate() error {
	return c.guard.Validate(ErrAssembleProductCommandIsNotConstructed)
}

// MaterialCode returns the code of the consumed container.
func (c AssembleProductCommand) MaterialCode() kernel.Code {
	return c.materialCode
}

// ProductCode returns the code of the container to create.
func (c AssembleProductCommand) ProductCode() kernel.Code {
	return c.productCode
}

// ProductSKU returns the SKU of the assembled product.
func (c AssembleProductCommand) ProductSKU() kernel.Code {
	return c.productSKU
}

// ProductQty returns the assembled quantity.
func (c AssembleProductCommand) ProductQty() int {
	return c.productQty
}

func (c *AssembleProductCommand) setMaterialCode(raw string) error {
	code, err := kernel.NewCode("materialContainer", raw)
	if err != nil {
		return err
	}

	c.materialCode = code
	return nil
}

func (c *AssembleProductCommand) setProductCode(raw string) error {
	code, err := kernel.NewCode("productContainer", raw)
	if err != nil {
		return err
	}

	c.productCode = code
	return nil
}

func (c *AssembleProductCommand) setProductSKU(raw string) error {
	sku, err := kernel.NewCode("productSku", raw)
	if err != nil {
		return err
	}

	c.productSKU = sku
	return nil
}

func (c *AssembleProductCommand) setProductQty(qty int) error {
	if err := kernel.ValidateQuantity("productQty", qty); err != nil {
		return err
	}

	c.productQty = qty
	return nil
}
