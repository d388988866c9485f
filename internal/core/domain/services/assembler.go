package services

import (
	"errors"

	"warehouse/internal/core/domain/model/container"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// ErrProductCodeIsMaterialCode is returned when assembly would reuse the
// material container's code for the product.
var ErrProductCodeIsMaterialCode = errs.NewObjectAlreadyExistsErrorWithCause(
	"container",
	"product",
	errors.New("product container code equals material container code"),
)

// Product describes the container an assembly produces.
type Product struct {
	ID         kernel.UUID
	Code       kernel.Code
	SKU        kernel.Code
	Quantity   int
	LocationID kernel.UUID
}

// Assembler is a domain service that turns the content of a material
// container into a new product container.
//
// Business rules:
//   - the material container must hold material
//   - the product code must differ from the material code
//   - the product is created in PendingQC at the given location
//   - the material is cleared and becomes Empty
//
// Nothing is changed unless every rule holds, so a rejected assembly leaves
// the material container untouched.
//
// Example usage:
//
//	product, err := services.NewAssembler().Assemble(material, services.Product{
//	    ID:         kernel.NewUUID(),
//	    Code:       productCode,
//	    SKU:        productSKU,
//	    Quantity:   4,
//	    LocationID: assemblyLineID,
//	})
type Assembler struct{}

// NewAssembler creates a new Assembler instance.
func NewAssembler() Assembler {
	return Assembler{}
}

// Assemble consumes material and returns the new product container.
func (a Assembler) Assemble(material *container.Container, planned Product) (*container.Container, error) {
	if err := material.Validate(); err != nil {
		return nil, err
	}

	if material.Code().IsEqual(planned.Code) {
		return nil, ErrProductCodeIsMaterialCode
	}

	if !material.Status().HoldsMaterial() {
		return nil, errs.NewTransitionIsNotAllowedError("consume", material.Status().String())
	}

	product, err := container.NewContainer(planned.ID, planned.Code, planned.SKU, planned.Quantity, planned.LocationID)
	if err != nil {
		return nil, err
	}

	if err = material.Consume(); err != nil {
		return nil, err
	}

	return product, nil
}
