package commands

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"
)

// AssembleProductCommandHandler runs the two-container assembly transition.
//
// The material container is written first and the product is created second,
// both inside one transaction. When the product cannot be created the
// transaction is rolled back; if that rollback fails too, the material may be
// left Empty without a product and the handler reports it with
// errs.PartialApplicationError.
type AssembleProductCommandHandler struct {
	uowFactory UoWFactory
	assembler  services.Assembler
}

// NewAssembleProductCommandHandler creates a handler for assembly operations.
func NewAssembleProductCommandHandler(uowFactory UoWFactory) AssembleProductCommandHandler {
	return AssembleProductCommandHandler{
		uowFactory: uowFactory,
		assembler:  services.NewAssembler(),
	}
}

// Handle processes the assembly command.
//
// Failure modes:
//   - material container unknown: errs.ObjectNotFoundError
//   - product code already registered: errs.ObjectAlreadyExistsError
//   - material holds nothing: errs.TransitionIsNotAllowedError
//   - ASSEMBLY-LINE-1 missing: errs.ObjectNotFoundError
//
// None of these write anything.
func (h AssembleProductCommandHandler) Handle(ctx context.Context, cmd AssembleProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	containerRepo := uow.ContainerRepository()
	material, err := findExisting(ctx, containerRepo, cmd.MaterialCode())
	if err != nil {
		return err
	}

	if err = ensureAbsent(ctx, containerRepo, cmd.ProductCode()); err != nil {
		return err
	}

	assemblyLineID, err := uow.LocationDirectory().Resolve(ctx, location.AssemblyLine())
	if err != nil {
		return err
	}

	product, err := h.assembler.Assemble(material, services.Product{
		ID:         kernel.NewUUID(),
		Code:       cmd.ProductCode(),
		SKU:        cmd.ProductSKU(),
		Quantity:   cmd.ProductQty(),
		LocationID: assemblyLineID,
	})
	if err != nil {
		return err
	}

	if err = containerRepo.Update(ctx, material); err != nil {
		return err
	}

	if err = containerRepo.Add(ctx, product); err != nil {
		return h.abandon(ctx, uow, cmd, err)
	}

	return uow.Commit(ctx)
}

// abandon rolls back after the material was written. A failed rollback is
// surfaced as a partial application naming the written side.
func (h AssembleProductCommandHandler) abandon(ctx context.Context, uow TxManager, cmd AssembleProductCommand, cause error) error {
	rbErr := uow.Rollback(ctx)
	if rbErr == nil {
		return cause
	}

	return errs.NewPartialApplicationError(
		"assemble",
		[]string{fmt.Sprintf("material container %s emptied", cmd.MaterialCode())},
		errors.Join(cause, fmt.Errorf("rollback: %w", rbErr)),
	)
}
