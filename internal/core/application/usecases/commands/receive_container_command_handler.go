package commands

import (
	"context"

	"warehouse/internal/core/domain/model/container"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
)

// ReceiveContainerCommandHandler registers received containers at the
// RECEIVING location in PendingQC status.
//
// Example:
//
//	handler := NewReceiveContainerCommandHandler(uowFactory)
//	cmd, _ := NewReceiveContainerCommand("C-1001", "SKU-9", 10)
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectAlreadyExists):
//	    log.Println("container is already registered")
//	case err != nil:
//	    log.Printf("receiving failed: %v", err)
//	}
type ReceiveContainerCommandHandler struct {
	uowFactory UoWFactory
}

// NewReceiveContainerCommandHandler creates a handler for receiving operations.
func NewReceiveContainerCommandHandler(uowFactory UoWFactory) ReceiveContainerCommandHandler {
	return ReceiveContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the receive command.
// Fails with errs.ObjectAlreadyExistsError when the code is registered and
// with errs.ObjectNotFoundError when the RECEIVING location is missing.
func (h ReceiveContainerCommandHandler) Handle(ctx context.Context, cmd ReceiveContainerCommand) error {
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
	if err := ensureAbsent(ctx, containerRepo, cmd.ContainerCode()); err != nil {
		return err
	}

	locationID, err := uow.LocationDirectory().Resolve(ctx, location.Receiving())
	if err != nil {
		return err
	}

	received, err := container.NewContainer(
		kernel.NewUUID(),
		cmd.ContainerCode(),
		cmd.SKU(),
		cmd.Quantity(),
		locationID,
	)
	if err != nil {
		return err
	}

	if err = containerRepo.Add(ctx, received); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
