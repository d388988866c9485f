package commands

import (
	"context"
)

// PickContainerCommandHandler moves loaded containers to InTransit.
type PickContainerCommandHandler struct {
	uowFactory ContainerUoWFactory
}

// NewPickContainerCommandHandler creates a handler for pick operations.
func NewPickContainerCommandHandler(uowFactory ContainerUoWFactory) PickContainerCommandHandler {
	return PickContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pick command.
// Picking an InTransit container succeeds without writing anything.
func (h PickContainerCommandHandler) Handle(ctx context.Context, cmd PickContainerCommand) error {
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
	picked, err := findExisting(ctx, containerRepo, cmd.ContainerCode())
	if err != nil {
		return err
	}

	if err = picked.Pick(); err != nil {
		return err
	}

	if err = containerRepo.Update(ctx, picked); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
