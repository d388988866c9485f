package commands

import (
	"context"
)

// PutawayContainerCommandHandler changes the location of a container.
// Status, SKU and quantity stay as they are.
type PutawayContainerCommandHandler struct {
	uowFactory UoWFactory
}

// NewPutawayContainerCommandHandler creates a handler for putaway operations.
func NewPutawayContainerCommandHandler(uowFactory UoWFactory) PutawayContainerCommandHandler {
	return PutawayContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the putaway command.
// Returns errs.ObjectNotFoundError when either the container or the location is unknown.
func (h PutawayContainerCommandHandler) Handle(ctx context.Context, cmd PutawayContainerCommand) error {
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
	moved, err := findExisting(ctx, containerRepo, cmd.ContainerCode())
	if err != nil {
		return err
	}

	locationID, err := uow.LocationDirectory().Resolve(ctx, cmd.LocationCode())
	if err != nil {
		return err
	}

	if err = moved.MoveTo(locationID); err != nil {
		return err
	}

	if err = containerRepo.Update(ctx, moved); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
