package commands

import (
	"context"
)

// InspectContainerCommandHandler applies QC decisions: pass stores the
// container, fail puts it on hold. The location is not changed.
type InspectContainerCommandHandler struct {
	uowFactory ContainerUoWFactory
}

// NewInspectContainerCommandHandler creates a handler for inspection operations.
func NewInspectContainerCommandHandler(uowFactory ContainerUoWFactory) InspectContainerCommandHandler {
	return InspectContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the inspection command.
// Returns errs.ObjectNotFoundError for unknown containers and
// errs.TransitionIsNotAllowedError for containers holding no material.
func (h InspectContainerCommandHandler) Handle(ctx context.Context, cmd InspectContainerCommand) error {
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
	inspected, err := findExisting(ctx, containerRepo, cmd.ContainerCode())
	if err != nil {
		return err
	}

	if err = inspected.Inspect(cmd.Decision()); err != nil {
		return err
	}

	if err = containerRepo.Update(ctx, inspected); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
