package commands

import (
	"context"
)

// ReturnContainerCommandHandler clears a container's content and makes it Idle.
// Returning an Idle container is a successful no-op.
type ReturnContainerCommandHandler struct {
	uowFactory ContainerUoWFactory
}

// NewReturnContainerCommandHandler creates a handler for return operations.
func NewReturnContainerCommandHandler(uowFactory ContainerUoWFactory) ReturnContainerCommandHandler {
	return ReturnContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the return command.
func (h ReturnContainerCommandHandler) Handle(ctx context.Context, cmd ReturnContainerCommand) error {
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
	returned, err := findExisting(ctx, containerRepo, cmd.ContainerCode())
	if err != nil {
		return err
	}

	if err = returned.Return(); err != nil {
		return err
	}

	if err = containerRepo.Update(ctx, returned); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
