package commands

import (
	"context"

	"warehouse/internal/core/domain/model/container"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// findExisting loads a container that must exist.
func findExisting(
	ctx context.Context,
	repo ports.ContainerRepository,
	code kernel.Code,
) (*container.Container, error) {
	c, err := repo.Find(ctx, code)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errs.NewObjectNotFoundError("container", code.String())
	}
	return c, nil
}

// ensureAbsent fails with a conflict when a container with the code exists.
func ensureAbsent(ctx context.Context, repo ports.ContainerRepository, code kernel.Code) error {
	c, err := repo.Find(ctx, code)
	if err != nil {
		return err
	}
	if c != nil {
		return errs.NewObjectAlreadyExistsError("container", code.String())
	}
	return nil
}
