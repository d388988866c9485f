// Package ports defines the persistence contracts of the warehouse domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"warehouse/internal/core/domain/model/container"
	"warehouse/internal/core/domain/model/kernel"
)

// ContainerRepository defines the persistence contract for container aggregates.
// Containers are addressed by their code, the natural key printed on the container.
type ContainerRepository interface {
	// Find retrieves a container by code.
	// Returns (nil, nil) when no container has that code; callers decide
	// whether absence is an error. Inside a transaction the row is locked
	// until commit or rollback.
	Find(ctx context.Context, code kernel.Code) (*container.Container, error)

	// Add persists a new container.
	// Returns errs.ObjectAlreadyExistsError when the code is taken.
	Add(ctx context.Context, aggregate *container.Container) error

	// Update merges the fields reported by aggregate.Changes into the stored
	// record; other fields are left untouched. Returns errs.ObjectNotFoundError
	// when the code is not stored.
	//
	// Example:
	//   c, _ := repo.Find(ctx, code)
	//   _ = c.Pick()
	//   if err := repo.Update(ctx, c); err != nil {
	//       return fmt.Errorf("failed to save container: %w", err)
	//   }
	Update(ctx context.Context, aggregate *container.Container) error
}
