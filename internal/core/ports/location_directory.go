package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
)

// LocationDirectory resolves location codes to location identifiers.
// Locations are pre-provisioned; the directory never creates them.
type LocationDirectory interface {
	// Resolve returns the identifier of the location with the given code.
	// Returns errs.ObjectNotFoundError when no location has that code.
	Resolve(ctx context.Context, code kernel.Code) (kernel.UUID, error)
}
