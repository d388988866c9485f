package memory

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// LocationDirectory implements ports.LocationDirectory on a Store.
type LocationDirectory struct {
	store *Store
}

func (d *LocationDirectory) Resolve(ctx context.Context, code kernel.Code) (kernel.UUID, error) {
	if err := ctx.Err(); err != nil {
		return kernel.UUID{}, err
	}

	d.store.mu.RLock()
	id, ok := d.store.locations[code.String()]
	d.store.mu.RUnlock()

	if !ok {
		return kernel.UUID{}, errs.NewObjectNotFoundError("location", code.String())
	}
	return id, nil
}
