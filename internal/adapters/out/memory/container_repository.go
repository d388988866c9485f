package memory

import (
	"context"

	"warehouse/internal/core/domain/model/container"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// ContainerRepository implements ports.ContainerRepository on a Store.
type ContainerRepository struct {
	store *Store

	// working is the transaction's copy; nil outside a transaction.
	working map[string]record
}

func (r *ContainerRepository) Find(ctx context.Context, code kernel.Code) (*container.Container, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		rec   record
		found bool
	)
	r.read(func(records map[string]record) {
		rec, found = records[code.String()]
	})
	if !found {
		return nil, nil
	}

	return toDomain(rec)
}

func (r *ContainerRepository) Add(ctx context.Context, aggregate *container.Container) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var err error
	r.write(func(records map[string]record) {
		key := aggregate.Code().String()
		if _, exists := records[key]; exists {
			err = errs.NewObjectAlreadyExistsError("container", key)
			return
		}
		records[key] = fromDomain(aggregate)
	})
	if err != nil {
		return err
	}

	aggregate.ClearChanges()
	return nil
}

func (r *ContainerRepository) Update(ctx context.Context, aggregate *container.Container) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var err error
	r.write(func(records map[string]record) {
		key := aggregate.Code().String()
		stored, exists := records[key]
		if !exists {
			err = errs.NewObjectNotFoundError("container", key)
			return
		}
		records[key] = merge(stored, aggregate)
	})
	if err != nil {
		return err
	}

	aggregate.ClearChanges()
	return nil
}

func (r *ContainerRepository) read(fn func(map[string]record)) {
	if r.working != nil {
		fn(r.working)
		return
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	fn(r.store.containers)
}

func (r *ContainerRepository) write(fn func(map[string]record)) {
	if r.working != nil {
		fn(r.working)
		return
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	fn(r.store.containers)
}

// merge copies the changed fields of aggregate onto stored.
func merge(stored record, aggregate *container.Container) record {
	next := fromDomain(aggregate)
	for _, field := range aggregate.Changes() {
		switch field {
		case container.FieldSKU:
			stored.sku = next.sku
		case container.FieldQuantity:
			stored.quantity = next.quantity
		case container.FieldStatus:
			stored.status = next.status
		case container.FieldLocation:
			stored.locationID = next.locationID
		}
	}
	return stored
}

func fromDomain(c *container.Container) record {
	rec := record{
		id:         c.ID(),
		code:       c.Code().String(),
		status:     c.Status().String(),
		locationID: c.LocationID(),
	}
	if sku, ok := c.SKU(); ok {
		rec.sku = sku.String()
	}
	if qty, ok := c.Quantity(); ok {
		rec.quantity = &qty
	}
	return rec
}

// toDomain rebuilds the aggregate from a record. A missing or unrecognized
// status loads as container.Unknown; any other inconsistency is reported as
// invalid stored state.
func toDomain(rec record) (*container.Container, error) {
	c, err := restore(rec)
	if err != nil {
		return nil, errs.NewStoredStateIsInvalidError("container", rec.code, err)
	}
	return c, nil
}

func restore(rec record) (*container.Container, error) {
	code, err := kernel.NewCode("code", rec.code)
	if err != nil {
		return nil, err
	}

	var sku kernel.Code
	if rec.sku != "" {
		if sku, err = kernel.NewCode("sku", rec.sku); err != nil {
			return nil, err
		}
	}

	status, err := container.ParseStatus(rec.status)
	if err != nil {
		status = container.Unknown
	}

	var qty *int
	if rec.quantity != nil {
		qty = new(int)
		*qty = *rec.quantity
	}

	return container.RestoreContainer(rec.id, code, sku, qty, status, rec.locationID)
}
