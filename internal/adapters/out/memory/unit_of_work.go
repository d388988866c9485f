package memory

import (
	"context"
	"errors"

	"warehouse/internal/core/ports"
)

// ErrNoTransaction is returned by Commit and Rollback without a prior Begin.
var ErrNoTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a unit of work with no open transaction.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork buffers container writes until Commit. Without Begin,
// repository calls apply to the store immediately.
type UnitOfWork struct {
	store   *Store
	working map[string]record
}

// Begin waits until no other transaction is open, or ctx is done.
// Calling Begin twice keeps the first transaction.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.working != nil {
		return nil
	}

	if err := uow.store.acquire(ctx); err != nil {
		return err
	}
	uow.working = uow.store.snapshot()
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.working == nil {
		return ErrNoTransaction
	}

	uow.store.publish(uow.working)
	uow.working = nil
	uow.store.release()
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.working == nil {
		return ErrNoTransaction
	}

	uow.working = nil
	uow.store.release()
	return nil
}

func (uow *UnitOfWork) ContainerRepository() ports.ContainerRepository {
	return &ContainerRepository{store: uow.store, working: uow.working}
}

func (uow *UnitOfWork) LocationDirectory() ports.LocationDirectory {
	return &LocationDirectory{store: uow.store}
}
