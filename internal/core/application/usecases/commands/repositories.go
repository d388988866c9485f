// Package commands contains the business operations that change container state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"warehouse/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface it needs.
type (
	// TxManager handles transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ContainerRepoFactory provides access to the container repository within a transaction.
	ContainerRepoFactory interface {
		ContainerRepository() ports.ContainerRepository
	}

	// LocationDirectoryFactory provides access to the location directory within a transaction.
	LocationDirectoryFactory interface {
		LocationDirectory() ports.LocationDirectory
	}

	// ContainerUoW manages transactions for operations that touch containers only.
	// Used by Inspect, Pick and Return.
	ContainerUoW interface {
		TxManager
		ContainerRepoFactory
	}

	// ContainerUoWFactory creates new container unit of work instances.
	ContainerUoWFactory interface {
		Create() ContainerUoW
	}

	// UoW manages transactions for operations that also resolve locations.
	// Used by Receive, Putaway and Assemble.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   locationID, err := uow.LocationDirectory().Resolve(ctx, code)
	//   c, err := uow.ContainerRepository().Find(ctx, containerCode)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ContainerRepoFactory
		LocationDirectoryFactory
	}

	// UoWFactory creates new unit of work instances for location-aware operations.
	UoWFactory interface {
		Create() UoW
	}
)
