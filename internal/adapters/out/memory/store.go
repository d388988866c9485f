// Package memory provides an in-process implementation of the persistence
// ports. Transactions work on a private copy of the container table and
// publish it on commit; only one transaction is open at a time, so
// operations on the store are serialized the same way row locks serialize
// them in Postgres.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"warehouse/internal/core/domain/model/kernel"
)

type record struct {
	id         kernel.UUID
	code       string
	sku        string
	quantity   *int
	status     string
	locationID kernel.UUID
}

// Store holds containers and locations.
type Store struct {
	mu         sync.RWMutex
	containers map[string]record
	locations  map[string]kernel.UUID

	// txSlot admits a single open transaction.
	txSlot chan struct{}
}

// NewStore creates a store provisioned with the given location codes.
func NewStore(locationCodes ...string) *Store {
	s := &Store{
		containers: make(map[string]record),
		locations:  make(map[string]kernel.UUID),
		txSlot:     make(chan struct{}, 1),
	}
	for _, code := range locationCodes {
		s.AddLocation(code)
	}
	return s
}

// AddLocation provisions a location and returns its identifier. Adding a
// known code returns the existing identifier.
func (s *Store) AddLocation(code string) kernel.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.locations[code]; ok {
		return id
	}
	id := kernel.NewUUID()
	s.locations[code] = id
	return id
}

// Len returns the number of committed containers.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.containers)
}

// Codes returns the committed container codes in ascending order.
func (s *Store) Codes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Sorted(maps.Keys(s.containers))
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.txSlot <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.txSlot
}

func (s *Store) snapshot() map[string]record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.containers)
}

func (s *Store) publish(containers map[string]record) {
	s.mu.Lock()
	s.containers = containers
	s.mu.Unlock()
}
