package commands_test

import (
	"context"
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/container"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockContainerRepository struct{ mock.Mock }

func (m *MockContainerRepository) Find(ctx context.Context, code kernel.Code) (*container.Container, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*container.Container), args.Error(1)
}

func (m *MockContainerRepository) Add(ctx context.Context, c *container.Container) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContainerRepository) Update(ctx context.Context, c *container.Container) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type MockLocationDirectory struct{ mock.Mock }

func (m *MockLocationDirectory) Resolve(ctx context.Context, code kernel.Code) (kernel.UUID, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ContainerRepository() ports.ContainerRepository {
	args := m.Called()
	return args.Get(0).(ports.ContainerRepository)
}

func (m *MockUoW) LocationDirectory() ports.LocationDirectory {
	args := m.Called()
	return args.Get(0).(ports.LocationDirectory)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockContainerUoWFactory struct{ mock.Mock }

func (m *MockContainerUoWFactory) Create() commands.ContainerUoW {
	args := m.Called()
	return args.Get(0).(commands.ContainerUoW)
}

func code(raw string) kernel.Code {
	return kernel.MustNewCode(raw)
}

// storedContainer returns a container that passed QC with no pending changes.
func storedContainer(t *testing.T, raw string) *container.Container {
	t.Helper()
	c, err := container.NewContainer(kernel.NewUUID(), code(raw), code("SKU-9"), 10, kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, c.Inspect(container.Pass))
	c.ClearChanges()
	return c
}

func restoredContainer(t *testing.T, raw string, status container.Status) *container.Container {
	t.Helper()
	var (
		sku kernel.Code
		qty *int
	)
	if status.HoldsMaterial() {
		sku = code("SKU-9")
		q := 10
		qty = &q
	}
	c, err := container.RestoreContainer(kernel.NewUUID(), code(raw), sku, qty, status, kernel.NewUUID())
	require.NoError(t, err)
	return c
}
