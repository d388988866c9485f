package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/container"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPutawayContainerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPutawayContainerCommand("C-1", "A-01-01")
	shelfID := kernel.NewUUID()
	stored := storedContainer(t, "C-1")

	repo := new(MockContainerRepository)
	directory := new(MockLocationDirectory)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContainerRepository").Return(repo).Once(),
		repo.On("Find", ctx, code("C-1")).Return(stored, nil).Once(),
		uow.On("LocationDirectory").Return(directory).Once(),
		directory.On("Resolve", ctx, code("A-01-01")).Return(shelfID, nil).Once(),
		repo.On("Update", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPutawayContainerCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.True(t, stored.LocationID().IsEqual(shelfID))
	assert.Equal(t, container.Stored, stored.Status())
	assert.Equal(t, []container.Field{container.FieldLocation}, stored.Changes())
	repo.AssertExpectations(t)
	directory.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPutawayContainerCommandHandler_Handle_UnknownLocation(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPutawayContainerCommand("C-1", "Z-99")
	stored := storedContainer(t, "C-1")
	before := stored.LocationID()

	repo := new(MockContainerRepository)
	directory := new(MockLocationDirectory)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContainerRepository").Return(repo).Once(),
		repo.On("Find", ctx, code("C-1")).Return(stored, nil).Once(),
		uow.On("LocationDirectory").Return(directory).Once(),
		directory.On("Resolve", ctx, code("Z-99")).
			Return(kernel.UUID{}, errs.NewObjectNotFoundError("location", "Z-99")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPutawayContainerCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.True(t, stored.LocationID().IsEqual(before))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPutawayContainerCommandHandler_Handle_AnyStatus(t *testing.T) {
	for _, status := range container.Statuses() {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			cmd, _ := commands.NewPutawayContainerCommand("C-1", "A-01-01")
			c := restoredContainer(t, "C-1", status)

			repo := new(MockContainerRepository)
			directory := new(MockLocationDirectory)
			uow := new(MockUoW)
			uow.On("Begin", ctx).Return(nil)
			uow.On("ContainerRepository").Return(repo)
			uow.On("LocationDirectory").Return(directory)
			uow.On("Commit", ctx).Return(nil)
			uow.On("Rollback", ctx).Return(nil)
			repo.On("Find", ctx, code("C-1")).Return(c, nil)
			repo.On("Update", ctx, c).Return(nil)
			directory.On("Resolve", ctx, code("A-01-01")).Return(kernel.NewUUID(), nil)

			factory := new(MockUoWFactory)
			factory.On("Create").Return(uow)

			h := commands.NewPutawayContainerCommandHandler(factory)
			require.NoError(t, h.Handle(ctx, cmd))
			assert.Equal(t, status, c.Status())
		})
	}
}
