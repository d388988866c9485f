package commands_test

import (
	"errors"
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/container"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReceiveContainerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewReceiveContainerCommand("C-1001", "SKU-9", 10)
	receivingID := kernel.NewUUID()

	repo := new(MockContainerRepository)
	directory := new(MockLocationDirectory)
	uow := new(MockUoW)
	var added *container.Container
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContainerRepository").Return(repo).Once(),
		repo.On("Find", ctx, code("C-1001")).Return(nil, nil).Once(),
		uow.On("LocationDirectory").Return(directory).Once(),
		directory.On("Resolve", ctx, location.Receiving()).Return(receivingID, nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*container.Container")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*container.Container) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReceiveContainerCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, added)
	assert.Equal(t, container.PendingQC, added.Status())
	assert.True(t, added.LocationID().IsEqual(receivingID))
	qty, ok := added.Quantity()
	assert.True(t, ok)
	assert.Equal(t, 10, qty)

	repo.AssertExpectations(t)
	directory.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestReceiveContainerCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockUoWFactory)
	h := commands.NewReceiveContainerCommandHandler(factory)

	err := h.Handle(t.Context(), commands.ReceiveContainerCommand{})

	require.ErrorIs(t, err, commands.ErrReceiveContainerCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestReceiveContainerCommandHandler_Handle_AlreadyExists(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewReceiveContainerCommand("C-1001", "SKU-9", 10)

	repo := new(MockContainerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContainerRepository").Return(repo).Once(),
		repo.On("Find", ctx, code("C-1001")).Return(storedContainer(t, "C-1001"), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReceiveContainerCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestReceiveContainerCommandHandler_Handle_ReceivingMissing(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewReceiveContainerCommand("C-1001", "SKU-9", 10)

	repo := new(MockContainerRepository)
	directory := new(MockLocationDirectory)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContainerRepository").Return(repo).Once(),
		repo.On("Find", ctx, code("C-1001")).Return(nil, nil).Once(),
		uow.On("LocationDirectory").Return(directory).Once(),
		directory.On("Resolve", ctx, location.Receiving()).
			Return(kernel.UUID{}, errs.NewObjectNotFoundError("location", location.ReceivingCode)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReceiveContainerCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestReceiveContainerCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewReceiveContainerCommand("C-1001", "SKU-9", 10)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewReceiveContainerCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Rollback", mock.Anything)
}

func TestReceiveContainerCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewReceiveContainerCommand("C-1001", "SKU-9", 10)

	repo := new(MockContainerRepository)
	directory := new(MockLocationDirectory)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContainerRepository").Return(repo).Once(),
		repo.On("Find", ctx, code("C-1001")).Return(nil, nil).Once(),
		uow.On("LocationDirectory").Return(directory).Once(),
		directory.On("Resolve", ctx, location.Receiving()).Return(kernel.NewUUID(), nil).Once(),
		repo.On("Add", ctx, mock.Anything).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReceiveContainerCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "add error")
	assert.Equal(t, errs.KindBackend, errs.KindOf(err))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}
