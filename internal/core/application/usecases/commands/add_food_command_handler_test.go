package commands_test

import (
	"testing"

	"foodservice/internal/core/application/usecases/commands"
	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddFoodCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	ownerID := kernel.NewUUID()
	rest := newOpenRestaurant(t, ownerID)

	cmd, err := commands.NewAddFoodCommand(kernel.NewUUID(), rest.ID(), ownerID, "Margherita", 100, 15)
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockRestaurantUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, rest.ID()).Return(rest, nil).Once(),
		restaurantRepo.On("AddFood", mock.Anything, mock.AnythingOfType("*restaurant.Food")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddFoodCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	restaurantRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddFoodCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()

	rest := newOpenRestaurant(t, kernel.NewUUID())

	cmd, err := commands.NewAddFoodCommand(kernel.NewUUID(), rest.ID(), kernel.NewUUID(), "Margherita", 100, 15)
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockRestaurantUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, rest.ID()).Return(rest, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddFoodCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	restaurantRepo.AssertNotCalled(t, "AddFood", mock.Anything, mock.Anything)
}

func TestNewAddFoodCommand_Invalid(t *testing.T) {
	_, err := commands.NewAddFoodCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", 100, 15)
	require.ErrorIs(t, err, commands.ErrFoodNameIsRequired)

	_, err = commands.NewAddFoodCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Margherita", -1, 15)
	require.ErrorIs(t, err, commands.ErrPriceIsInvalid)

	_, err = commands.NewAddFoodCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Margherita", 100, -1)
	require.ErrorIs(t, err, commands.ErrDurationIsInvalid)
}
