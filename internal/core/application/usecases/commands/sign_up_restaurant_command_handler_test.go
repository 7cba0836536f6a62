package commands_test

import (
	"testing"

	"foodservice/internal/core/application/usecases/commands"
	"foodservice/internal/core/domain/model/account"
	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/core/domain/model/restaurant"
	"foodservice/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSignUpRestaurantCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	accountID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewSignUpRestaurantCommand(
		accountID, restaurantID,
		"gilaneh", "s3cret", "4 Elm St",
		"Gilaneh", restaurant.TypeTraditional,
		"10:30", "23:00",
		15, 40,
	)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockRestaurantUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("GetByUsername", mock.Anything, "gilaneh").
			Return(nil, errs.NewObjectNotFoundError("username", "gilaneh")).Once(),
		accountRepo.On("Add", mock.Anything, mock.AnythingOfType("*account.Account")).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Add", mock.Anything, mock.AnythingOfType("*restaurant.Restaurant")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSignUpRestaurantCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	addedAccount := accountRepo.Calls[1].Arguments.Get(1).(*account.Account)
	require.Equal(t, account.RoleRestaurant, addedAccount.Role())
	require.True(t, addedAccount.CheckPassword("s3cret"))

	addedRestaurant := restaurantRepo.Calls[0].Arguments.Get(1).(*restaurant.Restaurant)
	require.Equal(t, restaurantID, addedRestaurant.ID())
	require.Equal(t, accountID, addedRestaurant.OwnerID())
	require.Equal(t, "10:30", addedRestaurant.OpensAt().String())
	require.Equal(t, "23:00", addedRestaurant.ClosesAt().String())

	accountRepo.AssertExpectations(t)
	restaurantRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSignUpRestaurantCommandHandler_Handle_UsernameTaken(t *testing.T) {
	ctx := t.Context()

	existing, err := account.NewAccount(kernel.NewUUID(), "gilaneh", "other", "", account.RoleRestaurant)
	require.NoError(t, err)

	cmd, err := commands.NewSignUpRestaurantCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		"gilaneh", "s3cret", "",
		"Gilaneh", restaurant.TypeTraditional,
		"10:30", "23:00",
		15, 40,
	)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	uow := new(MockRestaurantUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("GetByUsername", mock.Anything, "gilaneh").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSignUpRestaurantCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	accountRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewSignUpRestaurantCommand_InvalidWindow(t *testing.T) {
	_, err := commands.NewSignUpRestaurantCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		"gilaneh", "s3cret", "",
		"Gilaneh", restaurant.TypeTraditional,
		"25:00", "23:00",
		15, 40,
	)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
