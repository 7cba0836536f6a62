package commands

import (
	"context"

	"foodservice/internal/core/domain/model/account"
	"foodservice/internal/core/domain/model/restaurant"
)

// SignUpRestaurantCommandHandler handles restaurant owner registration.
// Creates the owner account and the restaurant aggregate in a single
// transaction.
type SignUpRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewSignUpRestaurantCommandHandler creates a handler for restaurant sign-up.
func NewSignUpRestaurantCommandHandler(uowFactory RestaurantUoWFactory) SignUpRestaurantCommandHandler {
	return SignUpRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restaurant sign-up command.
func (h *SignUpRestaurantCommandHandler) Handle(ctx context.Context, cmd SignUpRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()
	if err := ensureUsernameIsFree(ctx, accountRepo, cmd.Username()); err != nil {
		return err
	}

	acc, err := account.NewAccount(
		cmd.AccountID(),
		cmd.Username(),
		cmd.Password(),
		cmd.Address(),
		account.RoleRestaurant,
	)
	if err != nil {
		return err
	}

	if err = accountRepo.Add(ctx, acc); err != nil {
		return err
	}

	rest, err := restaurant.NewRestaurant(
		cmd.RestaurantID(),
		cmd.AccountID(),
		cmd.Name(),
		cmd.RestaurantType(),
		cmd.OpensAt(),
		cmd.ClosesAt(),
		cmd.DeliveryCost(),
		cmd.DeliveryMinutes(),
	)
	if err != nil {
		return err
	}

	if err = uow.RestaurantRepository().Add(ctx, rest); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
