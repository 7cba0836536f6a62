package commands

import (
	"context"

	"foodservice/internal/core/domain/model/restaurant"
	"foodservice/internal/pkg/errs"
)

// AddFoodCommandHandler handles adding menu items to restaurants.
// Rejects requests from accounts that do not own the target restaurant.
type AddFoodCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewAddFoodCommandHandler creates a handler for menu item creation.
func NewAddFoodCommandHandler(uowFactory RestaurantUoWFactory) AddFoodCommandHandler {
	return AddFoodCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add food command.
func (h *AddFoodCommandHandler) Handle(ctx context.Context, cmd AddFoodCommand) error {
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

	restaurantRepo := uow.RestaurantRepository()
	rest, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if !rest.OwnerID().IsEqual(cmd.OwnerID()) {
		return errs.NewForbiddenError("add food to another owner's restaurant")
	}

	food, err := restaurant.NewFood(
		cmd.FoodID(),
		cmd.RestaurantID(),
		cmd.Name(),
		cmd.Price(),
		cmd.PrepMinutes(),
	)
	if err != nil {
		return err
	}

	if err = restaurantRepo.AddFood(ctx, food); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
