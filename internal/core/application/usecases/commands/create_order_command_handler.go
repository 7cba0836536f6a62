package commands

import (
	"context"

	"foodservice/internal/core/domain/model/order"
	"foodservice/internal/pkg/errs"
)

// CreateOrderCommandHandler handles order placement. Resolves the menu
// item and its restaurant, verifies the restaurant is currently open,
// and snapshots the revenue split so later price changes never affect
// this order's settlement.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     order.SettlementPolicy
	clock      Clock
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// A nil clock defaults to time.Now.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	policy order.SettlementPolicy,
	clock Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		clock:      clockOrDefault(clock),
	}
}

// Handle processes the order creation command.
// Placing an order outside the restaurant's operating window fails with
// a precondition error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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
	food, err := restaurantRepo.GetFood(ctx, cmd.FoodID())
	if err != nil {
		return err
	}

	rest, err := restaurantRepo.Get(ctx, food.RestaurantID())
	if err != nil {
		return err
	}

	now := h.clock()
	if !rest.IsOpenAt(now) {
		return errs.NewPreconditionFailedError("restaurant is closed")
	}

	settlement, err := h.policy.Calculate(food.Price(), rest.DeliveryCost())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		food.ID(),
		rest.ID(),
		settlement,
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
