package commands

import (
	"context"

	"foodservice/internal/core/domain/model/order"
	"foodservice/internal/pkg/errs"
)

// CancelOrderCommandHandler handles customer-initiated cancellation.
// Cancellation is only allowed while the order is preparing and before
// the item's preparation time plus the grace period has elapsed.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// A nil clock defaults to time.Now.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, clock Clock) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clockOrDefault(clock),
	}
}

// Handle processes the cancellation command. Any pending time-based
// transition is applied first, then the cancellation rules run against
// the aged status. The final status is written with a compare-and-set on
// the status originally read, so a concurrent transition fails the
// cancellation instead of silently overwriting it. Returns the order in
// its canceled state.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !ord.CustomerID().IsEqual(cmd.CustomerID()) {
		return nil, errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	food, err := uow.RestaurantRepository().GetFood(ctx, ord.FoodID())
	if err != nil {
		return nil, err
	}

	observed := ord.Status()
	now := h.clock()
	ord.AutoAdvance(now)

	if err = ord.Cancel(now, food.PrepMinutes()); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateStatusIf(ctx, ord, observed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ord, nil
}
