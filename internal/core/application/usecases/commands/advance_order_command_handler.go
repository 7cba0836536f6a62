package commands

import (
	"context"
	"errors"

	"foodservice/internal/core/domain/model/order"
	"foodservice/internal/pkg/errs"
)

// AdvanceOrderCommandHandler applies lazy time-based transitions.
// When the order has sat in the initial status past the preparation
// threshold, it is moved to preparing with a compare-and-set write, so
// concurrent readers apply the transition at most once.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

// NewAdvanceOrderCommandHandler creates a handler for lazy order aging.
// A nil clock defaults to time.Now.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory, clock Clock) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clockOrDefault(clock),
	}
}

// Handle ages the order and returns it in its current status.
// An order belonging to a different customer is reported as not found
// rather than forbidden, so order identifiers are not probeable.
// A concurrent conflicting write makes the aging a no-op instead of an
// error: the other writer already applied a transition.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (*order.Order, error) {
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

	if !ord.AutoAdvance(h.clock()) {
		return ord, nil
	}

	if err = orderRepo.UpdateStatusIf(ctx, ord, order.Initial); err != nil {
		if errors.Is(err, errs.ErrPreconditionFailed) {
			return orderRepo.Get(ctx, cmd.OrderID())
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ord, nil
}
