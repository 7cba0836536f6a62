package commands

import (
	"context"

	"foodservice/internal/core/domain/model/order"
	"foodservice/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler handles explicit status changes by the
// restaurant fulfilling the order. Terminal orders reject further
// changes.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

// NewChangeOrderStatusCommandHandler creates a handler for manual status
// changes. A nil clock defaults to time.Now.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, clock Clock) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clockOrDefault(clock),
	}
}

// Handle processes the status change command. Only the owner of the
// restaurant the order was placed with may change its status. Pending
// time-based transitions are applied before the change so the manual
// transition runs against the status a fresh reader would observe. The
// write is a compare-and-set on the status originally read. Returns the
// order in its new state.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
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

	rest, err := uow.RestaurantRepository().Get(ctx, ord.RestaurantID())
	if err != nil {
		return nil, err
	}

	if !rest.OwnerID().IsEqual(cmd.OwnerID()) {
		return nil, errs.NewForbiddenError("change status of another restaurant's order")
	}

	observed := ord.Status()
	now := h.clock()
	ord.AutoAdvance(now)

	if err = ord.ChangeStatus(cmd.Status(), now); err != nil {
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
