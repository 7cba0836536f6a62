package commands

import (
	"errors"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand represents a request to apply any pending
// time-based status transition to an order. Reading an order runs this
// first, so an order that has aged past the preparation threshold is
// observed as preparing without any background scheduler.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to age an order's status.
// The customerID is the authenticated account reading the order.
func NewAdvanceOrderCommand(orderID, customerID kernel.UUID) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the order to age.
func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the account reading the order.
func (c AdvanceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
