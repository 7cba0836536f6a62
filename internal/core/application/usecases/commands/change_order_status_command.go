package commands

import (
	"errors"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/core/domain/model/order"
	"foodservice/internal/pkg/errs"
	"foodservice/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a restaurant-side request to set
// an order's status explicitly, e.g. marking it delivered.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	ownerID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to set an order status.
// The status is given as its wire string; an empty status is a missing
// value and an unrecognized one is invalid. The ownerID is the
// authenticated restaurant account requesting the change.
func NewChangeOrderStatusCommand(
	orderID, ownerID kernel.UUID,
	status string,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOwnerID(ownerID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order whose status is being changed.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the account requesting the change.
func (c ChangeOrderStatusCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Status returns the target status.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(status string) error {
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}

	parsed, err := order.ParseStatus(status)
	if err != nil {
		return err
	}

	c.status = parsed
	return nil
}
