package order

import (
	"errors"
	"fmt"
	"time"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders
	// are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Timing rules of the order lifecycle. Both thresholds are measured from
// the order's creation timestamp.
const (
	// PreparingDelay is how long an order stays in the initial status
	// before a status check moves it to preparing.
	PreparingDelay = 300 * time.Second

	// CancellationGrace is the window after the food's expected
	// preparation completion before a preparing order may be canceled.
	CancellationGrace = 10 * time.Minute
)

// Order is the aggregate root of the ordering domain. It carries the
// settlement computed at creation and moves through the lifecycle
//
//	initial -> preparing -> delivered | canceled
//
// Time-triggered transitions are evaluated lazily: there is no scheduler,
// the rules fire when the order is read or acted upon.
//
// Invariants:
//   - identifiers (order, customer, food, restaurant) are valid and
//     immutable after creation
//   - the settlement is computed once, at creation, and never changes
//   - createdAt is immutable; modifiedAt moves on every mutation
//   - no transition leaves a terminal status
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	foodID       kernel.UUID
	restaurantID kernel.UUID

	settlement Settlement
	status     Status

	createdAt  time.Time
	modifiedAt time.Time

	isConstructed bool
}

// NewOrder creates an order in the initial status with its settlement
// snapshot. The settlement must already be calculated from the food price
// and delivery cost in effect at this instant; the aggregate stores it
// verbatim and never recomputes it.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	foodID kernel.UUID,
	restaurantID kernel.UUID,
	settlement Settlement,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Initial,
		createdAt:     now,
		modifiedAt:    now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setFoodID(foodID),
		o.setRestaurantID(restaurantID),
		o.setSettlement(settlement),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. The status and
// timestamps are taken as stored; the settlement is re-validated for
// internal consistency.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	foodID kernel.UUID,
	restaurantID kernel.UUID,
	settlement Settlement,
	status Status,
	createdAt time.Time,
	modifiedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		modifiedAt:    modifiedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setFoodID(foodID),
		o.setRestaurantID(restaurantID),
		o.setSettlement(settlement),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the account that placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// FoodID returns the identifier of the ordered food.
func (o *Order) FoodID() kernel.UUID {
	return o.foodID
}

// RestaurantID returns the identifier of the restaurant owning the food.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Settlement returns the monetary split computed at creation.
func (o *Order) Settlement() Settlement {
	return o.settlement
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ModifiedAt returns the timestamp of the last mutation.
func (o *Order) ModifiedAt() time.Time {
	return o.modifiedAt
}

// AutoAdvance applies the read-triggered transition to preparing.
//
// If the order is in the initial status and at least PreparingDelay has
// elapsed since creation, the status moves to preparing and AutoAdvance
// reports true. In every other case the order is left unchanged and the
// result is false; calling it again after the transition is a no-op, so
// repeated status checks are idempotent.
func (o *Order) AutoAdvance(now time.Time) bool {
	if o.status != Initial {
		return false
	}
	if now.Sub(o.createdAt) < PreparingDelay {
		return false
	}

	o.status = Preparing
	o.modifiedAt = now
	return true
}

// Cancel applies the customer-initiated cancellation check.
//
// The order must be in the preparing status and at least
// prepMinutes*60s + CancellationGrace must have elapsed since creation.
// Otherwise a PreconditionFailedError is returned and the order is left
// unchanged; the customer may retry once the threshold passes.
func (o *Order) Cancel(now time.Time, prepMinutes int) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	threshold := time.Duration(prepMinutes)*time.Minute + CancellationGrace
	if elapsed := now.Sub(o.createdAt); elapsed < threshold {
		return errs.NewPreconditionFailedErrorWithCause(
			"order cannot be canceled yet",
			fmt.Errorf("%s elapsed of required %s", elapsed, threshold),
		)
	}

	o.status = newStatus
	o.modifiedAt = now
	return nil
}

// ChangeStatus applies a restaurant-initiated status change. The target
// must be a legal status and the order must not already be terminal.
// Authorization (the caller owns the restaurant) is the handler's concern.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	newStatus, err := o.status.Change(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.modifiedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setFoodID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.foodID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setSettlement(s Settlement) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.settlement = s
	return nil
}

func (o *Order) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.status = s
	return nil
}
