package restaurant

import (
	"errors"
	"fmt"
	"math"
	"time"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/pkg/errs"
)

var (
	// ErrRestaurantIsNotConstructed is returned when a Restaurant instance
	// was not created through NewRestaurant or RestoreRestaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant or RestoreRestaurant constructor")
)

// Type categorizes a restaurant's kitchen.
type Type string

const (
	TypeFastFood    Type = "fast_food"
	TypeTraditional Type = "traditional"
)

// Validate checks that the type is one of the known categories.
func (t Type) Validate() error {
	switch t {
	case TypeFastFood, TypeTraditional:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"restaurant type",
		fmt.Errorf("%q is not a valid restaurant type", string(t)),
	)
}

// Restaurant is an aggregate owned by a restaurant account. It carries the
// delivery pricing used by order settlement and the operating window used
// to determine whether the restaurant currently accepts orders.
//
// Invariants:
//   - has a valid identifier and owner account identifier
//   - name is non-empty, type is a known category
//   - delivery cost is non-negative, delivery duration is non-negative
//   - the operating window endpoints are constructed TimeOfDay values;
//     a window may wrap past midnight (opensAt > closesAt)
type Restaurant struct {
	id      kernel.UUID
	ownerID kernel.UUID

	name            string
	restaurantType  Type
	opensAt         kernel.TimeOfDay
	closesAt        kernel.TimeOfDay
	deliveryCost    float64
	deliveryMinutes int

	isConstructed bool
}

// NewRestaurant creates a validated Restaurant.
func NewRestaurant(
	id kernel.UUID,
	ownerID kernel.UUID,
	name string,
	restaurantType Type,
	opensAt kernel.TimeOfDay,
	closesAt kernel.TimeOfDay,
	deliveryCost float64,
	deliveryMinutes int,
) (*Restaurant, error) {
	r := &Restaurant{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOwnerID(ownerID),
		r.setName(name),
		r.setType(restaurantType),
		r.setWindow(opensAt, closesAt),
		r.setDeliveryCost(deliveryCost),
		r.setDeliveryMinutes(deliveryMinutes),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRestaurant reconstructs a Restaurant from persistence.
func RestoreRestaurant(
	id kernel.UUID,
	ownerID kernel.UUID,
	name string,
	restaurantType Type,
	opensAt kernel.TimeOfDay,
	closesAt kernel.TimeOfDay,
	deliveryCost float64,
	deliveryMinutes int,
) (*Restaurant, error) {
	return NewRestaurant(id, ownerID, name, restaurantType, opensAt, closesAt, deliveryCost, deliveryMinutes)
}

// Validate ensures the Restaurant was properly constructed.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// OwnerID returns the identifier of the account that owns the restaurant.
// Manual order status changes are gated on this identity.
func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// RestaurantType returns the kitchen category.
func (r *Restaurant) RestaurantType() Type {
	return r.restaurantType
}

// OpensAt returns the start of the operating window.
func (r *Restaurant) OpensAt() kernel.TimeOfDay {
	return r.opensAt
}

// ClosesAt returns the end of the operating window.
func (r *Restaurant) ClosesAt() kernel.TimeOfDay {
	return r.closesAt
}

// DeliveryCost returns the delivery charge in currency units. Order
// settlement snapshots this value at creation time.
func (r *Restaurant) DeliveryCost() float64 {
	return r.deliveryCost
}

// DeliveryMinutes returns the expected delivery duration in minutes.
func (r *Restaurant) DeliveryMinutes() int {
	return r.deliveryMinutes
}

// IsOpenAt reports whether the operating window contains the wall-clock
// time of t. A window whose start is after its end wraps past midnight:
// 22:00-02:00 is open at 23:30 and at 01:00, closed at 12:00.
func (r *Restaurant) IsOpenAt(t time.Time) bool {
	now := kernel.TimeOfDayFromTime(t).Minutes()
	open := r.opensAt.Minutes()
	closeAt := r.closesAt.Minutes()

	if open <= closeAt {
		return now >= open && now <= closeAt
	}
	return now >= open || now <= closeAt
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.ownerID = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	r.restaurantType = t
	return nil
}

func (r *Restaurant) setWindow(opensAt, closesAt kernel.TimeOfDay) error {
	if err := errors.Join(opensAt.Validate(), closesAt.Validate()); err != nil {
		return err
	}
	r.opensAt = opensAt
	r.closesAt = closesAt
	return nil
}

func (r *Restaurant) setDeliveryCost(cost float64) error {
	if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return errs.NewValueIsOutOfRangeError("delivery cost", cost, 0.0, math.MaxFloat64)
	}
	r.deliveryCost = cost
	return nil
}

func (r *Restaurant) setDeliveryMinutes(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery minutes",
			fmt.Errorf("%d is negative", minutes),
		)
	}
	r.deliveryMinutes = minutes
	return nil
}
