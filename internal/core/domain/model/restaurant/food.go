package restaurant

import (
	"errors"
	"fmt"
	"math"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/pkg/errs"
)

var (
	// ErrFoodIsNotConstructed is returned when a Food instance was not
	// created through NewFood or RestoreFood.
	ErrFoodIsNotConstructed = errors.New("Food must be created via NewFood or RestoreFood constructor")
)

// Food is a menu item belonging to exactly one restaurant. Its price feeds
// order settlement and its preparation duration feeds the cancellation
// threshold; both are snapshotted into the order at creation time, so
// later edits never affect past orders.
type Food struct {
	id           kernel.UUID
	restaurantID kernel.UUID

	name        string
	price       float64
	prepMinutes int

	isConstructed bool
}

// NewFood creates a validated Food. The price and preparation duration
// must be non-negative.
func NewFood(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	price float64,
	prepMinutes int,
) (*Food, error) {
	f := &Food{
		isConstructed: true,
	}

	if err := errors.Join(
		f.setID(id),
		f.setRestaurantID(restaurantID),
		f.setName(name),
		f.setPrice(price),
		f.setPrepMinutes(prepMinutes),
	); err != nil {
		return nil, err
	}

	return f, nil
}

// RestoreFood reconstructs a Food from persistence.
func RestoreFood(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	price float64,
	prepMinutes int,
) (*Food, error) {
	return NewFood(id, restaurantID, name, price, prepMinutes)
}

// Validate ensures the Food was properly constructed.
func (f *Food) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFoodIsNotConstructed
	}
	return nil
}

// ID returns the food's unique identifier.
func (f *Food) ID() kernel.UUID {
	return f.id
}

// RestaurantID returns the identifier of the owning restaurant.
func (f *Food) RestaurantID() kernel.UUID {
	return f.restaurantID
}

// Name returns the menu item name.
func (f *Food) Name() string {
	return f.name
}

// Price returns the price in currency units.
func (f *Food) Price() float64 {
	return f.price
}

// PrepMinutes returns the preparation duration in minutes.
func (f *Food) PrepMinutes() int {
	return f.prepMinutes
}

func (f *Food) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *Food) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.restaurantID = id
	return nil
}

func (f *Food) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("food name")
	}
	f.name = name
	return nil
}

func (f *Food) setPrice(price float64) error {
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return errs.NewValueIsOutOfRangeError("food price", price, 0.0, math.MaxFloat64)
	}
	f.price = price
	return nil
}

func (f *Food) setPrepMinutes(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"preparation minutes",
			fmt.Errorf("%d is negative", minutes),
		)
	}
	f.prepMinutes = minutes
	return nil
}
