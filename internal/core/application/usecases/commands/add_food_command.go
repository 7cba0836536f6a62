package commands

import (
	"errors"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/pkg/guard"
)

var (
	ErrAddFoodCommandIsNotConstructed = errors.New(
		"AddFoodCommand must be created via NewAddFoodCommand constructor",
	)
	ErrFoodNameIsRequired = errors.New("food name is required")
	ErrPriceIsInvalid     = errors.New("price must not be negative")
	ErrDurationIsInvalid  = errors.New("duration must not be negative")
)

// AddFoodCommand represents a request to add a menu item to a restaurant.
// Only the restaurant's owner may add items; the handler enforces this.
type AddFoodCommand struct { //nolint:recvcheck //using for validation
	foodID       kernel.UUID
	restaurantID kernel.UUID
	ownerID      kernel.UUID
	name         string
	price        float64
	prepMinutes  int

	guard guard.ConstructorGuard
}

// NewAddFoodCommand creates a command to add a food item. The ownerID is
// the authenticated account requesting the change.
func NewAddFoodCommand(
	foodID kernel.UUID,
	restaurantID kernel.UUID,
	ownerID kernel.UUID,
	name string,
	price float64,
	prepMinutes int,
) (AddFoodCommand, error) {
	cmd := AddFoodCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFoodID(foodID),
		cmd.setRestaurantID(restaurantID),
		cmd.setOwnerID(ownerID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setPrepMinutes(prepMinutes),
	); err != nil {
		return AddFoodCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddFoodCommand) Validate() error {
	return c.guard.Validate(ErrAddFoodCommandIsNotConstructed)
}

// FoodID returns the identifier for the new menu item.
func (c AddFoodCommand) FoodID() kernel.UUID {
	return c.foodID
}

// RestaurantID returns the restaurant receiving the item.
func (c AddFoodCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// OwnerID returns the account requesting the change.
func (c AddFoodCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Name returns the menu item name.
func (c AddFoodCommand) Name() string {
	return c.name
}

// Price returns the menu item price.
func (c AddFoodCommand) Price() float64 {
	return c.price
}

// PrepMinutes returns the preparation duration in minutes.
func (c AddFoodCommand) PrepMinutes() int {
	return c.prepMinutes
}

func (c *AddFoodCommand) setFoodID(foodID kernel.UUID) error {
	if err := foodID.Validate(); err != nil {
		return err
	}

	c.foodID = foodID
	return nil
}

func (c *AddFoodCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *AddFoodCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *AddFoodCommand) setName(name string) error {
	if name == "" {
		return ErrFoodNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddFoodCommand) setPrice(price float64) error {
	if price < 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *AddFoodCommand) setPrepMinutes(minutes int) error {
	if minutes < 0 {
		return ErrDurationIsInvalid
	}

	c.prepMinutes = minutes
	return nil
}
