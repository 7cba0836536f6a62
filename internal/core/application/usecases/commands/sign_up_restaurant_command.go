package commands

import (
	"errors"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/core/domain/model/restaurant"
	"foodservice/internal/pkg/guard"
)

var (
	ErrSignUpRestaurantCommandIsNotConstructed = errors.New(
		"SignUpRestaurantCommand must be created via NewSignUpRestaurantCommand constructor",
	)
	ErrRestaurantNameIsRequired = errors.New("restaurant name is required")
)

// SignUpRestaurantCommand represents a request to register a restaurant
// owner account together with the restaurant it operates. Both are
// created in a single transaction so an owner account never exists
// without its restaurant.
type SignUpRestaurantCommand struct { //nolint:recvcheck //using for validation
	accountID    kernel.UUID
	restaurantID kernel.UUID
	username     string
	password     string
	address      string

	name            string
	restaurantType  restaurant.Type
	opensAt         kernel.TimeOfDay
	closesAt        kernel.TimeOfDay
	deliveryCost    float64
	deliveryMinutes int

	guard guard.ConstructorGuard
}

// NewSignUpRestaurantCommand creates a command to register a restaurant
// and its owner. Operating hours are given as "HH:MM" strings; a window
// whose closing time precedes the opening time wraps past midnight.
func NewSignUpRestaurantCommand(
	accountID kernel.UUID,
	restaurantID kernel.UUID,
	username, password, address string,
	name string,
	restaurantType restaurant.Type,
	opensAt, closesAt string,
	deliveryCost float64,
	deliveryMinutes int,
) (SignUpRestaurantCommand, error) {
	cmd := SignUpRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setRestaurantID(restaurantID),
		cmd.setUsername(username),
		cmd.setPassword(password),
		cmd.setAddress(address),
		cmd.setName(name),
		cmd.setType(restaurantType),
		cmd.setWindow(opensAt, closesAt),
		cmd.setDelivery(deliveryCost, deliveryMinutes),
	); err != nil {
		return SignUpRestaurantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignUpRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrSignUpRestaurantCommandIsNotConstructed)
}

// AccountID returns the identifier for the owner account.
func (c SignUpRestaurantCommand) AccountID() kernel.UUID {
	return c.accountID
}

// RestaurantID returns the identifier for the new restaurant.
func (c SignUpRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Username returns the login name for the owner account.
func (c SignUpRestaurantCommand) Username() string {
	return c.username
}

// Password returns the plain-text password to be hashed on creation.
func (c SignUpRestaurantCommand) Password() string {
	return c.password
}

// Address returns the restaurant's street address.
func (c SignUpRestaurantCommand) Address() string {
	return c.address
}

// Name returns the restaurant's display name.
func (c SignUpRestaurantCommand) Name() string {
	return c.name
}

// RestaurantType returns the cuisine category.
func (c SignUpRestaurantCommand) RestaurantType() restaurant.Type {
	return c.restaurantType
}

// OpensAt returns the start of the operating window.
func (c SignUpRestaurantCommand) OpensAt() kernel.TimeOfDay {
	return c.opensAt
}

// ClosesAt returns the end of the operating window.
func (c SignUpRestaurantCommand) ClosesAt() kernel.TimeOfDay {
	return c.closesAt
}

// DeliveryCost returns the flat delivery fee.
func (c SignUpRestaurantCommand) DeliveryCost() float64 {
	return c.deliveryCost
}

// DeliveryMinutes returns the estimated delivery duration.
func (c SignUpRestaurantCommand) DeliveryMinutes() int {
	return c.deliveryMinutes
}

func (c *SignUpRestaurantCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *SignUpRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *SignUpRestaurantCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *SignUpRestaurantCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *SignUpRestaurantCommand) setAddress(address string) error {
	c.address = address
	return nil
}

func (c *SignUpRestaurantCommand) setName(name string) error {
	if name == "" {
		return ErrRestaurantNameIsRequired
	}

	c.name = name
	return nil
}

func (c *SignUpRestaurantCommand) setType(t restaurant.Type) error {
	if err := t.Validate(); err != nil {
		return err
	}

	c.restaurantType = t
	return nil
}

func (c *SignUpRestaurantCommand) setWindow(opensAt, closesAt string) error {
	open, err := kernel.ParseTimeOfDay(opensAt)
	if err != nil {
		return err
	}

	closeAt, err := kernel.ParseTimeOfDay(closesAt)
	if err != nil {
		return err
	}

	c.opensAt = open
	c.closesAt = closeAt
	return nil
}

func (c *SignUpRestaurantCommand) setDelivery(cost float64, minutes int) error {
	c.deliveryCost = cost
	c.deliveryMinutes = minutes
	return nil
}
