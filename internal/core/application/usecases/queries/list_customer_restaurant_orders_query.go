package queries

import (
	"errors"
	"time"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/pkg/guard"
)

var ErrListCustomerRestaurantOrdersQueryIsNotConstructed = errors.New(
	"ListCustomerRestaurantOrdersQuery must be created via NewListCustomerRestaurantOrdersQuery constructor",
)

// ListCustomerRestaurantOrdersQuery retrieves a customer's order history
// with one restaurant.
type ListCustomerRestaurantOrdersQuery struct {
	customerID   kernel.UUID
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListCustomerRestaurantOrdersQuery creates the history query.
func NewListCustomerRestaurantOrdersQuery(customerID, restaurantID kernel.UUID) (ListCustomerRestaurantOrdersQuery, error) {
	if err := errors.Join(customerID.Validate(), restaurantID.Validate()); err != nil {
		return ListCustomerRestaurantOrdersQuery{}, err
	}

	return ListCustomerRestaurantOrdersQuery{
		customerID:   customerID,
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCustomerRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerRestaurantOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose history is listed.
func (q ListCustomerRestaurantOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// RestaurantID returns the restaurant the history is scoped to.
func (q ListCustomerRestaurantOrdersQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// ListCustomerRestaurantOrdersQueryResponse describes one past order.
type ListCustomerRestaurantOrdersQueryResponse struct {
	ID         kernel.UUID
	FoodName   string
	Status     string
	TotalPrice float64
	CreatedAt  time.Time
}
