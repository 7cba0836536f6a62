// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read projections straight
// from the database; they never modify state.
package queries

import (
	"errors"
	"time"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery retrieves a single order for the customer who
// placed it.
//
// Example:
//
//	query, err := NewGetOrderDetailsQuery(orderID, customerID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderDetailsQueryHandler(db)
//	details, err := handler.Handle(ctx, query)
type GetOrderDetailsQuery struct {
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderDetailsQuery creates a query scoped to the given customer.
func NewGetOrderDetailsQuery(orderID, customerID kernel.UUID) (GetOrderDetailsQuery, error) {
	if err := errors.Join(orderID.Validate(), customerID.Validate()); err != nil {
		return GetOrderDetailsQuery{}, err
	}

	return GetOrderDetailsQuery{
		orderID:    orderID,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

// OrderID returns the order to fetch.
func (q GetOrderDetailsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CustomerID returns the requesting customer.
func (q GetOrderDetailsQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetOrderDetailsQueryResponse is the customer-facing view of an order.
// TotalPrice is the gross amount (food plus delivery); the split between
// platform and restaurant is not exposed to customers.
type GetOrderDetailsQueryResponse struct {
	ID             kernel.UUID
	FoodName       string
	RestaurantName string
	Status         string
	TotalPrice     float64
	CreatedAt      time.Time
	ModifiedAt     time.Time
}
