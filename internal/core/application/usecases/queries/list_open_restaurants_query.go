package queries

import (
	"errors"
	"time"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/pkg/errs"
	"foodservice/internal/pkg/guard"
)

var ErrListOpenRestaurantsQueryIsNotConstructed = errors.New(
	"ListOpenRestaurantsQuery must be created via NewListOpenRestaurantsQuery constructor",
)

// ListOpenRestaurantsQuery retrieves the restaurants whose operating
// window contains the given instant. Windows that wrap past midnight are
// handled in SQL.
type ListOpenRestaurantsQuery struct {
	at time.Time

	guard guard.ConstructorGuard
}

// NewListOpenRestaurantsQuery creates a query for restaurants open at
// the given time.
func NewListOpenRestaurantsQuery(at time.Time) (ListOpenRestaurantsQuery, error) {
	if at.IsZero() {
		return ListOpenRestaurantsQuery{}, errs.NewValueIsRequiredError("at")
	}

	return ListOpenRestaurantsQuery{
		at:    at,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOpenRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrListOpenRestaurantsQueryIsNotConstructed)
}

// At returns the instant the open check runs against.
func (q ListOpenRestaurantsQuery) At() time.Time {
	return q.at
}

// ListOpenRestaurantsQueryResponse describes one open restaurant.
type ListOpenRestaurantsQueryResponse struct {
	ID              kernel.UUID
	Name            string
	RestaurantType  string
	OpensAt         string
	ClosesAt        string
	DeliveryCost    float64
	DeliveryMinutes int
}
