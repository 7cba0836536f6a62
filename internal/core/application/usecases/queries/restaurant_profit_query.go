package queries

import (
	"errors"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/pkg/guard"
)

var ErrRestaurantProfitQueryIsNotConstructed = errors.New(
	"RestaurantProfitQuery must be created via NewRestaurantProfitQuery constructor",
)

// RestaurantProfitQuery computes a restaurant's earnings after the
// platform's commission, over all delivered orders. Scoped to the
// authenticated owner.
type RestaurantProfitQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRestaurantProfitQuery creates a profit query for the owner's
// restaurant.
func NewRestaurantProfitQuery(ownerID kernel.UUID) (RestaurantProfitQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return RestaurantProfitQuery{}, err
	}

	return RestaurantProfitQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q RestaurantProfitQuery) Validate() error {
	return q.guard.Validate(ErrRestaurantProfitQueryIsNotConstructed)
}

// OwnerID returns the authenticated restaurant owner.
func (q RestaurantProfitQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// RestaurantProfitQueryResponse carries a restaurant's net earnings.
type RestaurantProfitQueryResponse struct {
	RestaurantID   kernel.UUID
	FoodProfit     float64
	DeliveryProfit float64
	TotalProfit    float64
	OrderCount     int
}
