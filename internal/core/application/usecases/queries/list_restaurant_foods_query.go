package queries

import (
	"errors"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/pkg/guard"
)

var ErrListRestaurantFoodsQueryIsNotConstructed = errors.New(
	"ListRestaurantFoodsQuery must be created via NewListRestaurantFoodsQuery constructor",
)

// ListRestaurantFoodsQuery retrieves a restaurant's menu.
type ListRestaurantFoodsQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListRestaurantFoodsQuery creates a query for a restaurant's menu.
func NewListRestaurantFoodsQuery(restaurantID kernel.UUID) (ListRestaurantFoodsQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return ListRestaurantFoodsQuery{}, err
	}

	return ListRestaurantFoodsQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListRestaurantFoodsQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantFoodsQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose menu is listed.
func (q ListRestaurantFoodsQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// ListRestaurantFoodsQueryResponse describes one menu item.
type ListRestaurantFoodsQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Price       float64
	PrepMinutes int
}
