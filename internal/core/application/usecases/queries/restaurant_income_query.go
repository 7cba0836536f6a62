package queries

import (
	"errors"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/pkg/guard"
)

var ErrRestaurantIncomeQueryIsNotConstructed = errors.New(
	"RestaurantIncomeQuery must be created via NewRestaurantIncomeQuery constructor",
)

// RestaurantIncomeQuery computes a restaurant's gross income over all
// delivered orders, before the platform's commission is deducted.
type RestaurantIncomeQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRestaurantIncomeQuery creates an income query for the owner's
// restaurant.
func NewRestaurantIncomeQuery(ownerID kernel.UUID) (RestaurantIncomeQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return RestaurantIncomeQuery{}, err
	}

	return RestaurantIncomeQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q RestaurantIncomeQuery) Validate() error {
	return q.guard.Validate(ErrRestaurantIncomeQueryIsNotConstructed)
}

// OwnerID returns the authenticated restaurant owner.
func (q RestaurantIncomeQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// RestaurantIncomeQueryResponse carries gross income alongside the
// commission withheld so owners can reconcile the two.
type RestaurantIncomeQueryResponse struct {
	RestaurantID kernel.UUID
	GrossIncome  float64
	Commission   float64
	NetIncome    float64
	OrderCount   int
}
