package queries

import (
	"errors"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/pkg/guard"
)

var ErrDeliveryPercentageQueryIsNotConstructed = errors.New(
	"DeliveryPercentageQuery must be created via NewDeliveryPercentageQuery constructor",
)

// DeliveryPercentageQuery computes what share of a restaurant's orders
// reached the delivered status.
type DeliveryPercentageQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeliveryPercentageQuery creates the query for the owner's
// restaurant.
func NewDeliveryPercentageQuery(ownerID kernel.UUID) (DeliveryPercentageQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return DeliveryPercentageQuery{}, err
	}

	return DeliveryPercentageQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q DeliveryPercentageQuery) Validate() error {
	return q.guard.Validate(ErrDeliveryPercentageQueryIsNotConstructed)
}

// OwnerID returns the authenticated restaurant owner.
func (q DeliveryPercentageQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// DeliveryPercentageQueryResponse reports delivered orders as a
// percentage of all orders placed with the restaurant.
type DeliveryPercentageQueryResponse struct {
	RestaurantID   kernel.UUID
	TotalOrders    int
	DeliveredCount int
	Percentage     float64
}
