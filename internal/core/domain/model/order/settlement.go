package order

import (
	"math"

	"foodservice/internal/pkg/errs"
)

// Platform commission rates. The platform keeps 4% of the food price and
// 20% of the delivery cost; the restaurant receives the remainder.
const (
	DefaultAdminFoodRate     = 0.04
	DefaultAdminDeliveryRate = 0.20
)

// settlementTolerance bounds the float drift allowed when validating that
// the six share fields are mutually consistent.
const settlementTolerance = 1e-9

// SettlementPolicy holds the commission rates applied when an order is
// settled. Rates are fixed policy today but injectable at construction so
// they can be tuned without touching the lifecycle code.
type SettlementPolicy struct {
	AdminFoodRate     float64
	AdminDeliveryRate float64
}

// DefaultSettlementPolicy returns the production commission rates.
func DefaultSettlementPolicy() SettlementPolicy {
	return SettlementPolicy{
		AdminFoodRate:     DefaultAdminFoodRate,
		AdminDeliveryRate: DefaultAdminDeliveryRate,
	}
}

// Validate checks that both rates are fractions in [0,1].
func (p SettlementPolicy) Validate() error {
	if p.AdminFoodRate < 0 || p.AdminFoodRate > 1 {
		return errs.NewValueIsOutOfRangeError("admin food rate", p.AdminFoodRate, 0.0, 1.0)
	}
	if p.AdminDeliveryRate < 0 || p.AdminDeliveryRate > 1 {
		return errs.NewValueIsOutOfRangeError("admin delivery rate", p.AdminDeliveryRate, 0.0, 1.0)
	}
	return nil
}

// Settlement is the monetary split of a single order between the platform
// and the restaurant. It is computed exactly once, at order creation, from
// the food price and the restaurant delivery cost in effect at that
// instant, and never recomputed afterwards.
//
// Invariants:
//   - AdminShareFood + RestaurantShareFood == food price
//   - AdminShareDelivery + RestaurantShareDelivery == delivery cost
//   - TotalAdminShare == AdminShareFood + AdminShareDelivery
//   - TotalRestaurantShare == RestaurantShareFood + RestaurantShareDelivery
type Settlement struct {
	AdminShareFood          float64
	AdminShareDelivery      float64
	TotalAdminShare         float64
	RestaurantShareFood     float64
	RestaurantShareDelivery float64
	TotalRestaurantShare    float64
}

// Calculate computes the settlement for a food price and a delivery cost.
// Restaurant shares are taken as the complement of the admin shares, so
// the per-component sums reproduce the inputs exactly rather than within
// tolerance. Pure and deterministic.
func (p SettlementPolicy) Calculate(foodPrice, deliveryCost float64) (Settlement, error) {
	if err := p.Validate(); err != nil {
		return Settlement{}, err
	}
	if foodPrice < 0 || math.IsNaN(foodPrice) || math.IsInf(foodPrice, 0) {
		return Settlement{}, errs.NewValueIsOutOfRangeError("food price", foodPrice, 0.0, math.MaxFloat64)
	}
	if deliveryCost < 0 || math.IsNaN(deliveryCost) || math.IsInf(deliveryCost, 0) {
		return Settlement{}, errs.NewValueIsOutOfRangeError("delivery cost", deliveryCost, 0.0, math.MaxFloat64)
	}

	adminFood := foodPrice * p.AdminFoodRate
	adminDelivery := deliveryCost * p.AdminDeliveryRate
	restaurantFood := foodPrice - adminFood
	restaurantDelivery := deliveryCost - adminDelivery

	return Settlement{
		AdminShareFood:          adminFood,
		AdminShareDelivery:      adminDelivery,
		TotalAdminShare:         adminFood + adminDelivery,
		RestaurantShareFood:     restaurantFood,
		RestaurantShareDelivery: restaurantDelivery,
		TotalRestaurantShare:    restaurantFood + restaurantDelivery,
	}, nil
}

// Validate checks the internal consistency of a settlement, used when
// restoring orders from persistence.
func (s Settlement) Validate() error {
	if s.AdminShareFood < 0 || s.AdminShareDelivery < 0 ||
		s.RestaurantShareFood < 0 || s.RestaurantShareDelivery < 0 {
		return errs.NewValueIsInvalidError("settlement shares")
	}
	if math.Abs(s.TotalAdminShare-(s.AdminShareFood+s.AdminShareDelivery)) > settlementTolerance {
		return errs.NewValueIsInvalidError("total admin share")
	}
	if math.Abs(s.TotalRestaurantShare-(s.RestaurantShareFood+s.RestaurantShareDelivery)) > settlementTolerance {
		return errs.NewValueIsInvalidError("total restaurant share")
	}
	return nil
}
