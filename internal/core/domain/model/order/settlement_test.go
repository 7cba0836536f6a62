package order_test

import (
	"testing"

	"foodservice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettlementPolicy_Calculate(t *testing.T) {
	policy := order.DefaultSettlementPolicy()

	t.Run("reference split for price 100 and delivery cost 20", func(t *testing.T) {
		s, err := policy.Calculate(100.0, 20.0)

		require.NoError(t, err)
		assert.InDelta(t, 4.0, s.AdminShareFood, 1e-9)
		assert.InDelta(t, 96.0, s.RestaurantShareFood, 1e-9)
		assert.InDelta(t, 4.0, s.AdminShareDelivery, 1e-9)
		assert.InDelta(t, 16.0, s.RestaurantShareDelivery, 1e-9)
		assert.InDelta(t, 8.0, s.TotalAdminShare, 1e-9)
		assert.InDelta(t, 112.0, s.TotalRestaurantShare, 1e-9)
	})

	t.Run("shares always sum back to the inputs", func(t *testing.T) {
		prices := []float64{0, 0.01, 1, 9.99, 100, 12345.67, 1e9}
		deliveryCosts := []float64{0, 0.5, 3, 19.99, 250, 1e6}

		for _, p := range prices {
			for _, d := range deliveryCosts {
				s, err := policy.Calculate(p, d)

				require.NoError(t, err)
				assert.Equal(t, p, s.AdminShareFood+s.RestaurantShareFood)
				assert.Equal(t, d, s.AdminShareDelivery+s.RestaurantShareDelivery)
				assert.InDelta(t, p+d, s.TotalAdminShare+s.TotalRestaurantShare, 1e-6)
				require.NoError(t, s.Validate())
			}
		}
	})

	t.Run("zero inputs yield zero shares", func(t *testing.T) {
		s, err := policy.Calculate(0, 0)

		require.NoError(t, err)
		assert.Zero(t, s.TotalAdminShare)
		assert.Zero(t, s.TotalRestaurantShare)
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		_, err := policy.Calculate(-1, 20)
		require.Error(t, err)
	})

	t.Run("negative delivery cost is rejected", func(t *testing.T) {
		_, err := policy.Calculate(100, -5)
		require.Error(t, err)
	})

	t.Run("tuned policy rates are honored", func(t *testing.T) {
		tuned := order.SettlementPolicy{AdminFoodRate: 0.10, AdminDeliveryRate: 0.50}

		s, err := tuned.Calculate(200.0, 40.0)

		require.NoError(t, err)
		assert.InDelta(t, 20.0, s.AdminShareFood, 1e-9)
		assert.InDelta(t, 180.0, s.RestaurantShareFood, 1e-9)
		assert.InDelta(t, 20.0, s.AdminShareDelivery, 1e-9)
		assert.InDelta(t, 20.0, s.RestaurantShareDelivery, 1e-9)
	})

	t.Run("rates outside the unit interval are rejected", func(t *testing.T) {
		bad := order.SettlementPolicy{AdminFoodRate: 1.5, AdminDeliveryRate: 0.2}

		_, err := bad.Calculate(100, 20)

		require.Error(t, err)
	})
}

func TestSettlement_Validate(t *testing.T) {
	t.Run("consistent settlement passes", func(t *testing.T) {
		s, err := order.DefaultSettlementPolicy().Calculate(42.5, 7.25)
		require.NoError(t, err)

		require.NoError(t, s.Validate())
	})

	t.Run("inconsistent totals are rejected", func(t *testing.T) {
		s := order.Settlement{
			AdminShareFood:          4,
			AdminShareDelivery:      4,
			TotalAdminShare:         100, // does not match the components
			RestaurantShareFood:     96,
			RestaurantShareDelivery: 16,
			TotalRestaurantShare:    112,
		}

		require.Error(t, s.Validate())
	})

	t.Run("negative shares are rejected", func(t *testing.T) {
		s := order.Settlement{AdminShareFood: -1}

		require.Error(t, s.Validate())
	})
}
