package restaurant_test

import (
	"testing"
	"time"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTimeOfDay(t *testing.T, hour, minute int) kernel.TimeOfDay {
	t.Helper()
	tod, err := kernel.NewTimeOfDay(hour, minute)
	require.NoError(t, err)
	return tod
}

func newTestRestaurant(t *testing.T, opensAt, closesAt kernel.TimeOfDay) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(
		kernel.NewUUID(), kernel.NewUUID(),
		"Shila Burger", restaurant.TypeFastFood,
		opensAt, closesAt,
		20.0, 45,
	)
	require.NoError(t, err)
	return r
}

func at(t *testing.T, hour, minute int) time.Time {
	t.Helper()
	return time.Date(2024, 6, 1, hour, minute, 0, 0, time.UTC)
}

func TestNewRestaurant(t *testing.T) {
	opensAt := mustTimeOfDay(t, 9, 0)
	closesAt := mustTimeOfDay(t, 23, 0)

	t.Run("should create a valid restaurant", func(t *testing.T) {
		id := kernel.NewUUID()
		ownerID := kernel.NewUUID()

		r, err := restaurant.NewRestaurant(id, ownerID, "Gilaneh", restaurant.TypeTraditional, opensAt, closesAt, 15.5, 30)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.ID().IsEqual(id))
		assert.True(t, r.OwnerID().IsEqual(ownerID))
		assert.Equal(t, "Gilaneh", r.Name())
		assert.Equal(t, restaurant.TypeTraditional, r.RestaurantType())
		assert.InDelta(t, 15.5, r.DeliveryCost(), 1e-9)
		assert.Equal(t, 30, r.DeliveryMinutes())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(kernel.NewUUID(), kernel.NewUUID(), "", restaurant.TypeFastFood, opensAt, closesAt, 10, 30)
		require.Error(t, err)
	})

	t.Run("should fail with unknown type", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(kernel.NewUUID(), kernel.NewUUID(), "X", restaurant.Type("pop_up"), opensAt, closesAt, 10, 30)
		require.Error(t, err)
	})

	t.Run("should fail with negative delivery cost", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(kernel.NewUUID(), kernel.NewUUID(), "X", restaurant.TypeFastFood, opensAt, closesAt, -1, 30)
		require.Error(t, err)
	})

	t.Run("should fail with unconstructed window", func(t *testing.T) {
		var zero kernel.TimeOfDay
		_, err := restaurant.NewRestaurant(kernel.NewUUID(), kernel.NewUUID(), "X", restaurant.TypeFastFood, zero, closesAt, 10, 30)
		require.Error(t, err)
	})
}

func TestRestaurant_IsOpenAt(t *testing.T) {
	t.Run("plain daytime window", func(t *testing.T) {
		r := newTestRestaurant(t, mustTimeOfDay(t, 9, 0), mustTimeOfDay(t, 23, 0))

		assert.True(t, r.IsOpenAt(at(t, 9, 0)))
		assert.True(t, r.IsOpenAt(at(t, 12, 30)))
		assert.True(t, r.IsOpenAt(at(t, 23, 0)))
		assert.False(t, r.IsOpenAt(at(t, 8, 59)))
		assert.False(t, r.IsOpenAt(at(t, 23, 1)))
	})

	t.Run("window wrapping past midnight", func(t *testing.T) {
		r := newTestRestaurant(t, mustTimeOfDay(t, 22, 0), mustTimeOfDay(t, 2, 0))

		assert.True(t, r.IsOpenAt(at(t, 23, 30)))
		assert.True(t, r.IsOpenAt(at(t, 1, 0)))
		assert.True(t, r.IsOpenAt(at(t, 22, 0)))
		assert.True(t, r.IsOpenAt(at(t, 2, 0)))
		assert.False(t, r.IsOpenAt(at(t, 12, 0)))
		assert.False(t, r.IsOpenAt(at(t, 21, 59)))
	})
}

func TestNewFood(t *testing.T) {
	restaurantID := kernel.NewUUID()

	t.Run("should create a valid food", func(t *testing.T) {
		id := kernel.NewUUID()

		f, err := restaurant.NewFood(id, restaurantID, "Ghormeh Sabzi", 100.0, 40)

		require.NoError(t, err)
		require.NoError(t, f.Validate())
		assert.True(t, f.ID().IsEqual(id))
		assert.True(t, f.RestaurantID().IsEqual(restaurantID))
		assert.Equal(t, "Ghormeh Sabzi", f.Name())
		assert.InDelta(t, 100.0, f.Price(), 1e-9)
		assert.Equal(t, 40, f.PrepMinutes())
	})

	t.Run("zero price and zero preparation are allowed", func(t *testing.T) {
		_, err := restaurant.NewFood(kernel.NewUUID(), restaurantID, "Tap Water", 0, 0)
		require.NoError(t, err)
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		_, err := restaurant.NewFood(kernel.NewUUID(), restaurantID, "X", -1, 10)
		require.Error(t, err)
	})

	t.Run("should fail with negative preparation minutes", func(t *testing.T) {
		_, err := restaurant.NewFood(kernel.NewUUID(), restaurantID, "X", 10, -1)
		require.Error(t, err)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := restaurant.NewFood(kernel.NewUUID(), restaurantID, "", 10, 10)
		require.Error(t, err)
	})

	t.Run("zero value food fails validation", func(t *testing.T) {
		var f restaurant.Food
		require.Error(t, f.Validate())
	})
}
