package order_test

import (
	"testing"
	"time"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/core/domain/model/order"
	"foodservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func validSettlement(t *testing.T) order.Settlement {
	t.Helper()
	s, err := order.DefaultSettlementPolicy().Calculate(100.0, 20.0)
	require.NoError(t, err)
	return s
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		validSettlement(t), baseTime,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	foodID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	t.Run("should create order in initial status with settlement snapshot", func(t *testing.T) {
		settlement := validSettlement(t)

		o, err := order.NewOrder(id, customerID, foodID, restaurantID, settlement, baseTime)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.True(t, o.FoodID().IsEqual(foodID))
		assert.True(t, o.RestaurantID().IsEqual(restaurantID))
		assert.Equal(t, order.Initial, o.Status())
		assert.Equal(t, settlement, o.Settlement())
		assert.Equal(t, baseTime, o.CreatedAt())
		assert.Equal(t, baseTime, o.ModifiedAt())
	})

	t.Run("should fail with invalid identifiers", func(t *testing.T) {
		var zero kernel.UUID

		o, err := order.NewOrder(zero, customerID, foodID, restaurantID, validSettlement(t), baseTime)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with inconsistent settlement", func(t *testing.T) {
		bad := order.Settlement{AdminShareFood: 1, TotalAdminShare: 99}

		o, err := order.NewOrder(id, customerID, foodID, restaurantID, bad, baseTime)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order fails", func(t *testing.T) {
		var o *order.Order
		require.Error(t, o.Validate())
	})

	t.Run("zero value fails", func(t *testing.T) {
		var o order.Order
		err := o.Validate()
		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_AutoAdvance(t *testing.T) {
	t.Run("stays initial before the delay", func(t *testing.T) {
		o := newTestOrder(t)

		changed := o.AutoAdvance(baseTime.Add(299 * time.Second))

		assert.False(t, changed)
		assert.Equal(t, order.Initial, o.Status())
		assert.Equal(t, baseTime, o.ModifiedAt())
	})

	t.Run("advances exactly at the threshold", func(t *testing.T) {
		o := newTestOrder(t)
		at := baseTime.Add(order.PreparingDelay)

		changed := o.AutoAdvance(at)

		assert.True(t, changed)
		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, at, o.ModifiedAt())
		assert.Equal(t, baseTime, o.CreatedAt())
	})

	t.Run("is idempotent once advanced", func(t *testing.T) {
		o := newTestOrder(t)
		require.True(t, o.AutoAdvance(baseTime.Add(10*time.Minute)))

		changed := o.AutoAdvance(baseTime.Add(20 * time.Minute))

		assert.False(t, changed)
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("never fires on terminal orders", func(t *testing.T) {
		o := newTestOrder(t)
		require.True(t, o.AutoAdvance(baseTime.Add(10*time.Minute)))
		require.NoError(t, o.ChangeStatus(order.Delivered, baseTime.Add(30*time.Minute)))

		assert.False(t, o.AutoAdvance(baseTime.Add(2*time.Hour)))
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	const prepMinutes = 15
	// eligible from created_at + 15m + 10m grace
	threshold := baseTime.Add(15*time.Minute + order.CancellationGrace)

	preparingOrder := func(t *testing.T) *order.Order {
		o := newTestOrder(t)
		require.True(t, o.AutoAdvance(baseTime.Add(order.PreparingDelay)))
		return o
	}

	t.Run("rejects cancel while still initial", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Cancel(threshold.Add(time.Hour), prepMinutes)

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Equal(t, order.Initial, o.Status())
	})

	t.Run("rejects cancel before the grace window closes", func(t *testing.T) {
		o := preparingOrder(t)

		err := o.Cancel(threshold.Add(-time.Second), prepMinutes)

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("cancels exactly at the threshold", func(t *testing.T) {
		o := preparingOrder(t)

		err := o.Cancel(threshold, prepMinutes)

		require.NoError(t, err)
		assert.Equal(t, order.Canceled, o.Status())
		assert.Equal(t, threshold, o.ModifiedAt())
	})

	t.Run("second cancel fails the precondition", func(t *testing.T) {
		o := preparingOrder(t)
		require.NoError(t, o.Cancel(threshold, prepMinutes))

		err := o.Cancel(threshold.Add(time.Minute), prepMinutes)

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Equal(t, order.Canceled, o.Status())
	})

	t.Run("zero preparation time still honors the grace period", func(t *testing.T) {
		o := preparingOrder(t)

		err := o.Cancel(baseTime.Add(9*time.Minute), 0)
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)

		require.NoError(t, o.Cancel(baseTime.Add(order.CancellationGrace), 0))
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("restaurant may set any legal status on a live order", func(t *testing.T) {
		o := newTestOrder(t)
		at := baseTime.Add(time.Minute)

		require.NoError(t, o.ChangeStatus(order.Delivered, at))

		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, at, o.ModifiedAt())
	})

	t.Run("terminal orders reject changes", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Canceled, baseTime.Add(time.Minute)))

		err := o.ChangeStatus(order.Preparing, baseTime.Add(2*time.Minute))

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Equal(t, order.Canceled, o.Status())
	})

	t.Run("invalid target is rejected without mutation", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.Unknown, baseTime.Add(time.Minute))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Initial, o.Status())
		assert.Equal(t, baseTime, o.ModifiedAt())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round-trips a persisted order", func(t *testing.T) {
		original := newTestOrder(t)
		require.True(t, original.AutoAdvance(baseTime.Add(order.PreparingDelay)))

		restored, err := order.RestoreOrder(
			original.ID(), original.CustomerID(), original.FoodID(), original.RestaurantID(),
			original.Settlement(), original.Status(), original.CreatedAt(), original.ModifiedAt(),
		)

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(original))
		assert.Equal(t, original.Status(), restored.Status())
		assert.Equal(t, original.Settlement(), restored.Settlement())
		assert.Equal(t, original.CreatedAt(), restored.CreatedAt())
	})

	t.Run("rejects an unknown stored status", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := order.RestoreOrder(
			o.ID(), o.CustomerID(), o.FoodID(), o.RestaurantID(),
			o.Settlement(), order.Unknown, o.CreatedAt(), o.ModifiedAt(),
		)

		require.Error(t, err)
	})
}
