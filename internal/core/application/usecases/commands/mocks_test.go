package commands_test

import (
	"context"
	"testing"
	"time"

	"foodservice/internal/core/application/usecases/commands"
	"foodservice/internal/core/domain/model/account"
	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/core/domain/model/order"
	"foodservice/internal/core/domain/model/restaurant"
	"foodservice/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatusIf(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, r *restaurant.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) AddFood(ctx context.Context, f *restaurant.Food) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockRestaurantRepository) GetFood(ctx context.Context, id kernel.UUID) (*restaurant.Food, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Food), args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockRestaurantUoW struct{ mock.Mock }

func (m *MockRestaurantUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRestaurantUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRestaurantUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRestaurantUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

func (m *MockRestaurantUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockRestaurantUoWFactory struct{ mock.Mock }

func (m *MockRestaurantUoWFactory) Create() commands.RestaurantUoW {
	args := m.Called()
	return args.Get(0).(commands.RestaurantUoW)
}

type MockAccountUoW struct{ mock.Mock }

func (m *MockAccountUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

// Fixtures shared by the handler tests. The restaurant is open from
// 09:00 to 22:00 and noonClock falls inside that window.

var noon = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func noonClock() time.Time { return noon }

func newOpenRestaurant(t *testing.T, ownerID kernel.UUID) *restaurant.Restaurant {
	t.Helper()

	opensAt, err := kernel.NewTimeOfDay(9, 0)
	require.NoError(t, err)
	closesAt, err := kernel.NewTimeOfDay(22, 0)
	require.NoError(t, err)

	rest, err := restaurant.NewRestaurant(
		kernel.NewUUID(), ownerID, "Pronto", restaurant.TypeFastFood,
		opensAt, closesAt, 20, 45,
	)
	require.NoError(t, err)
	return rest
}

func newTestFood(t *testing.T, restaurantID kernel.UUID, price float64, prepMinutes int) *restaurant.Food {
	t.Helper()

	food, err := restaurant.NewFood(kernel.NewUUID(), restaurantID, "Margherita", price, prepMinutes)
	require.NoError(t, err)
	return food
}

func newTestOrder(t *testing.T, customerID, foodID, restaurantID kernel.UUID, createdAt time.Time) *order.Order {
	t.Helper()

	settlement, err := order.DefaultSettlementPolicy().Calculate(100, 20)
	require.NoError(t, err)

	ord, err := order.NewOrder(kernel.NewUUID(), customerID, foodID, restaurantID, settlement, createdAt)
	require.NoError(t, err)
	return ord
}
