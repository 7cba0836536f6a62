package ports

import (
	"context"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant
// aggregates and their foods. Order handlers walk Food -> Restaurant ->
// owner through these lookups, so a dangling reference surfaces as a
// typed not-found error.
type RestaurantRepository interface {
	// Add persists a new restaurant aggregate to storage.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// AddFood persists a new menu item for a restaurant.
	AddFood(ctx context.Context, food *restaurant.Food) error

	// GetFood retrieves a menu item by its unique identifier.
	GetFood(ctx context.Context, id kernel.UUID) (*restaurant.Food, error)
}
