package ports

import (
	"context"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateStatusIf persists the aggregate's status and modification
	// timestamp only if the stored status still equals expected. When
	// another request already applied a conflicting transition, a
	// PreconditionFailedError is returned and nothing is written. This
	// compare-and-set keeps every time-triggered transition at-most-once
	// under concurrent requests.
	UpdateStatusIf(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
