// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"time"

	"foodservice/internal/core/ports"
)

// Clock supplies the current time to handlers whose behavior depends on
// it (operating hours, status aging, cancellation windows). Passing nil
// to a handler constructor defaults to time.Now; tests inject a fixed
// clock instead.
type Clock func() time.Time

func clockOrDefault(clock Clock) Clock {
	if clock == nil {
		return time.Now
	}
	return clock
}

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RestaurantRepoFactory provides access to restaurant repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// AccountRepoFactory provides access to account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// OrderUoW manages transactions for order operations. Order handlers
	// also read restaurants and foods to resolve prices, owners and
	// preparation times, so the restaurant repository rides along.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// RestaurantUoW manages transactions spanning restaurant and account
	// aggregates, used by restaurant sign-up and menu management.
	RestaurantUoW interface {
		TxManager
		RestaurantRepoFactory
		AccountRepoFactory
	}

	// RestaurantUoWFactory creates new restaurant unit of work instances.
	RestaurantUoWFactory interface {
		Create() RestaurantUoW
	}

	// AccountUoW manages transactions for account-only operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}
)
