package ports

import (
	"context"

	"foodservice/internal/core/domain/model/account"
	"foodservice/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for user accounts.
type AccountRepository interface {
	// Add persists a new account. Usernames are unique.
	Add(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByUsername retrieves an account by its login name, used by
	// sign-in.
	GetByUsername(ctx context.Context, username string) (*account.Account, error)
}
