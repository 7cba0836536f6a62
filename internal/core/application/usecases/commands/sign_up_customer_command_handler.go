package commands

import (
	"context"
	"errors"

	"foodservice/internal/core/domain/model/account"
	"foodservice/internal/pkg/errs"
)

// SignUpCustomerCommandHandler handles customer registration.
// Creates an account with the customer role and a bcrypt password hash.
type SignUpCustomerCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewSignUpCustomerCommandHandler creates a handler for customer sign-up.
func NewSignUpCustomerCommandHandler(uowFactory AccountUoWFactory) SignUpCustomerCommandHandler {
	return SignUpCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer sign-up command.
// Rejects the command when the username is already taken.
func (h *SignUpCustomerCommandHandler) Handle(ctx context.Context, cmd SignUpCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()
	if err := ensureUsernameIsFree(ctx, accountRepo, cmd.Username()); err != nil {
		return err
	}

	acc, err := account.NewAccount(
		cmd.AccountID(),
		cmd.Username(),
		cmd.Password(),
		cmd.Address(),
		account.RoleCustomer,
	)
	if err != nil {
		return err
	}

	if err = accountRepo.Add(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type usernameLookup interface {
	GetByUsername(ctx context.Context, username string) (*account.Account, error)
}

// ensureUsernameIsFree rejects a sign-up when the login name is already
// taken. The unique index on the accounts table is the backstop under
// concurrent registrations.
func ensureUsernameIsFree(ctx context.Context, repo usernameLookup, username string) error {
	_, err := repo.GetByUsername(ctx, username)
	if err == nil {
		return errs.NewValueIsInvalidError("username")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	return nil
}
