package commands

import (
	"context"
	"errors"

	"foodservice/internal/core/domain/model/account"
	"foodservice/internal/pkg/errs"
)

// TokenIssuer signs a bearer token for an authenticated account.
type TokenIssuer interface {
	Issue(acc *account.Account) (string, error)
}

// SignInCommandHandler verifies credentials and issues a bearer token.
// Unknown usernames and wrong passwords both produce the same forbidden
// error, so usernames cannot be enumerated through sign-in.
type SignInCommandHandler struct {
	uowFactory AccountUoWFactory
	issuer     TokenIssuer
}

// NewSignInCommandHandler creates a handler for sign-in.
func NewSignInCommandHandler(uowFactory AccountUoWFactory, issuer TokenIssuer) SignInCommandHandler {
	return SignInCommandHandler{
		uowFactory: uowFactory,
		issuer:     issuer,
	}
}

// Handle verifies the credentials and returns a signed token.
func (h *SignInCommandHandler) Handle(ctx context.Context, cmd SignInCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	acc, err := uow.AccountRepository().GetByUsername(ctx, cmd.Username())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", errs.NewForbiddenError("sign in")
		}
		return "", err
	}

	if !acc.CheckPassword(cmd.Password()) {
		return "", errs.NewForbiddenError("sign in")
	}

	token, err := h.issuer.Issue(acc)
	if err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return token, nil
}
