package commands_test

import (
	"testing"

	"foodservice/internal/core/application/usecases/commands"
	"foodservice/internal/core/domain/model/account"
	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(acc *account.Account) (string, error) {
	args := m.Called(acc)
	return args.String(0), args.Error(1)
}

func newSignInAccount(t *testing.T, username, password string) *account.Account {
	t.Helper()

	acc, err := account.NewAccount(kernel.NewUUID(), username, password, "", account.RoleCustomer)
	require.NoError(t, err)
	return acc
}

func TestSignInCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	acc := newSignInAccount(t, "alice", "correct-horse")

	cmd, err := commands.NewSignInCommand("alice", "correct-horse")
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	uow := new(MockAccountUoW)
	issuer := new(MockTokenIssuer)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("GetByUsername", mock.Anything, "alice").Return(acc, nil).Once(),
		issuer.On("Issue", acc).Return("signed-token", nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSignInCommandHandler(factory, issuer)
	token, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "signed-token", token)

	accountRepo.AssertExpectations(t)
	issuer.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSignInCommandHandler_Handle_WrongPassword(t *testing.T) {
	ctx := t.Context()
	acc := newSignInAccount(t, "alice", "correct-horse")

	cmd, err := commands.NewSignInCommand("alice", "battery-staple")
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	uow := new(MockAccountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("GetByUsername", mock.Anything, "alice").Return(acc, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSignInCommandHandler(factory, new(MockTokenIssuer))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestSignInCommandHandler_Handle_UnknownUsername(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewSignInCommand("nobody", "whatever")
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	uow := new(MockAccountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("GetByUsername", mock.Anything, "nobody").
			Return(nil, errs.NewObjectNotFoundError("username", "nobody")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSignInCommandHandler(factory, new(MockTokenIssuer))
	_, err = h.Handle(ctx, cmd)

	// Unknown usernames and wrong passwords are indistinguishable.
	require.ErrorIs(t, err, errs.ErrForbidden)
}
