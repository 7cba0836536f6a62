package account

import (
	"errors"
	"fmt"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was
	// not created through NewAccount or RestoreAccount.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount constructor")
)

// Role distinguishes the two kinds of users the system serves.
type Role string

const (
	// RoleCustomer places orders.
	RoleCustomer Role = "customer"

	// RoleRestaurant owns a restaurant profile and manages its orders.
	RoleRestaurant Role = "restaurant"
)

// Validate checks that the role is one of the known kinds.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleRestaurant:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", string(r)),
	)
}

// Account is a user identity: a customer placing orders or the owner of a
// restaurant. Passwords are stored only as bcrypt hashes.
type Account struct {
	id           kernel.UUID
	username     string
	passwordHash string
	address      string
	role         Role

	isConstructed bool
}

// NewAccount creates an account with a freshly hashed password.
func NewAccount(id kernel.UUID, username, password, address string, role Role) (*Account, error) {
	if password == "" {
		return nil, errs.NewValueIsRequiredError("password")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	return RestoreAccount(id, username, hash, address, role)
}

// RestoreAccount reconstructs an account from persistence, taking the
// stored password hash verbatim.
func RestoreAccount(id kernel.UUID, username, passwordHash, address string, role Role) (*Account, error) {
	a := &Account{
		address:       address,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setUsername(username),
		a.setPasswordHash(passwordHash),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// HashPassword produces a bcrypt hash of the given password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Validate ensures the Account was properly constructed.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Username returns the unique login name.
func (a *Account) Username() string {
	return a.username
}

// PasswordHash returns the stored bcrypt hash, for persistence only.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// Address returns the delivery address (empty for restaurant accounts).
func (a *Account) Address() string {
	return a.address
}

// Role returns the account kind.
func (a *Account) Role() Role {
	return a.role
}

// CheckPassword reports whether the given plaintext password matches the
// stored hash.
func (a *Account) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)) == nil
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	a.username = username
	return nil
}

func (a *Account) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	a.passwordHash = hash
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
