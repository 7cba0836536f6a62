package commands

import (
	"errors"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/pkg/guard"
)

var (
	ErrSignUpCustomerCommandIsNotConstructed = errors.New(
		"SignUpCustomerCommand must be created via NewSignUpCustomerCommand constructor",
	)
	ErrUsernameIsRequired = errors.New("username is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// SignUpCustomerCommand represents a request to register a new customer
// account.
//
// Example:
//
//	cmd, err := NewSignUpCustomerCommand(kernel.NewUUID(), "alice", "s3cret", "12 Oak Ave")
//	if err != nil {
//	    return fmt.Errorf("invalid sign-up data: %w", err)
//	}
//
//	handler := NewSignUpCustomerCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to sign up: %w", err)
//	}
type SignUpCustomerCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	username  string
	password  string
	address   string

	guard guard.ConstructorGuard
}

// NewSignUpCustomerCommand creates a command to register a customer.
// Validates that the account ID is valid and credentials are not empty.
func NewSignUpCustomerCommand(
	accountID kernel.UUID,
	username, password, address string,
) (SignUpCustomerCommand, error) {
	cmd := SignUpCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setUsername(username),
		cmd.setPassword(password),
		cmd.setAddress(address),
	); err != nil {
		return SignUpCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignUpCustomerCommand) Validate() error {
	return c.guard.Validate(ErrSignUpCustomerCommandIsNotConstructed)
}

// AccountID returns the identifier for the new account.
func (c SignUpCustomerCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Username returns the login name for the new account.
func (c SignUpCustomerCommand) Username() string {
	return c.username
}

// Password returns the plain-text password to be hashed on creation.
func (c SignUpCustomerCommand) Password() string {
	return c.password
}

// Address returns the customer's delivery address.
func (c SignUpCustomerCommand) Address() string {
	return c.address
}

func (c *SignUpCustomerCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *SignUpCustomerCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *SignUpCustomerCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *SignUpCustomerCommand) setAddress(address string) error {
	c.address = address
	return nil
}
