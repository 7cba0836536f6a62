package commands

import (
	"errors"

	"foodservice/internal/pkg/guard"
)

var ErrSignInCommandIsNotConstructed = errors.New(
	"SignInCommand must be created via NewSignInCommand constructor",
)

// SignInCommand represents a request to exchange credentials for a
// bearer token.
type SignInCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

// NewSignInCommand creates a sign-in command from raw credentials.
func NewSignInCommand(username, password string) (SignInCommand, error) {
	cmd := SignInCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setPassword(password),
	); err != nil {
		return SignInCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignInCommand) Validate() error {
	return c.guard.Validate(ErrSignInCommandIsNotConstructed)
}

// Username returns the login name.
func (c SignInCommand) Username() string {
	return c.username
}

// Password returns the plain-text password to verify.
func (c SignInCommand) Password() string {
	return c.password
}

func (c *SignInCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *SignInCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
