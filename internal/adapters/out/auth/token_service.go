package auth

import (
	"time"

	"foodservice/internal/core/domain/model/account"
	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/pkg/errs"

	"github.com/dgrijalva/jwt-go"
)

// DefaultTokenTTL is how long an issued access token stays valid.
const DefaultTokenTTL = 24 * time.Hour

// Identity is the authenticated caller extracted from a verified token.
type Identity struct {
	AccountID kernel.UUID
	Role      account.Role
}

type signedClaims struct {
	AccountID string `json:"account_id"`
	Role      string `json:"role"`
	jwt.StandardClaims
}

// TokenService issues and verifies HMAC-signed bearer tokens carrying
// the account identity.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService signing with the given secret.
func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}

	return &TokenService{
		secret: []byte(secret),
		ttl:    DefaultTokenTTL,
	}, nil
}

// Issue signs a token for the given account.
func (s *TokenService) Issue(acc *account.Account) (string, error) {
	if acc == nil {
		return "", errs.NewValueIsRequiredError("acc")
	}

	claims := signedClaims{
		AccountID: acc.ID().String(),
		Role:      string(acc.Role()),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(s.ttl).Unix(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("token", err)
	}

	return token, nil
}

// Verify parses a signed token and returns the identity it carries.
// Expired, malformed or tampered tokens yield a forbidden error.
func (s *TokenService) Verify(signedToken string) (Identity, error) {
	if signedToken == "" {
		return Identity{}, errs.NewValueIsRequiredError("signedToken")
	}

	token, err := jwt.ParseWithClaims(signedToken, &signedClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.NewValueIsInvalidError("signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return Identity{}, errs.NewForbiddenErrorWithCause("verify token", err)
	}

	claims, ok := token.Claims.(*signedClaims)
	if !ok || !token.Valid {
		return Identity{}, errs.NewForbiddenError("verify token")
	}

	accountID, err := kernel.UUIDFromString(claims.AccountID)
	if err != nil {
		return Identity{}, errs.NewForbiddenErrorWithCause("verify token", err)
	}

	role := account.Role(claims.Role)
	if err := role.Validate(); err != nil {
		return Identity{}, errs.NewForbiddenErrorWithCause("verify token", err)
	}

	return Identity{AccountID: accountID, Role: role}, nil
}
