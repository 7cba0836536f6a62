package http

import (
	"net/http"
	"strings"

	"foodservice/internal/adapters/out/auth"
	"foodservice/internal/core/domain/model/account"

	"github.com/labstack/echo/v4"
)

const identityContextKey = "identity"

// TokenVerifier checks a bearer token and extracts the caller identity.
type TokenVerifier interface {
	Verify(signedToken string) (auth.Identity, error)
}

// AuthMiddleware populates the request context with the verified caller
// identity. Requests without a valid bearer token get a 401.
func AuthMiddleware(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return respondErrorCode(ctx, http.StatusUnauthorized, "missing bearer token")
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				return respondErrorCode(ctx, http.StatusUnauthorized, "invalid token")
			}

			ctx.Set(identityContextKey, identity)
			return next(ctx)
		}
	}
}

// RequireRole rejects callers whose account role does not match.
func RequireRole(role account.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			identity, ok := identityFrom(ctx)
			if !ok {
				return respondErrorCode(ctx, http.StatusUnauthorized, "missing bearer token")
			}
			if identity.Role != role {
				return respondErrorCode(ctx, http.StatusForbidden, "insufficient role")
			}
			return next(ctx)
		}
	}
}

func identityFrom(ctx echo.Context) (auth.Identity, bool) {
	identity, ok := ctx.Get(identityContextKey).(auth.Identity)
	return identity, ok
}
