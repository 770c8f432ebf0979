package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/viewmall/commerce-api/internal/core/domain"
	"github.com/viewmall/commerce-api/internal/core/ports"
	"github.com/viewmall/commerce-api/internal/core/service"
)

// PrincipalKey is the echo context key under which the resolved principal is
// stored for the request.
const PrincipalKey = "principal"

// ResolvePrincipal resolves the acting identity once per request and stores
// it in the context for every downstream handler. A missing, malformed,
// expired, or forged access token is not an error here: the request simply
// proceeds as anonymous, and the guard checks in the services decide whether
// that is acceptable for the operation.
func ResolvePrincipal(tokens *service.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(PrincipalKey, domain.Anonymous())

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			claims, err := tokens.ParseAccessToken(parts[1])
			if err != nil {
				return next(c)
			}

			// Re-resolve against the store so the principal carries the
			// identity's current role, not the one frozen into the token.
			user, err := users.FindByUsername(c.Request().Context(), claims.Username)
			if err != nil {
				return next(c)
			}

			c.Set(PrincipalKey, domain.Principal{
				ID:       user.ID,
				Username: user.Username,
				Role:     user.Role,
			})
			return next(c)
		}
	}
}
