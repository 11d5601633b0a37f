package adminauth

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type claimsContextKey struct{}

// RequireAdmin parses a Bearer JWT from the Authorization header and
// rejects the request unless it is valid and carries IsAdmin. On success
// the claims are stored in the request context for handlers to read back
// with ClaimsFromContext.
func (a *Authenticator) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := a.ParseJWT(token)
			if err != nil || !claims.IsAdmin {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			ctx := context.WithValue(c.Request().Context(), claimsContextKey{}, claims)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(*Claims)
	return claims, ok
}
