package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kudoshq/recognition-api/internal/core/domain"
)

// Require gates a route group behind an access predicate evaluated
// against the authenticated actor. An absent actor fails the predicate
// the same way a nil one does. The error is surfaced through the
// central error handler so denials are counted uniformly.
func Require(allowed func(*domain.User) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, _ := c.Get(ActorKey).(*domain.User)
			if !allowed(actor) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
