package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kudoshq/recognition-api/internal/api/middleware"
	"github.com/kudoshq/recognition-api/internal/core/domain"
)

// ctxActor extracts the authenticated user injected by the Auth
// middleware. It returns nil on public routes or when the middleware
// did not run; services treat a nil actor as unauthenticated, so no
// fast-fail happens here.
func ctxActor(c echo.Context) *domain.User {
	actor, _ := c.Get(middleware.ActorKey).(*domain.User)
	return actor
}
