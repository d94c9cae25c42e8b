package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/kudoshq/recognition-api/internal/core/domain"
)

// ActorKey is the echo context key under which Auth stores the
// authenticated *domain.User.
const ActorKey = "actor"

// Auth validates the JWT and injects the authenticated user into the
// request context. The actor is rebuilt entirely from token claims; no
// database lookup happens per request.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			actor := actorFromClaims(claims)
			if actor == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			c.Set(ActorKey, actor)

			return next(c)
		}
	}
}

func actorFromClaims(claims jwt.MapClaims) *domain.User {
	id, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if id == "" || !domain.Role(role).Valid() {
		return nil
	}
	name, _ := claims["name"].(string)
	teamID, _ := claims["team_id"].(string)
	return &domain.User{
		ID:     id,
		Name:   name,
		Role:   domain.Role(role),
		TeamID: teamID,
	}
}
