package http

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Header names under which the authentication collaborator forwards the
// caller's identity. The system trusts these values; it never issues or
// verifies credentials itself.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

const actorContextKey = "actor"

// ActorMiddleware extracts the acting user from the identity headers and
// stores it in the request context. Requests without a valid identity are
// rejected before reaching a handler.
func ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := actorFromHeaders(c)
			if err != nil {
				return writeError(c, err)
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

func actorFromHeaders(c echo.Context) (kernel.Actor, error) {
	rawID := c.Request().Header.Get(HeaderUserID)
	if rawID == "" {
		return kernel.Actor{}, errs.NewValueIsRequiredError(HeaderUserID + " header")
	}

	rawRole := c.Request().Header.Get(HeaderUserRole)
	if rawRole == "" {
		return kernel.Actor{}, errs.NewValueIsRequiredError(HeaderUserRole + " header")
	}

	userID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return kernel.Actor{}, errs.NewValueIsInvalidErrorWithCause(HeaderUserID+" header", err)
	}

	role, err := kernel.RoleFromString(rawRole)
	if err != nil {
		return kernel.Actor{}, errs.NewValueIsInvalidErrorWithCause(HeaderUserRole+" header", err)
	}

	return kernel.NewActor(userID, role)
}

func actorFromContext(c echo.Context) (kernel.Actor, error) {
	actor, ok := c.Get(actorContextKey).(kernel.Actor)
	if !ok {
		return kernel.Actor{}, errs.NewValueIsRequiredError("actor")
	}
	return actor, nil
}
