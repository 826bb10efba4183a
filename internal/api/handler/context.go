package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aulahub/course-platform/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Session middleware and
// performs a fast-fail check before any service call: an identity without
// an id means the token was structurally valid but operationally unusable.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get("identity").(domain.Identity)
	if !ok || identity.ID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "Não autorizado")
	}
	return identity, nil
}
