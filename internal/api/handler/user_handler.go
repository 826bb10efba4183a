package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aulahub/course-platform/internal/core/ports"
)

// UserHandler serves the authenticated user's own profile.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Profile handles GET /profile. Unlike GET /auth/me, this reads the user
// record fresh from the store, so role changes made after token issuance
// are visible here.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  map[string]userSummary
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.service.Profile(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]userSummary{"user": toUserSummary(user)})
}
