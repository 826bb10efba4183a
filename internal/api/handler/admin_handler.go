package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aulahub/course-platform/internal/core/domain"
	"github.com/aulahub/course-platform/internal/core/ports"
)

// AdminHandler covers the admin user-management surface. Admins manage
// users, not course content; every route here sits behind RBAC(admin).
type AdminHandler struct {
	service ports.UserService
}

func NewAdminHandler(service ports.UserService) *AdminHandler {
	return &AdminHandler{service: service}
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type updateRoleResponse struct {
	Message string      `json:"message"`
	User    userSummary `json:"user"`
}

// ListUsers handles GET /admin/users. Password hashes never leave the
// domain layer.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Success      200  {array}   userSummary
// @Failure      403  {object}  map[string]string
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]userSummary, len(users))
	for i, u := range users {
		out[i] = toUserSummary(u)
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateRole handles PUT /admin/users/:id/role. Role validation (closed
// enumeration) happens before the existence check, matching the original
// behavior.
//
// @Summary      Change a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateRoleRequest  true  "New role"
// @Success      200   {object}  updateRoleResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /admin/users/{id}/role [put]
func (h *AdminHandler) UpdateRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Payload inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.UpdateRole(c.Request().Context(), c.Param("id"), domain.Role(req.Role))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updateRoleResponse{
		Message: "Role atualizada com sucesso",
		User:    toUserSummary(user),
	})
}
