package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/beyond-platform/content-api/internal/core/ports"
)

// RoleHandler handles role-catalog administration.
type RoleHandler struct {
	userService ports.UserService
}

func NewRoleHandler(userService ports.UserService) *RoleHandler {
	return &RoleHandler{userService: userService}
}

// List returns the role catalog.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Role
// @Router       /v1/roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.userService.ListRoles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roles)
}

// Create adds a role to the catalog.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      roleRequest  true  "Role name"
// @Success      201   {object}  domain.Role
// @Failure      409   {object}  map[string]string
// @Router       /v1/roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.userService.CreateRole(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, role)
}

// Update renames a role. Users keep the old role name; reassignment is a
// separate admin action.
//
// @Summary      Rename a role
// @Tags         roles
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int          true  "Role id"
// @Param        body  body  roleRequest  true  "New role name"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/roles/{id} [put]
func (h *RoleHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.userService.RenameRole(c.Request().Context(), id, req.Name); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a role. Refused while any user still carries it.
//
// @Summary      Delete a role
// @Tags         roles
// @Security     BearerAuth
// @Param        id  path  int  true  "Role id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/roles/{id} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.userService.DeleteRole(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
