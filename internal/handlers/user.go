package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/concungshop/shop-admin/internal/logging"
	"github.com/concungshop/shop-admin/internal/middleware/auth"
	"github.com/concungshop/shop-admin/internal/service"
	"github.com/concungshop/shop-admin/internal/transport"
)

type UserHandler struct {
	Svc *service.UserService
	Nav *NavBuilder
}

func (h *UserHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.list")

	users, err := h.Svc.FindAll(ctx)
	if err != nil {
		l.Error("list_users_failed", "status", 500, "reason", "cannot list users", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list users")
	}

	nav, err := h.Nav.Build(ctx, auth.Username(c))
	if err != nil {
		l.Error("list_users_failed", "status", 500, "reason", "cannot build nav", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot build nav")
	}

	return c.Render(http.StatusOK, "user/list", echo.Map{
		"Nav":   nav,
		"Users": users,
	})
}

func (h *UserHandler) CreateForm(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.create_form")

	nav, err := h.Nav.Build(ctx, auth.Username(c))
	if err != nil {
		l.Error("create_form_failed", "status", 500, "reason", "cannot build nav", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot build nav")
	}

	return c.Render(http.StatusOK, "user/create", echo.Map{
		"Nav":  nav,
		"User": transport.UserDto{},
	})
}

func (h *UserHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.create")

	var dto transport.UserDto
	if err := c.Bind(&dto); err != nil {
		l.Warn("create_user_failed", "status", 400, "reason", "invalid form", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	saved, err := h.Svc.Save(ctx, dto)
	if err != nil {
		l.Error("create_user_failed", "status", 500, "reason", "cannot save user", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save user")
	}

	l.Info("create_user_success", "user_id", saved.ID)
	return c.Redirect(http.StatusFound, "/user/list")
}

func (h *UserHandler) EditForm(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.edit_form")

	id, err := parseID(c)
	if err != nil {
		l.Warn("edit_form_failed", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	user, err := h.Svc.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("edit_form_failed", "status", 404, "reason", "user not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		l.Error("edit_form_failed", "status", 500, "reason", "cannot get user", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get user")
	}

	nav, err := h.Nav.Build(ctx, auth.Username(c))
	if err != nil {
		l.Error("edit_form_failed", "status", 500, "reason", "cannot build nav", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot build nav")
	}

	return c.Render(http.StatusOK, "user/edit", echo.Map{
		"Nav":  nav,
		"User": user,
	})
}

// Edit saves the submitted user. An empty password field leaves the stored
// hash alone; the service only hashes non-empty submissions.
func (h *UserHandler) Edit(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.edit")

	var dto transport.UserDto
	if err := c.Bind(&dto); err != nil {
		l.Warn("edit_user_failed", "status", 400, "reason", "invalid form", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	saved, err := h.Svc.Save(ctx, dto)
	if err != nil {
		l.Error("edit_user_failed", "status", 500, "reason", "cannot save user", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save user")
	}

	l.Info("edit_user_success", "user_id", saved.ID)
	return c.Redirect(http.StatusFound, "/user/list")
}

func (h *UserHandler) UpdateRole(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.update_role")

	var dto transport.UserDto
	if err := c.Bind(&dto); err != nil {
		l.Warn("update_role_failed", "status", 400, "reason", "invalid form", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	if err := h.Svc.UpdateRole(ctx, dto); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("update_role_failed", "status", 404, "reason", "user not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		l.Error("update_role_failed", "status", 500, "reason", "cannot update role", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update role")
	}

	l.Info("update_role_success", "user_id", dto.ID)
	return c.Redirect(http.StatusFound, "/user/list")
}

func (h *UserHandler) UpdatePassword(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.update_password")

	var dto transport.UserDto
	if err := c.Bind(&dto); err != nil {
		l.Warn("update_password_failed", "status", 400, "reason", "invalid form", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	if err := h.Svc.UpdatePassword(ctx, dto); err != nil {
		l.Error("update_password_failed", "status", 500, "reason", "cannot update password", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update password")
	}

	l.Info("update_password_success", "username", dto.Username)
	return c.Redirect(http.StatusFound, "/user/list")
}

func (h *UserHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.search")

	name := c.QueryParam("name")
	users, err := h.Svc.FindByFullNameContainingAndActivated(ctx, name, true)
	if err != nil {
		l.Error("search_users_failed", "status", 500, "reason", "cannot search users", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot search users")
	}

	nav, err := h.Nav.Build(ctx, auth.Username(c))
	if err != nil {
		l.Error("search_users_failed", "status", 500, "reason", "cannot build nav", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot build nav")
	}

	return c.Render(http.StatusOK, "user/search", echo.Map{
		"Nav":   nav,
		"Users": users,
	})
}
