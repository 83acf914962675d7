package handlers

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/concungshop/shop-admin/internal/hash"
	"github.com/concungshop/shop-admin/internal/logging"
	"github.com/concungshop/shop-admin/internal/middleware/auth"
	"github.com/concungshop/shop-admin/internal/service"
)

const sessionTTL = 12 * time.Hour

type AuthHandler struct {
	Users     *service.UserService
	JWTSecret []byte
}

func CreateCookie(name, value, path string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  expires,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login", echo.Map{})
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req struct {
		Username string `form:"username"`
		Password string `form:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid form", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	user, err := h.Users.FindByUsername(ctx, req.Username)
	if err != nil || !hash.CheckPassword(user.Password, req.Password) {
		l.Warn("login_failed", "status", 401, "reason", "invalid credentials", "username", req.Username)
		return c.Render(http.StatusUnauthorized, "login", echo.Map{
			"Error": "invalid username or password",
		})
	}

	exp := time.Now().Add(sessionTTL)
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role.Name,
		"exp":      exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.JWTSecret)
	if err != nil {
		l.Error("login_failed", "status", 500, "reason", "cannot sign token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot sign token")
	}

	c.SetCookie(CreateCookie(auth.AccessCookie, token, "/", exp))

	l.Info("login_success", "user_id", user.ID)
	return c.Redirect(http.StatusFound, "/product/list")
}

func (h *AuthHandler) Logout(c echo.Context) error {
	expired := time.Now().Add(-1 * time.Hour)
	c.SetCookie(CreateCookie(auth.AccessCookie, "", "/", expired))
	return c.Redirect(http.StatusFound, "/login")
}
