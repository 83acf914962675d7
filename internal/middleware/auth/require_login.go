package auth

import (
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	AccessCookie = "accessToken"

	usernameKey = "username"
	roleKey     = "role"
)

type Middleware struct {
	JWTSecret []byte
}

// RequireLogin checks the access cookie and puts the principal's username and
// role on the echo context. Anonymous or stale sessions go back to /login.
func (m *Middleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(AccessCookie)
		if err != nil {
			return c.Redirect(http.StatusFound, "/login")
		}

		token, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return m.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			return c.Redirect(http.StatusFound, "/login")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		username, _ := claims["username"].(string)
		if username == "" {
			return c.Redirect(http.StatusFound, "/login")
		}
		role, _ := claims["role"].(string)

		c.Set(usernameKey, username)
		c.Set(roleKey, role)
		return next(c)
	}
}

// Username returns the authenticated principal's username, or "" when the
// request never went through RequireLogin.
func Username(c echo.Context) string {
	username, _ := c.Get(usernameKey).(string)
	return username
}

func Role(c echo.Context) string {
	role, _ := c.Get(roleKey).(string)
	return role
}

// SetPrincipal is how tests authenticate a bare echo context.
func SetPrincipal(c echo.Context, username, role string) {
	c.Set(usernameKey, username)
	c.Set(roleKey, role)
}
