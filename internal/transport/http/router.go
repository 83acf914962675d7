package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/concungshop/shop-admin/internal/handlers"
	"github.com/concungshop/shop-admin/internal/middleware/auth"
)

type Deps struct {
	AuthHandler    *handlers.AuthHandler
	ProductHandler *handlers.ProductHandler
	UserHandler    *handlers.UserHandler
	JWTSecret      []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.GET("/login", d.AuthHandler.LoginForm)
	e.POST("/login", d.AuthHandler.Login)
	e.GET("/logout", d.AuthHandler.Logout)

	authMW := &auth.Middleware{JWTSecret: d.JWTSecret}

	product := e.Group("/product", authMW.RequireLogin)
	product.GET("/list", d.ProductHandler.List)
	product.GET("/create", d.ProductHandler.CreateForm)
	product.POST("/create", d.ProductHandler.Create)
	product.GET("/detail/:id", d.ProductHandler.Detail)
	product.GET("/edit/:id", d.ProductHandler.EditForm)
	product.POST("/edit", d.ProductHandler.Edit)
	product.GET("/remove/:id", d.ProductHandler.Remove)
	product.GET("/search", d.ProductHandler.Search)
	product.GET("/search/:id", d.ProductHandler.SearchByCategory)

	user := e.Group("/user", authMW.RequireLogin)
	user.GET("/list", d.UserHandler.List)
	user.GET("/create", d.UserHandler.CreateForm)
	user.POST("/create", d.UserHandler.Create)
	user.GET("/edit/:id", d.UserHandler.EditForm)
	user.POST("/edit", d.UserHandler.Edit)
	user.POST("/role", d.UserHandler.UpdateRole)
	user.POST("/password", d.UserHandler.UpdatePassword)
	user.GET("/search", d.UserHandler.Search)
}
