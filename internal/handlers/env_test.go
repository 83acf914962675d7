package handlers

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/concungshop/shop-admin/internal/hash"
	"github.com/concungshop/shop-admin/internal/middleware/auth"
	"github.com/concungshop/shop-admin/internal/models"
	"github.com/concungshop/shop-admin/internal/repo"
	"github.com/concungshop/shop-admin/internal/service"
	"github.com/concungshop/shop-admin/internal/view"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
	P  *ProductHandler
	U  *UserHandler
	A  *AuthHandler

	Admin models.User
	Toys  models.Category
}

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Role{}, &models.Category{}, &models.User{}, &models.Product{}))

	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := initTestDB(t)

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer

	repository := repo.New(db)
	productSvc := &service.ProductService{Repo: repository}
	userSvc := &service.UserService{Repo: repository}
	categorySvc := &service.CategoryService{Repo: repository}
	roleSvc := &service.RoleService{Repo: repository}

	nav := &NavBuilder{
		Users:      userSvc,
		Products:   productSvc,
		Categories: categorySvc,
		Roles:      roleSvc,
	}

	adminRole := models.Role{Name: "ADMIN"}
	require.NoError(t, db.Create(&adminRole).Error)

	hashed, err := hash.HashPassword("admin123", hash.DefaultCost)
	require.NoError(t, err)
	admin := models.User{
		Username:  "admin",
		Password:  hashed,
		FullName:  "Site Admin",
		Activated: true,
		RoleID:    adminRole.ID,
	}
	require.NoError(t, db.Create(&admin).Error)

	toys := models.Category{Name: "Toys"}
	require.NoError(t, db.Create(&toys).Error)

	return &testEnv{
		T:  t,
		E:  e,
		DB: db,
		P:  &ProductHandler{Svc: productSvc, Categories: categorySvc, Nav: nav},
		U:  &UserHandler{Svc: userSvc, Nav: nav},
		A:  &AuthHandler{Users: userSvc, JWTSecret: []byte("test-jwt-secret")},

		Admin: admin,
		Toys:  toys,
	}
}

// newContext builds an authenticated echo context the way RequireLogin would
// have left it.
func (env *testEnv) newContext(method, path, contentType string, body io.Reader) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	auth.SetPrincipal(c, env.Admin.Username, "ADMIN")
	return rec, c
}
