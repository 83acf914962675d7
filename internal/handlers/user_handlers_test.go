package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/concungshop/shop-admin/internal/hash"
	"github.com/concungshop/shop-admin/internal/models"
)

func postForm(env *testEnv, path string, form url.Values) (*httptest.ResponseRecorder, echo.Context) {
	return env.newContext(http.MethodPost, path, echo.MIMEApplicationForm, strings.NewReader(form.Encode()))
}

func TestCreateUser_HashesPassword(t *testing.T) {
	env := newTestEnv(t)

	form := url.Values{
		"username":  {"alice"},
		"password":  {"secret123"},
		"full_name": {"Alice A"},
		"role_id":   {fmt.Sprint(env.Admin.RoleID)},
		"activated": {"true"},
	}
	rec, c := postForm(env, "/user/create", form)
	require.NoError(t, env.U.Create(c))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/user/list", rec.Header().Get(echo.HeaderLocation))

	var stored models.User
	require.NoError(t, env.DB.Where("username = ?", "alice").First(&stored).Error)
	require.NotEqual(t, "secret123", stored.Password)
	require.True(t, hash.CheckPassword(stored.Password, "secret123"))
	require.True(t, stored.Activated)
}

func TestEditUser_EmptyPasswordKeepsHash(t *testing.T) {
	env := newTestEnv(t)

	before := env.Admin.Password

	form := url.Values{
		"id":        {fmt.Sprint(env.Admin.ID)},
		"username":  {"admin"},
		"password":  {""},
		"full_name": {"Renamed Admin"},
		"role_id":   {fmt.Sprint(env.Admin.RoleID)},
		"activated": {"true"},
	}
	rec, c := postForm(env, "/user/edit", form)
	require.NoError(t, env.U.Edit(c))
	require.Equal(t, http.StatusFound, rec.Code)

	var stored models.User
	require.NoError(t, env.DB.First(&stored, env.Admin.ID).Error)
	require.Equal(t, before, stored.Password)
	require.Equal(t, "Renamed Admin", stored.FullName)
}

func TestUpdateUserRole(t *testing.T) {
	env := newTestEnv(t)

	staff := models.Role{Name: "STAFF"}
	require.NoError(t, env.DB.Create(&staff).Error)

	form := url.Values{
		"id":      {fmt.Sprint(env.Admin.ID)},
		"role_id": {fmt.Sprint(staff.ID)},
	}
	rec, c := postForm(env, "/user/role", form)
	require.NoError(t, env.U.UpdateRole(c))
	require.Equal(t, http.StatusFound, rec.Code)

	var stored models.User
	require.NoError(t, env.DB.First(&stored, env.Admin.ID).Error)
	require.Equal(t, staff.ID, stored.RoleID)
}

func TestUpdateUserPassword_StoredHashUnchanged(t *testing.T) {
	env := newTestEnv(t)

	before := env.Admin.Password

	form := url.Values{
		"username": {"admin"},
		"password": {"brand-new-pass"},
	}
	rec, c := postForm(env, "/user/password", form)
	require.NoError(t, env.U.UpdatePassword(c))
	require.Equal(t, http.StatusFound, rec.Code)

	var stored models.User
	require.NoError(t, env.DB.First(&stored, env.Admin.ID).Error)
	require.Equal(t, before, stored.Password)
	require.True(t, hash.CheckPassword(stored.Password, "admin123"))
}

func TestListUsers_ShowsActivatedOnly(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.DB.Create(&models.User{Username: "ghost", Password: "x", Activated: false}).Error)

	rec, c := env.newContext(http.MethodGet, "/user/list", "", nil)
	require.NoError(t, env.U.List(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "admin")
	require.NotContains(t, rec.Body.String(), "ghost")
}

func TestSearchUsers_ByFullName(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.DB.Create(&models.User{Username: "dana", Password: "x", FullName: "Dana Miller", Activated: true}).Error)

	rec, c := env.newContext(http.MethodGet, "/user/search?name=dana", "", nil)
	require.NoError(t, env.U.Search(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Dana Miller")
}
