package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/concungshop/shop-admin/internal/models"
	"github.com/concungshop/shop-admin/internal/transport"
)

func seedProducts(t *testing.T, db *gorm.DB, names ...string) {
	t.Helper()
	for i, name := range names {
		require.NoError(t, db.Create(&models.Product{
			Name:      name,
			Price:     decimal.NewFromInt(int64(i + 1)),
			Quantity:  i,
			Activated: true,
		}).Error)
	}
}

func TestProductService_FindPage(t *testing.T) {
	r := initTestRepo(t)
	svc := &ProductService{Repo: r}
	ctx := context.Background()

	seedProducts(t, r.DB, "eel", "ball", "cap", "drum", "axe")

	page, err := svc.FindPage(ctx, 0, 4, "name", "asc")
	require.NoError(t, err)
	require.Len(t, page.Items, 4)
	require.Equal(t, int64(5), page.Total)
	require.Equal(t, int64(2), page.TotalPages)
	for i := 1; i < len(page.Items); i++ {
		require.LessOrEqual(t, page.Items[i-1].Name, page.Items[i].Name)
	}

	last, err := svc.FindPage(ctx, 1, 4, "name", "asc")
	require.NoError(t, err)
	require.Len(t, last.Items, 1)
	require.Equal(t, "eel", last.Items[0].Name)
}

func TestProductService_FindPage_DescendingForAnyOtherDir(t *testing.T) {
	r := initTestRepo(t)
	svc := &ProductService{Repo: r}
	ctx := context.Background()

	seedProducts(t, r.DB, "axe", "ball", "cap")

	for _, dir := range []string{"desc", "DESC", "sideways"} {
		page, err := svc.FindPage(ctx, 0, 10, "name", dir)
		require.NoError(t, err)
		for i := 1; i < len(page.Items); i++ {
			require.GreaterOrEqual(t, page.Items[i-1].Name, page.Items[i].Name)
		}
	}
}

func TestProductService_FindPage_UnknownSortFieldFallsBackToName(t *testing.T) {
	r := initTestRepo(t)
	svc := &ProductService{Repo: r}
	ctx := context.Background()

	seedProducts(t, r.DB, "cap", "axe", "ball")

	page, err := svc.FindPage(ctx, 0, 10, "name; DROP TABLE products", "asc")
	require.NoError(t, err)
	require.Equal(t, "axe", page.Items[0].Name)
	require.Equal(t, "cap", page.Items[2].Name)
}

func TestProductService_FindByNameContaining_CaseInsensitive(t *testing.T) {
	r := initTestRepo(t)
	svc := &ProductService{Repo: r}
	ctx := context.Background()

	seedProducts(t, r.DB, "ball-02", "basket", "doll")

	found, err := svc.FindByNameContaining(ctx, "BALL")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "ball-02", found[0].Name)
}

func TestProductService_FindByCategory(t *testing.T) {
	r := initTestRepo(t)
	svc := &ProductService{Repo: r}
	ctx := context.Background()

	toys := models.Category{Name: "Toys"}
	food := models.Category{Name: "Food"}
	require.NoError(t, r.DB.Create(&toys).Error)
	require.NoError(t, r.DB.Create(&food).Error)

	require.NoError(t, r.DB.Create(&models.Product{Name: "ball", CategoryID: toys.ID}).Error)
	require.NoError(t, r.DB.Create(&models.Product{Name: "doll", CategoryID: toys.ID}).Error)
	require.NoError(t, r.DB.Create(&models.Product{Name: "jam", CategoryID: food.ID}).Error)

	found, err := svc.FindByCategory(ctx, transport.CategoryDto{ID: toys.ID})
	require.NoError(t, err)
	require.Len(t, found, 2)
	for _, p := range found {
		require.Equal(t, toys.ID, p.CategoryID)
	}
}

func TestProductService_SaveAndRemove(t *testing.T) {
	r := initTestRepo(t)
	svc := &ProductService{Repo: r}
	ctx := context.Background()

	saved, err := svc.Save(ctx, transport.ProductDto{
		Name:      "Ball",
		Price:     decimal.RequireFromString("10.0"),
		Quantity:  5,
		Avatar:    "ball.png",
		Activated: true,
	})
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	got, err := svc.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.Equal(t, "ball.png", got.Avatar)
	require.True(t, got.Activated)
	require.True(t, decimal.RequireFromString("10.0").Equal(got.Price))

	require.NoError(t, svc.Remove(ctx, saved.ID))

	_, err = svc.FindByID(ctx, saved.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.ErrorIs(t, svc.Remove(ctx, saved.ID), gorm.ErrRecordNotFound)
}
