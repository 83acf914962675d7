package handlers

import (
	"context"
	"fmt"

	"github.com/concungshop/shop-admin/internal/service"
	"github.com/concungshop/shop-admin/internal/transport"
)

// NavView is the shared fragment every rendered page carries: the signed-in
// user plus the full category, product, and role lists.
type NavView struct {
	UserPrincipal transport.UserDto
	CategoryList  []transport.CategoryDto
	ProductList   []transport.ProductDto
	RoleList      []transport.RoleDto
}

type NavBuilder struct {
	Users      *service.UserService
	Products   *service.ProductService
	Categories *service.CategoryService
	Roles      *service.RoleService
}

// Build assembles the nav fragment for an explicitly passed principal
// username; it never reads ambient security state.
func (b *NavBuilder) Build(ctx context.Context, username string) (*NavView, error) {
	principal, err := b.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("nav: principal %q: %w", username, err)
	}

	categories, err := b.Categories.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("nav: categories: %w", err)
	}

	products, err := b.Products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("nav: products: %w", err)
	}

	roles, err := b.Roles.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("nav: roles: %w", err)
	}

	return &NavView{
		UserPrincipal: *principal,
		CategoryList:  categories,
		ProductList:   products,
		RoleList:      roles,
	}, nil
}
