// Package mapper converts between persistence entities and transfer objects
// with explicit per-type functions, so a renamed field is a compile error
// rather than a silently dropped value.
package mapper

import (
	"github.com/concungshop/shop-admin/internal/models"
	"github.com/concungshop/shop-admin/internal/transport"
)

func CategoryToDto(c models.Category) transport.CategoryDto {
	return transport.CategoryDto{ID: c.ID, Name: c.Name}
}

func CategoryFromDto(dto transport.CategoryDto) models.Category {
	return models.Category{ID: dto.ID, Name: dto.Name}
}

func RoleToDto(r models.Role) transport.RoleDto {
	return transport.RoleDto{ID: r.ID, Name: r.Name}
}

func RoleFromDto(dto transport.RoleDto) models.Role {
	return models.Role{ID: dto.ID, Name: dto.Name}
}

func ProductToDto(p models.Product) transport.ProductDto {
	return transport.ProductDto{
		ID:          p.ID,
		Name:        p.Name,
		Category:    CategoryToDto(p.Category),
		CategoryID:  p.CategoryID,
		Description: p.Description,
		Avatar:      p.Avatar,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Activated:   p.Activated,
	}
}

func ProductFromDto(dto transport.ProductDto) models.Product {
	categoryID := dto.CategoryID
	if categoryID == 0 {
		categoryID = dto.Category.ID
	}
	return models.Product{
		ID:          dto.ID,
		Name:        dto.Name,
		CategoryID:  categoryID,
		Description: dto.Description,
		Avatar:      dto.Avatar,
		Price:       dto.Price,
		Quantity:    dto.Quantity,
		Activated:   dto.Activated,
	}
}

func UserToDto(u models.User) transport.UserDto {
	return transport.UserDto{
		ID:        u.ID,
		Username:  u.Username,
		Password:  u.Password,
		FullName:  u.FullName,
		Activated: u.Activated,
		Role:      RoleToDto(u.Role),
		RoleID:    u.RoleID,
	}
}

func UserFromDto(dto transport.UserDto) models.User {
	roleID := dto.RoleID
	if roleID == 0 {
		roleID = dto.Role.ID
	}
	return models.User{
		ID:        dto.ID,
		Username:  dto.Username,
		Password:  dto.Password,
		FullName:  dto.FullName,
		Activated: dto.Activated,
		RoleID:    roleID,
	}
}

func ProductsToDto(products []models.Product) []transport.ProductDto {
	dtos := make([]transport.ProductDto, len(products))
	for i, p := range products {
		dtos[i] = ProductToDto(p)
	}
	return dtos
}

func UsersToDto(users []models.User) []transport.UserDto {
	dtos := make([]transport.UserDto, len(users))
	for i, u := range users {
		dtos[i] = UserToDto(u)
	}
	return dtos
}

func CategoriesToDto(categories []models.Category) []transport.CategoryDto {
	dtos := make([]transport.CategoryDto, len(categories))
	for i, c := range categories {
		dtos[i] = CategoryToDto(c)
	}
	return dtos
}

func RolesToDto(roles []models.Role) []transport.RoleDto {
	dtos := make([]transport.RoleDto, len(roles))
	for i, r := range roles {
		dtos[i] = RoleToDto(r)
	}
	return dtos
}
