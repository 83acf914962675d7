package service

import (
	"context"
	"strings"

	"github.com/concungshop/shop-admin/internal/mapper"
	"github.com/concungshop/shop-admin/internal/repo"
	"github.com/concungshop/shop-admin/internal/transport"
	"github.com/concungshop/shop-admin/internal/util"
)

type ProductService struct {
	Repo *repo.GormRepo
}

// ProductPage is one sorted slice of the catalog plus the paging state the
// list view needs.
type ProductPage struct {
	Items      []transport.ProductDto
	Page       int
	Size       int
	Total      int64
	TotalPages int64
}

// Columns the list view may sort on. Anything else falls back to name, which
// keeps user-supplied sortField values out of the ORDER BY clause.
var productSortColumns = map[string]string{
	"id":          "id",
	"name":        "name",
	"price":       "price",
	"quantity":    "quantity",
	"description": "description",
}

func (s *ProductService) FindAll(ctx context.Context) ([]transport.ProductDto, error) {
	items, err := s.Repo.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ProductsToDto(items), nil
}

func (s *ProductService) FindPage(ctx context.Context, page, size int, sortField, sortDir string) (*ProductPage, error) {
	column, ok := productSortColumns[sortField]
	if !ok {
		column = "name"
	}
	direction := "DESC"
	if strings.EqualFold(sortDir, "asc") {
		direction = "ASC"
	}

	offset, limit := util.Calculate(page, size)
	total, items, err := s.Repo.GetProductPage(ctx, offset, limit, column+" "+direction)
	if err != nil {
		return nil, err
	}

	return &ProductPage{
		Items:      mapper.ProductsToDto(items),
		Page:       page,
		Size:       limit,
		Total:      total,
		TotalPages: util.TotalPages(total, limit),
	}, nil
}

func (s *ProductService) FindByID(ctx context.Context, id int64) (*transport.ProductDto, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ProductToDto(*product)
	return &dto, nil
}

func (s *ProductService) Save(ctx context.Context, dto transport.ProductDto) (*transport.ProductDto, error) {
	entity := mapper.ProductFromDto(dto)
	saved, err := s.Repo.SaveProduct(ctx, &entity)
	if err != nil {
		return nil, err
	}
	out := mapper.ProductToDto(*saved)
	return &out, nil
}

func (s *ProductService) Remove(ctx context.Context, id int64) error {
	return s.Repo.DeleteProduct(ctx, id)
}

func (s *ProductService) FindByNameContaining(ctx context.Context, q string) ([]transport.ProductDto, error) {
	items, err := s.Repo.SearchProductsByName(ctx, q)
	if err != nil {
		return nil, err
	}
	return mapper.ProductsToDto(items), nil
}

func (s *ProductService) FindByCategory(ctx context.Context, category transport.CategoryDto) ([]transport.ProductDto, error) {
	items, err := s.Repo.GetProductsByCategory(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	return mapper.ProductsToDto(items), nil
}
