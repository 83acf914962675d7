package service

import (
	"context"

	"github.com/concungshop/shop-admin/internal/mapper"
	"github.com/concungshop/shop-admin/internal/repo"
	"github.com/concungshop/shop-admin/internal/transport"
)

type CategoryService struct {
	Repo *repo.GormRepo
}

func (s *CategoryService) FindAll(ctx context.Context) ([]transport.CategoryDto, error) {
	categories, err := s.Repo.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.CategoriesToDto(categories), nil
}

func (s *CategoryService) FindByID(ctx context.Context, id int64) (*transport.CategoryDto, error) {
	category, err := s.Repo.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.CategoryToDto(*category)
	return &dto, nil
}

func (s *CategoryService) Save(ctx context.Context, dto transport.CategoryDto) (*transport.CategoryDto, error) {
	entity := mapper.CategoryFromDto(dto)
	saved, err := s.Repo.SaveCategory(ctx, &entity)
	if err != nil {
		return nil, err
	}
	out := mapper.CategoryToDto(*saved)
	return &out, nil
}

func (s *CategoryService) Remove(ctx context.Context, id int64) error {
	return s.Repo.DeleteCategory(ctx, id)
}
