package service

import (
	"context"

	"github.com/concungshop/shop-admin/internal/mapper"
	"github.com/concungshop/shop-admin/internal/repo"
	"github.com/concungshop/shop-admin/internal/transport"
)

type RoleService struct {
	Repo *repo.GormRepo
}

func (s *RoleService) FindAll(ctx context.Context) ([]transport.RoleDto, error) {
	roles, err := s.Repo.GetAllRoles(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.RolesToDto(roles), nil
}

func (s *RoleService) FindByID(ctx context.Context, id int64) (*transport.RoleDto, error) {
	role, err := s.Repo.GetRole(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.RoleToDto(*role)
	return &dto, nil
}

func (s *RoleService) Save(ctx context.Context, dto transport.RoleDto) (*transport.RoleDto, error) {
	entity := mapper.RoleFromDto(dto)
	saved, err := s.Repo.SaveRole(ctx, &entity)
	if err != nil {
		return nil, err
	}
	out := mapper.RoleToDto(*saved)
	return &out, nil
}

func (s *RoleService) Remove(ctx context.Context, id int64) error {
	return s.Repo.DeleteRole(ctx, id)
}
