package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/concungshop/shop-admin/internal/models"
)

func (r *GormRepo) GetRole(ctx context.Context, id int64) (*models.Role, error) {
	role := models.Role{}
	if err := r.DB.WithContext(ctx).First(&role, id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *GormRepo) GetAllRoles(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *GormRepo) SaveRole(ctx context.Context, role *models.Role) (*models.Role, error) {
	if err := r.DB.WithContext(ctx).Save(role).Error; err != nil {
		return nil, err
	}
	return role, nil
}

func (r *GormRepo) DeleteRole(ctx context.Context, id int64) error {
	res := r.DB.WithContext(ctx).Delete(&models.Role{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
