package repo

import (
	"context"

	"github.com/concungshop/shop-admin/internal/models"
)

func (r *GormRepo) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user := models.User{}
	if err := r.DB.WithContext(ctx).Preload("Role").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user := models.User{}
	if err := r.DB.WithContext(ctx).Preload("Role").Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetUsersByActivated(ctx context.Context, activated bool) ([]models.User, error) {
	var users []models.User
	if err := r.DB.WithContext(ctx).
		Preload("Role").
		Where("activated = ?", activated).
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormRepo) SaveUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := r.DB.WithContext(ctx).Omit("Role").Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *GormRepo) GetUsersByActivatedAndRole(ctx context.Context, activated bool, roleID int64) ([]models.User, error) {
	var users []models.User
	if err := r.DB.WithContext(ctx).
		Preload("Role").
		Where("activated = ? AND role_id = ?", activated, roleID).
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormRepo) GetUsersByFullNameContainingAndActivated(ctx context.Context, fullname string, activated bool) ([]models.User, error) {
	var users []models.User
	if err := r.DB.WithContext(ctx).
		Preload("Role").
		Where("lower(full_name) LIKE lower(?) AND activated = ?", "%"+fullname+"%", activated).
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
