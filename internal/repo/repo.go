// Package repo holds the gorm-backed repositories. Lookups that find nothing
// surface gorm.ErrRecordNotFound so handlers can map absence to 404 instead of
// a generic server error.
package repo

import "gorm.io/gorm"

type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}
