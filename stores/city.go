package stores

import (
	"context"

	"gorm.io/gorm"

	"restaurant-directory-api/apperror"
	"restaurant-directory-api/models"
)

type gormCityStore struct {
	db *gorm.DB
}

func NewCityStore(db *gorm.DB) CityStore {
	return &gormCityStore{db: db}
}

func (s *gormCityStore) Create(ctx context.Context, city *models.City) error {
	if err := s.db.WithContext(ctx).Create(city).Error; err != nil {
		return apperror.Store(err.Error())
	}
	return nil
}
