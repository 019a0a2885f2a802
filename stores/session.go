package stores

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"restaurant-directory-api/apperror"
	"restaurant-directory-api/models"
)

type gormSessionStore struct {
	db *gorm.DB
}

func NewSessionStore(db *gorm.DB) SessionStore {
	return &gormSessionStore{db: db}
}

func (s *gormSessionStore) Create(ctx context.Context, session *models.Session) error {
	if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
		return apperror.Store(models.FailureResponse)
	}
	return nil
}

func (s *gormSessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session
	if err := s.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("session not found")
		}
		return nil, apperror.Store(models.FailureResponse)
	}
	return &session, nil
}

func (s *gormSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Delete(&models.Session{}, "id = ?", id).Error; err != nil {
		return apperror.Store(models.FailureResponse)
	}
	return nil
}
