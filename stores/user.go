package stores

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"restaurant-directory-api/apperror"
	"restaurant-directory-api/models"
)

type gormUserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) UserStore {
	return &gormUserStore{db: db}
}

func (s *gormUserStore) Register(ctx context.Context, user *models.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Store(models.FailureResponse)
	}
	user.PasswordHash = string(hash)

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		// Duplicate username/email surfaces here through the unique indexes.
		return apperror.Store(err.Error())
	}
	return nil
}

func (s *gormUserStore) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Authentication(models.BadCredentials)
		}
		return nil, apperror.Store(models.FailureResponse)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperror.Authentication(models.BadCredentials)
	}
	return &user, nil
}
