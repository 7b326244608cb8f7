package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/oralvis-health/scan-api/internal/domain/user"
	"github.com/oralvis-health/scan-api/internal/httperr"
	"github.com/oralvis-health/scan-api/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(
	ctx context.Context,
	email string,
	passwordHash string,
	role domain.Role,
) (*models.User, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, httperr.ErrBusiness("email_already_exists")
	}

	user := models.User{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         string(role),
	}

	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
