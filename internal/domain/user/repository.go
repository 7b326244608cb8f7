package user

import (
	"context"

	"github.com/oralvis-health/scan-api/internal/models"
)

type Repository interface {
	Create(
		ctx context.Context,
		email string,
		passwordHash string,
		role Role,
	) (*models.User, error)

	FindByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)
}
