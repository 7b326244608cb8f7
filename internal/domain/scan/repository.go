package scan

import (
	"context"

	"github.com/oralvis-health/scan-api/internal/models"
)

type Repository interface {
	// -------- Scan (create) --------
	Create(
		ctx context.Context,
		s *models.Scan,
	) error

	// -------- Scan (read) --------
	List(
		ctx context.Context,
	) ([]models.Scan, error)

	// -------- Scan (delete) --------
	DeleteByID(
		ctx context.Context,
		id uint,
	) error

	DeleteAll(
		ctx context.Context,
	) (int64, error)
}
