package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/oralvis-health/scan-api/internal/domain/scan"
	"github.com/oralvis-health/scan-api/internal/httperr"
	"github.com/oralvis-health/scan-api/internal/models"
)

type ScanGormRepository struct {
	db *gorm.DB
}

func NewScanGormRepository(db *gorm.DB) *ScanGormRepository {
	return &ScanGormRepository{db: db}
}

// --------------------------------------------------
// Scan (create)
// --------------------------------------------------

func (r *ScanGormRepository) Create(
	ctx context.Context,
	s *models.Scan,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// --------------------------------------------------
// Scan (read)
// --------------------------------------------------

func (r *ScanGormRepository) List(
	ctx context.Context,
) ([]models.Scan, error) {

	var scans []models.Scan
	if err := r.db.WithContext(ctx).
		Order("upload_date DESC").
		Find(&scans).Error; err != nil {
		return nil, err
	}

	return scans, nil
}

// --------------------------------------------------
// Scan (delete)
// --------------------------------------------------

func (r *ScanGormRepository) DeleteByID(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Scan{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("scan_not_found")
	}
	return nil
}

func (r *ScanGormRepository) DeleteAll(
	ctx context.Context,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&models.Scan{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// Compile-time check
var _ domain.Repository = (*ScanGormRepository)(nil)
