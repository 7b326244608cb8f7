package scan

import (
	"context"

	domain "github.com/oralvis-health/scan-api/internal/domain/scan"
	"github.com/oralvis-health/scan-api/internal/models"
)

// ListScans returns every scan, newest upload date first.
type ListScans struct {
	repo domain.Repository
}

func NewListScans(repo domain.Repository) *ListScans {
	return &ListScans{repo: repo}
}

func (uc *ListScans) Execute(ctx context.Context) ([]models.Scan, error) {
	return uc.repo.List(ctx)
}
