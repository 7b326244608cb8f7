package scan

import (
	"context"

	domain "github.com/oralvis-health/scan-api/internal/domain/scan"
)

// DeleteScan removes a single scan record by id. The stored image blob is
// left behind by design; only the metadata row goes away.
type DeleteScan struct {
	repo domain.Repository
}

func NewDeleteScan(repo domain.Repository) *DeleteScan {
	return &DeleteScan{repo: repo}
}

func (uc *DeleteScan) Execute(ctx context.Context, id uint) error {
	return uc.repo.DeleteByID(ctx, id)
}

// ClearScans wipes the whole scans table and reports how many rows went.
type ClearScans struct {
	repo domain.Repository
}

func NewClearScans(repo domain.Repository) *ClearScans {
	return &ClearScans{repo: repo}
}

func (uc *ClearScans) Execute(ctx context.Context) (int64, error) {
	return uc.repo.DeleteAll(ctx)
}
