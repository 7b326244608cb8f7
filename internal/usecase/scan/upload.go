package scan

import (
	"context"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	domain "github.com/oralvis-health/scan-api/internal/domain/scan"
	"github.com/oralvis-health/scan-api/internal/httperr"
	"github.com/oralvis-health/scan-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UploadScanInput struct {
	PatientName string
	PatientID   string
	ScanType    domain.Type
	Region      domain.Region

	// Technician's wall clock, not server receipt time.
	UploadDate time.Time

	Filename    string
	ContentType string
	Image       io.Reader
	Size        int64
}

// ======================================================
// USE CASE
// ======================================================

// UploadScan runs the two-phase write: image bytes to object storage first,
// metadata row second. The phases are not transactional across the two
// systems; a metadata failure leaves the blob orphaned and only logged.
type UploadScan struct {
	repo  domain.Repository
	store domain.ObjectStorage
}

func NewUploadScan(
	repo domain.Repository,
	store domain.ObjectStorage,
) *UploadScan {
	return &UploadScan{
		repo:  repo,
		store: store,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UploadScan) Execute(
	ctx context.Context,
	in UploadScanInput,
) (*models.Scan, error) {

	key := "scans/" + uuid.NewString() + filepath.Ext(in.Filename)

	url, err := uc.store.Put(ctx, domain.PutInput{
		Key:         key,
		ContentType: in.ContentType,
		Body:        in.Image,
		Size:        in.Size,
	})
	if err != nil {
		return nil, httperr.ErrBusiness("upload_failed")
	}

	s := &models.Scan{
		PatientName: in.PatientName,
		PatientID:   in.PatientID,
		ScanType:    string(in.ScanType),
		Region:      string(in.Region),
		ImageURL:    url,
		UploadDate:  in.UploadDate,
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		// No compensating delete; surfaced for manual reconciliation.
		log.Printf("orphaned object after metadata insert failure: %s", url)
		return nil, httperr.ErrBusiness("persist_failed")
	}

	return s, nil
}
