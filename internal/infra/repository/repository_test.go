package repository

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domainUser "github.com/oralvis-health/scan-api/internal/domain/user"
	"github.com/oralvis-health/scan-api/internal/httperr"
	"github.com/oralvis-health/scan-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Scan{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestUserCreateAndFind(t *testing.T) {
	repo := NewUserGormRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, "tech@x.com", "hash", domainUser.RoleTechnician)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	found, err := repo.FindByEmail(ctx, "tech@x.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Role != string(domainUser.RoleTechnician) {
		t.Fatalf("unexpected role %s", found.Role)
	}
}

func TestUserDuplicateEmail(t *testing.T) {
	repo := NewUserGormRepository(setupTestDB(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, "dup@x.com", "hash", domainUser.RoleDentist); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := repo.Create(ctx, "dup@x.com", "hash2", domainUser.RoleTechnician)
	if !httperr.IsBusiness(err, "email_already_exists") {
		t.Fatalf("expected email_already_exists got %v", err)
	}
}

func TestUserFindMissing(t *testing.T) {
	repo := NewUserGormRepository(setupTestDB(t))

	_, err := repo.FindByEmail(context.Background(), "nobody@x.com")
	if err != gorm.ErrRecordNotFound {
		t.Fatalf("expected ErrRecordNotFound got %v", err)
	}
}

func seedScan(t *testing.T, repo *ScanGormRepository, name string, uploaded time.Time) *models.Scan {
	t.Helper()
	s := &models.Scan{
		PatientName: name,
		PatientID:   "P-1",
		ScanType:    "RGB",
		Region:      "Frontal",
		ImageURL:    "https://cdn.test/scans/" + name + ".jpg",
		UploadDate:  uploaded,
	}
	if err := repo.Create(context.Background(), s); err != nil {
		t.Fatalf("create scan: %v", err)
	}
	return s
}

func TestScanListOrdersByUploadDateDesc(t *testing.T) {
	repo := NewScanGormRepository(setupTestDB(t))

	t1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	// Insert the newer scan first: insert order must not matter.
	seedScan(t, repo, "older", t1)
	seedScan(t, repo, "newer", t2)

	scans, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(scans) != 2 {
		t.Fatalf("expected 2 scans got %d", len(scans))
	}
	if scans[0].PatientName != "newer" || scans[1].PatientName != "older" {
		t.Fatalf("wrong order: %s then %s", scans[0].PatientName, scans[1].PatientName)
	}
}

func TestScanDeleteByID(t *testing.T) {
	repo := NewScanGormRepository(setupTestDB(t))
	ctx := context.Background()

	s := seedScan(t, repo, "A", time.Now())

	if err := repo.DeleteByID(ctx, s.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// Second delete of the same id reports not found.
	err := repo.DeleteByID(ctx, s.ID)
	if !httperr.IsBusiness(err, "scan_not_found") {
		t.Fatalf("expected scan_not_found got %v", err)
	}
}

func TestScanDeleteUnknownID(t *testing.T) {
	repo := NewScanGormRepository(setupTestDB(t))

	err := repo.DeleteByID(context.Background(), 999)
	if !httperr.IsBusiness(err, "scan_not_found") {
		t.Fatalf("expected scan_not_found got %v", err)
	}
}

func TestScanDeleteAll(t *testing.T) {
	repo := NewScanGormRepository(setupTestDB(t))
	ctx := context.Background()

	seedScan(t, repo, "A", time.Now())
	seedScan(t, repo, "B", time.Now())
	seedScan(t, repo, "C", time.Now())

	cleared, err := repo.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if cleared != 3 {
		t.Fatalf("expected 3 cleared got %d", cleared)
	}

	scans, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(scans) != 0 {
		t.Fatalf("expected empty list got %d", len(scans))
	}

	// Clearing an already empty table is fine.
	cleared, err = repo.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("delete all empty: %v", err)
	}
	if cleared != 0 {
		t.Fatalf("expected 0 cleared got %d", cleared)
	}
}
