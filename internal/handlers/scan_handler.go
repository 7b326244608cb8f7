package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/oralvis-health/scan-api/internal/domain/scan"
	"github.com/oralvis-health/scan-api/internal/domain/user"
	"github.com/oralvis-health/scan-api/internal/httperr"
	"github.com/oralvis-health/scan-api/internal/httpresp"
	"github.com/oralvis-health/scan-api/internal/middleware"
	uc "github.com/oralvis-health/scan-api/internal/usecase/scan"
)

// ======================================================
// HANDLER
// ======================================================

type ScanHandler struct {
	upload *uc.UploadScan
	list   *uc.ListScans
	del    *uc.DeleteScan
	clear  *uc.ClearScans
}

func NewScanHandler(
	upload *uc.UploadScan,
	list *uc.ListScans,
	del *uc.DeleteScan,
	clear *uc.ClearScans,
) *ScanHandler {
	return &ScanHandler{
		upload: upload,
		list:   list,
		del:    del,
		clear:  clear,
	}
}

func callerRole(c *gin.Context) user.Role {
	return c.MustGet(middleware.ContextUserRole).(user.Role)
}

// ======================================================
// UPLOAD
// ======================================================

// Upload accepts multipart form data: a scanImage file plus patientName,
// patientId, scanType, region and the client's uploadDate wall clock.
func (h *ScanHandler) Upload(c *gin.Context) {
	if !callerRole(c).CanUpload() {
		httperr.Forbidden(c, "forbidden", "Only Technicians can upload.")
		return
	}

	fileHeader, err := c.FormFile("scanImage")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "No image file uploaded.")
		return
	}

	patientName := c.PostForm("patientName")
	patientID := c.PostForm("patientId")
	if patientName == "" || patientID == "" {
		httperr.BadRequest(c, "invalid_request", "patientName and patientId are required.")
		return
	}

	scanType, err := domain.ParseType(c.PostForm("scanType"))
	if err != nil {
		httperr.BadRequest(c, "invalid_scan_type", "Unknown scan type.")
		return
	}

	region, err := domain.ParseRegion(c.PostForm("region"))
	if err != nil {
		httperr.BadRequest(c, "invalid_region", "Unknown region.")
		return
	}

	uploadDate, err := time.Parse(domain.UploadDateLayout, c.PostForm("uploadDate"))
	if err != nil {
		httperr.BadRequest(c, "invalid_upload_date", "uploadDate must be YYYY-MM-DD HH:MM:SS.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not read uploaded file.")
		return
	}
	defer file.Close()

	created, err := h.upload.Execute(c.Request.Context(), uc.UploadScanInput{
		PatientName: patientName,
		PatientID:   patientID,
		ScanType:    scanType,
		Region:      region,
		UploadDate:  uploadDate,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Image:       file,
		Size:        fileHeader.Size,
	})
	if err != nil {
		if httperr.IsBusiness(err, "upload_failed") {
			httperr.Internal(c, "upload_failed", "Image upload failed.")
			return
		}
		if httperr.IsBusiness(err, "persist_failed") {
			httperr.Internal(c, "persist_failed", "Database insert failed.")
			return
		}
		httperr.Internal(c, "internal_error", "Error uploading scan.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"url":     created.ImageURL,
		"message": "Scan uploaded successfully!",
	})
}

// ======================================================
// LIST
// ======================================================

func (h *ScanHandler) List(c *gin.Context) {
	if !callerRole(c).CanViewScans() {
		httperr.Forbidden(c, "forbidden", "Forbidden.")
		return
	}

	scans, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_scans", "Error fetching scans.")
		return
	}

	httpresp.List(c, scans)
}

// ======================================================
// DELETE (single)
// ======================================================

func (h *ScanHandler) Delete(c *gin.Context) {
	if !callerRole(c).CanViewScans() {
		httperr.Forbidden(c, "forbidden", "Forbidden.")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_scan_id", "Scan id must be numeric.")
		return
	}

	if err := h.del.Execute(c.Request.Context(), uint(id)); err != nil {
		if httperr.IsBusiness(err, "scan_not_found") {
			httperr.NotFound(c, "scan_not_found", "Scan not found.")
			return
		}
		httperr.Internal(c, "failed_to_delete_scan", "Error deleting scan.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Scan deleted successfully."})
}

// ======================================================
// DELETE (all)
// ======================================================

func (h *ScanHandler) Clear(c *gin.Context) {
	if !callerRole(c).CanViewScans() {
		httperr.Forbidden(c, "forbidden", "You do not have permission to clear all scans.")
		return
	}

	cleared, err := h.clear.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_clear_scans", "Error clearing scans.")
		return
	}

	httpresp.OK(c, gin.H{
		"cleared": cleared,
		"message": "All scans cleared successfully.",
	})
}
