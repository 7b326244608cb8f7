package scan

import "github.com/oralvis-health/scan-api/internal/httperr"

// ===============================
// Scan Type
// ===============================

type Type string

const (
	// TypeRGB is the only capture type current scanners produce.
	TypeRGB Type = "RGB"
)

func ParseType(raw string) (Type, error) {
	switch Type(raw) {
	case TypeRGB:
		return Type(raw), nil
	default:
		return "", httperr.ErrBusiness("invalid_scan_type")
	}
}

// ===============================
// Mouth Region
// ===============================

type Region string

const (
	RegionFrontal   Region = "Frontal"
	RegionUpperArch Region = "UpperArch"
	RegionLowerArch Region = "LowerArch"
)

func ParseRegion(raw string) (Region, error) {
	switch Region(raw) {
	case RegionFrontal, RegionUpperArch, RegionLowerArch:
		return Region(raw), nil
	default:
		return "", httperr.ErrBusiness("invalid_region")
	}
}

// UploadDateLayout is the wall-clock format the technician's client sends.
// The client value, not server receipt time, orders the scan listing.
const UploadDateLayout = "2006-01-02 15:04:05"
