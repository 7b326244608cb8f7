package models

import "time"

type Scan struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientName string `gorm:"size:100;not null" json:"patientName"`
	PatientID   string `gorm:"size:100;not null" json:"patientId"`

	ScanType string `gorm:"size:20;not null" json:"scanType"`
	Region   string `gorm:"size:20;not null" json:"region"`

	// Set once by the upload pipeline after the storage write succeeds.
	ImageURL string `gorm:"size:512;not null" json:"imageUrl"`

	// Client-supplied wall clock; the canonical ordering key for listings.
	UploadDate time.Time `gorm:"index;not null" json:"uploadDate"`

	CreatedAt time.Time `json:"created_at"`
}
