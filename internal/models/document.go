package models

import (
	"gorm.io/datatypes"
)

type Document struct {
	BaseModel
	ProductID    string       `gorm:"type:uuid;not null;index" json:"productId"`
	DocumentType DocumentType `gorm:"type:varchar(20);not null" json:"documentType"`
	Name         string       `gorm:"not null" json:"name"`
	Version      string       `json:"version"`
	// Relative path under the storage root:
	// {manufacturerId}/{productId}/{filename}.
	FileURL      string         `gorm:"not null" json:"fileUrl"`
	FileSize     int64          `json:"fileSize"`
	MimeType     string         `json:"mimeType"`
	Status       DocumentStatus `gorm:"type:varchar(20);default:'pending_review';index" json:"status"`
	UploadedByID string         `gorm:"type:uuid;not null" json:"uploadedById"`
	ReviewedByID *string        `gorm:"type:uuid" json:"reviewedById,omitempty"`
	ReviewNotes  string         `json:"reviewNotes"`
	Metadata     datatypes.JSON `gorm:"type:jsonb" json:"metadata"`

	// Relations
	Product    *Product          `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	UploadedBy *User             `gorm:"foreignKey:UploadedByID" json:"uploadedBy,omitempty"`
	ReviewedBy *User             `gorm:"foreignKey:ReviewedByID" json:"reviewedBy,omitempty"`
	Versions   []DocumentVersion `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE" json:"versions,omitempty"`
}

// DocumentVersion archives the file reference a document pointed at before
// it was replaced. Append-only; version numbers are never reused.
type DocumentVersion struct {
	BaseModel
	DocumentID     string `gorm:"type:uuid;not null;index" json:"documentId"`
	VersionNumber  int    `gorm:"not null" json:"versionNumber"`
	FileURL        string `gorm:"not null" json:"fileUrl"`
	ChangesSummary string `json:"changesSummary"`
	CreatedByID    string `gorm:"type:uuid;not null" json:"createdById"`
}
