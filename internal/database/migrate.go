package database

import (
	"arportal/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema. Order respects foreign keys.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Manufacturer{},
		&models.User{},
		&models.RefreshToken{},
		&models.Product{},
		&models.Document{},
		&models.DocumentVersion{},
		&models.Certificate{},
		&models.Submission{},
		&models.AuditLog{},
	)
}
