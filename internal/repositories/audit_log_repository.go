package repositories

import (
	"arportal/internal/models"

	"gorm.io/gorm"
)

type AuditLogFilter struct {
	EntityType string
	EntityID   string
	UserID     string
	Limit      int
	Offset     int
}

type AuditLogRepository interface {
	Create(db *gorm.DB, entry *models.AuditLog) error
	FindWithFilter(db *gorm.DB, f AuditLogFilter) ([]models.AuditLog, int64, error)
}

type AuditLogRepositoryImpl struct{}

func NewAuditLogRepository() AuditLogRepository {
	return &AuditLogRepositoryImpl{}
}

func (r *AuditLogRepositoryImpl) Create(db *gorm.DB, entry *models.AuditLog) error {
	return db.Create(entry).Error
}

func (r *AuditLogRepositoryImpl) FindWithFilter(db *gorm.DB, f AuditLogFilter) ([]models.AuditLog, int64, error) {
	query := db.Model(&models.AuditLog{})
	if f.EntityType != "" {
		query = query.Where("entity_type = ?", f.EntityType)
	}
	if f.EntityID != "" {
		query = query.Where("entity_id = ?", f.EntityID)
	}
	if f.UserID != "" {
		query = query.Where("user_id = ?", f.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.AuditLog
	err := query.Preload("User").
		Order("created_at DESC").
		Limit(f.Limit).Offset(f.Offset).
		Find(&entries).Error
	return entries, total, err
}
