package services

import (
	"encoding/json"

	"arportal/internal/auth"
	"arportal/internal/logger"
	"arportal/internal/models"
	"arportal/internal/repositories"
	"arportal/internal/services/dto"
	"arportal/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RequestMeta carries request-level attribution for audit rows.
type RequestMeta struct {
	UserID    string
	IPAddress string
	UserAgent string
}

// AuditService appends audit rows after mutations. Writes are best-effort:
// a failed append is logged and never fails or rolls back the operation it
// describes.
type AuditService interface {
	Record(db *gorm.DB, meta RequestMeta, action models.AuditAction, entityType, entityID string, oldValues, newValues interface{})
	List(db *gorm.DB, claims *auth.Claims, q *dto.AuditLogQuery) ([]models.AuditLog, int64, error)
}

type AuditServiceImpl struct {
	auditRepo repositories.AuditLogRepository
}

func NewAuditService(auditRepo repositories.AuditLogRepository) AuditService {
	return &AuditServiceImpl{auditRepo: auditRepo}
}

func (s *AuditServiceImpl) Record(db *gorm.DB, meta RequestMeta, action models.AuditAction, entityType, entityID string, oldValues, newValues interface{}) {
	entry := &models.AuditLog{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		UserID:     meta.UserID,
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
	}
	entry.OldValues = marshalSnapshot(oldValues)
	entry.NewValues = marshalSnapshot(newValues)

	if err := s.auditRepo.Create(db, entry); err != nil {
		logger.Error("audit log write failed",
			"entity_type", entityType,
			"entity_id", entityID,
			"action", string(action),
			"error", err)
	}
}

// List exposes the audit trail to manager tier and above.
func (s *AuditServiceImpl) List(db *gorm.DB, claims *auth.Claims, q *dto.AuditLogQuery) ([]models.AuditLog, int64, error) {
	if !auth.CanManageManufacturers(claims.Role) {
		return nil, 0, apperrors.ErrInsufficientPermissions
	}

	q.Normalize()
	entries, total, err := s.auditRepo.FindWithFilter(db, repositories.AuditLogFilter{
		EntityType: q.EntityType,
		EntityID:   q.EntityID,
		UserID:     q.UserID,
		Limit:      q.Limit,
		Offset:     q.Offset(),
	})
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}
	return entries, total, nil
}

func marshalSnapshot(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		logger.Warn("audit snapshot marshal failed", "error", err)
		return nil
	}
	return data
}
