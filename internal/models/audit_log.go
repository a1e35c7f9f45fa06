package models

import (
	"gorm.io/datatypes"
)

// AuditLog is an append-only record of every mutating operation.
// OldValues is absent for creates, NewValues for deletes.
type AuditLog struct {
	BaseModel
	EntityType string         `gorm:"not null;index:idx_audit_entity" json:"entityType"`
	EntityID   string         `gorm:"not null;index:idx_audit_entity" json:"entityId"`
	Action     AuditAction    `gorm:"type:varchar(20);not null" json:"action"`
	UserID     string         `gorm:"type:uuid;not null;index" json:"userId"`
	OldValues  datatypes.JSON `gorm:"type:jsonb" json:"oldValues,omitempty"`
	NewValues  datatypes.JSON `gorm:"type:jsonb" json:"newValues,omitempty"`
	IPAddress  string         `json:"ipAddress,omitempty"`
	UserAgent  string         `json:"userAgent,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
