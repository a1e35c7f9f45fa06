package dto

type AuditLogQuery struct {
	PageQuery
	EntityType string `form:"entityType" validate:"omitempty,oneof=user manufacturer product document certificate submission"`
	EntityID   string `form:"entityId" validate:"omitempty,uuid"`
	UserID     string `form:"userId" validate:"omitempty,uuid"`
}
