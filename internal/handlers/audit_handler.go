package handlers

import (
	"arportal/internal/services"
	"arportal/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	*BaseHandler
	auditService services.AuditService
}

func NewAuditHandler(base *BaseHandler, auditService services.AuditService) *AuditHandler {
	return &AuditHandler{BaseHandler: base, auditService: auditService}
}

// List handles GET /audit-logs. Manager tier and above.
func (h *AuditHandler) List(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	var q dto.AuditLogQuery
	if !h.BindQuery(c, &q) {
		return
	}

	entries, total, err := h.auditService.List(h.GetDB(c), claims, &q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondList(c, entries, total, q.PageQuery)
}
