package handlers

import (
	"net/http"

	"arportal/internal/services"
	"arportal/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CertificateHandler struct {
	*BaseHandler
	certificateService services.CertificateService
}

func NewCertificateHandler(base *BaseHandler, certificateService services.CertificateService) *CertificateHandler {
	return &CertificateHandler{BaseHandler: base, certificateService: certificateService}
}

// List handles GET /certificates. Status is derived on read.
func (h *CertificateHandler) List(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	var q dto.CertificateListQuery
	if !h.BindQuery(c, &q) {
		return
	}

	certificates, total, err := h.certificateService.List(h.GetDB(c), claims, &q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondList(c, certificates, total, q.PageQuery)
}

// Get handles GET /certificates/:id.
func (h *CertificateHandler) Get(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	cert, err := h.certificateService.GetByID(h.GetDB(c), claims, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cert)
}

// Update handles PUT /certificates/:id.
func (h *CertificateHandler) Update(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	var req dto.UpdateCertificateRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cert, err := h.certificateService.Update(h.GetDB(c), claims, c.Param("id"), &req, h.RequestMeta(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cert)
}

// Delete handles DELETE /certificates/:id.
func (h *CertificateHandler) Delete(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	if err := h.certificateService.Delete(h.GetDB(c), claims, c.Param("id"), h.RequestMeta(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Certificate deleted"})
}
