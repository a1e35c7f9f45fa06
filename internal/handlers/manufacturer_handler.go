package handlers

import (
	"net/http"

	"arportal/internal/services"
	"arportal/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ManufacturerHandler struct {
	*BaseHandler
	manufacturerService services.ManufacturerService
	certificateService  services.CertificateService
}

func NewManufacturerHandler(base *BaseHandler, manufacturerService services.ManufacturerService, certificateService services.CertificateService) *ManufacturerHandler {
	return &ManufacturerHandler{
		BaseHandler:         base,
		manufacturerService: manufacturerService,
		certificateService:  certificateService,
	}
}

// Create handles POST /manufacturers. Manager or admin only.
func (h *ManufacturerHandler) Create(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	var req dto.CreateManufacturerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	m, err := h.manufacturerService.Create(h.GetDB(c), claims, &req, h.RequestMeta(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// Get handles GET /manufacturers/:id. Customers see only their own tenant.
func (h *ManufacturerHandler) Get(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	m, err := h.manufacturerService.GetByID(h.GetDB(c), claims, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// List handles GET /manufacturers.
func (h *ManufacturerHandler) List(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	var q dto.ManufacturerListQuery
	if !h.BindQuery(c, &q) {
		return
	}

	manufacturers, total, err := h.manufacturerService.List(h.GetDB(c), claims, &q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondList(c, manufacturers, total, q.PageQuery)
}

// Update handles PUT /manufacturers/:id. Manager or admin only.
func (h *ManufacturerHandler) Update(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	var req dto.UpdateManufacturerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	m, err := h.manufacturerService.Update(h.GetDB(c), claims, c.Param("id"), &req, h.RequestMeta(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// ListCertificates handles GET /manufacturers/:id/certificates.
func (h *ManufacturerHandler) ListCertificates(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	var q dto.CertificateListQuery
	if !h.BindQuery(c, &q) {
		return
	}
	q.ManufacturerID = c.Param("id")

	certificates, total, err := h.certificateService.List(h.GetDB(c), claims, &q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondList(c, certificates, total, q.PageQuery)
}

// CreateCertificate handles POST /manufacturers/:id/certificates.
func (h *ManufacturerHandler) CreateCertificate(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	var req dto.CreateCertificateRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cert, err := h.certificateService.Create(h.GetDB(c), claims, c.Param("id"), &req, h.RequestMeta(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cert)
}
