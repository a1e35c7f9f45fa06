package handlers

import (
	"fmt"
	"net/http"

	"arportal/internal/services"
	"arportal/internal/services/dto"
	"arportal/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	*BaseHandler
	documentService services.DocumentService
}

func NewDocumentHandler(base *BaseHandler, documentService services.DocumentService) *DocumentHandler {
	return &DocumentHandler{BaseHandler: base, documentService: documentService}
}

// Upload handles POST /documents (multipart).
func (h *DocumentHandler) Upload(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	var req dto.UploadDocumentRequest
	if !h.BindForm(c, &req) {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("No file provided"))
		return
	}
	req.File = file

	doc, err := h.documentService.Upload(c.Request.Context(), h.GetDB(c), claims, &req, h.RequestMeta(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// Get handles GET /documents/:id.
func (h *DocumentHandler) Get(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	doc, err := h.documentService.GetByID(h.GetDB(c), claims, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// List handles GET /documents.
func (h *DocumentHandler) List(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	var q dto.DocumentListQuery
	if !h.BindQuery(c, &q) {
		return
	}

	documents, total, err := h.documentService.List(h.GetDB(c), claims, &q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondList(c, documents, total, q.PageQuery)
}

// Update handles PUT /documents/:id (name/version metadata only).
func (h *DocumentHandler) Update(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	var req dto.UpdateDocumentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.documentService.Update(h.GetDB(c), claims, c.Param("id"), &req, h.RequestMeta(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Review handles POST /documents/:id/status.
func (h *DocumentHandler) Review(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	var req dto.ReviewDocumentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.documentService.Review(h.GetDB(c), claims, c.Param("id"), &req, h.RequestMeta(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Replace handles POST /documents/:id/replace (multipart). The previous file
// reference is archived as a version row.
func (h *DocumentHandler) Replace(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	var req dto.ReplaceDocumentRequest
	if !h.BindForm(c, &req) {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("No file provided"))
		return
	}
	req.File = file

	doc, err := h.documentService.Replace(c.Request.Context(), h.GetDB(c), claims, c.Param("id"), &req, h.RequestMeta(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Delete handles DELETE /documents/:id.
func (h *DocumentHandler) Delete(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), h.GetDB(c), claims, c.Param("id"), h.RequestMeta(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}

// Download handles GET /documents/:id/download. Streams the blob with the
// recorded MIME type and the stored display name.
func (h *DocumentHandler) Download(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	doc, reader, err := h.documentService.Download(c.Request.Context(), h.GetDB(c), claims, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Name))
	c.DataFromReader(http.StatusOK, doc.FileSize, doc.MimeType, reader, nil)
}

// ListVersions handles GET /documents/:id/versions.
func (h *DocumentHandler) ListVersions(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	versions, err := h.documentService.ListVersions(h.GetDB(c), claims, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": versions})
}
