package handlers

import (
	"net/http"

	"arportal/internal/services"
	"arportal/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	*BaseHandler
	submissionService services.SubmissionService
}

func NewSubmissionHandler(base *BaseHandler, submissionService services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{BaseHandler: base, submissionService: submissionService}
}

// Create handles POST /submissions.
func (h *SubmissionHandler) Create(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	var req dto.CreateSubmissionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	sub, err := h.submissionService.Create(h.GetDB(c), claims, &req, h.RequestMeta(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// Get handles GET /submissions/:id.
func (h *SubmissionHandler) Get(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	sub, err := h.submissionService.GetByID(h.GetDB(c), claims, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// List handles GET /submissions.
func (h *SubmissionHandler) List(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	var q dto.SubmissionListQuery
	if !h.BindQuery(c, &q) {
		return
	}

	submissions, total, err := h.submissionService.List(h.GetDB(c), claims, &q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondList(c, submissions, total, q.PageQuery)
}

// Register handles POST /submissions/:id/register: records the authority's
// registration number and moves the product to registered.
func (h *SubmissionHandler) Register(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	var req dto.RegisterSubmissionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	sub, err := h.submissionService.Register(h.GetDB(c), claims, c.Param("id"), &req, h.RequestMeta(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}
