package handlers

import (
	"net/http"

	"arportal/internal/services"
	"arportal/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	*BaseHandler
	productService  services.ProductService
	documentService services.DocumentService
}

func NewProductHandler(base *BaseHandler, productService services.ProductService, documentService services.DocumentService) *ProductHandler {
	return &ProductHandler{
		BaseHandler:     base,
		productService:  productService,
		documentService: documentService,
	}
}

// Create handles POST /products. Status is always forced to draft.
func (h *ProductHandler) Create(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	var req dto.CreateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	product, err := h.productService.Create(h.GetDB(c), claims, &req, h.RequestMeta(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// Get handles GET /products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	product, err := h.productService.GetByID(h.GetDB(c), claims, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// List handles GET /products.
func (h *ProductHandler) List(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	var q dto.ProductListQuery
	if !h.BindQuery(c, &q) {
		return
	}

	products, total, err := h.productService.List(h.GetDB(c), claims, &q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondList(c, products, total, q.PageQuery)
}

// Update handles PUT /products/:id. Never reaches discontinued.
func (h *ProductHandler) Update(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	product, err := h.productService.Update(h.GetDB(c), claims, c.Param("id"), &req, h.RequestMeta(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Archive handles DELETE /products/:id: one-way move to discontinued.
func (h *ProductHandler) Archive(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	product, err := h.productService.Archive(h.GetDB(c), claims, c.Param("id"), h.RequestMeta(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// ListDocuments handles GET /products/:id/documents.
func (h *ProductHandler) ListDocuments(c *gin.Context) {
	claims, ok := h.GetClaims(c)
	if !ok {
		return
	}

	var q dto.DocumentListQuery
	if !h.BindQuery(c, &q) {
		return
	}
	q.ProductID = c.Param("id")

	documents, total, err := h.documentService.List(h.GetDB(c), claims, &q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondList(c, documents, total, q.PageQuery)
}
