package handlers

import (
	"fmt"
	"net/http"

	"arportal/internal/auth"
	"arportal/internal/logger"
	"arportal/internal/services"
	"arportal/internal/services/dto"
	"arportal/internal/validator"
	"arportal/pkg/apperrors"
	"arportal/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ClaimsContextKey is where the auth middleware stores the parsed claims.
const ClaimsContextKey = "claims"

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// GetDB pulls the request-scoped *gorm.DB (pool or transaction) that the DB
// middleware planted. Every handler that touches a service goes through it.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	val, ok := c.Get(string(contextkeys.DBContextKey))
	if !ok {
		logger.CtxError(c.Request.Context(), "db key not found in context")
		panic("DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "db in context has wrong type", "type", fmt.Sprintf("%T", val))
		panic("db in context has incorrect type")
	}
	return db
}

// GetClaims returns the authenticated caller's claims. A missing entry means
// the route skipped the auth middleware, which is a wiring bug.
func (h *BaseHandler) GetClaims(c *gin.Context) (*auth.Claims, bool) {
	val, exists := c.Get(ClaimsContextKey)
	if !exists {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return nil, false
	}

	claims, ok := val.(*auth.Claims)
	if !ok {
		apperrors.HandleError(c, apperrors.InternalError(fmt.Errorf("claims in context have type %T", val)))
		return nil, false
	}
	return claims, true
}

// RequestMeta captures caller attribution for audit rows.
func (h *BaseHandler) RequestMeta(c *gin.Context) services.RequestMeta {
	meta := services.RequestMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	if claims, ok := c.Get(ClaimsContextKey); ok {
		if parsed, ok := claims.(*auth.Claims); ok {
			meta.UserID = parsed.UserID
		}
	}
	return meta
}

func (h *BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind request body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) BindQuery(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind query params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) BindForm(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind form", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid form data: "+err.Error()))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "service error",
			"error", appErr.Message,
			"code", string(appErr.Code),
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
		return
	}

	logger.CtxWithError(ctx, "internal server error", err, "path", c.Request.URL.Path)
	apperrors.HandleError(c, apperrors.InternalError(err))
}

// RespondList writes the standard pagination envelope.
func (h *BaseHandler) RespondList(c *gin.Context, items interface{}, total int64, q dto.PageQuery) {
	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		Pagination: dto.NewPagination(total, q),
	})
}
