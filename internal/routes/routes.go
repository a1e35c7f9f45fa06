package routes

import (
	"arportal/internal/auth"
	"arportal/internal/handlers"
	"arportal/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every HTTP route. Only register and login are open;
// everything else sits behind the auth middleware, with permission gates on
// top where the role table requires them. Tenant scoping happens inside the
// services.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, tokens *auth.TokenManager) {
	api := router.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/refresh", h.Auth.Refresh)
		authGroup.POST("/logout", h.Auth.Logout)
	}

	secured := api.Group("")
	secured.Use(middleware.AuthMiddleware(tokens))

	products := secured.Group("/products")
	{
		products.GET("", middleware.RequirePermission("products:read"), h.Product.List)
		products.POST("", middleware.RequirePermission("products:write"), h.Product.Create)
		products.GET("/:id", middleware.RequirePermission("products:read"), h.Product.Get)
		products.PUT("/:id", middleware.RequirePermission("products:write"), h.Product.Update)
		products.DELETE("/:id", middleware.RequirePermission("products:write"), h.Product.Archive)
		products.GET("/:id/documents", middleware.RequirePermission("documents:read"), h.Product.ListDocuments)
	}

	documents := secured.Group("/documents")
	{
		documents.GET("", middleware.RequirePermission("documents:read"), h.Document.List)
		documents.POST("", middleware.RequirePermission("documents:write"), h.Document.Upload)
		documents.GET("/:id", middleware.RequirePermission("documents:read"), h.Document.Get)
		documents.PUT("/:id", middleware.RequirePermission("documents:write"), h.Document.Update)
		documents.DELETE("/:id", middleware.RequirePermission("documents:review"), h.Document.Delete)
		documents.POST("/:id/status", middleware.RequirePermission("documents:review"), h.Document.Review)
		documents.POST("/:id/replace", middleware.RequirePermission("documents:write"), h.Document.Replace)
		documents.GET("/:id/download", middleware.RequirePermission("documents:read"), h.Document.Download)
		documents.GET("/:id/versions", middleware.RequirePermission("documents:read"), h.Document.ListVersions)
	}

	manufacturers := secured.Group("/manufacturers")
	{
		// Customers pass through here too: the tenant scope narrows the
		// list to their own manufacturer.
		manufacturers.GET("", h.Manufacturer.List)
		manufacturers.POST("", h.Manufacturer.Create)
		manufacturers.GET("/:id", h.Manufacturer.Get)
		manufacturers.PUT("/:id", h.Manufacturer.Update)
		manufacturers.GET("/:id/certificates", middleware.RequirePermission("certificates:read"), h.Manufacturer.ListCertificates)
		manufacturers.POST("/:id/certificates", middleware.RequirePermission("certificates:write"), h.Manufacturer.CreateCertificate)
	}

	certificates := secured.Group("/certificates")
	{
		certificates.GET("", middleware.RequirePermission("certificates:read"), h.Certificate.List)
		certificates.GET("/:id", middleware.RequirePermission("certificates:read"), h.Certificate.Get)
		certificates.PUT("/:id", middleware.RequirePermission("certificates:write"), h.Certificate.Update)
		certificates.DELETE("/:id", middleware.RequirePermission("certificates:write"), h.Certificate.Delete)
	}

	submissions := secured.Group("/submissions")
	{
		submissions.GET("", middleware.RequirePermission("submissions:read"), h.Submission.List)
		submissions.POST("", middleware.RequirePermission("submissions:write"), h.Submission.Create)
		submissions.GET("/:id", middleware.RequirePermission("submissions:read"), h.Submission.Get)
		submissions.POST("/:id/register", middleware.RequirePermission("submissions:write"), h.Submission.Register)
	}

	secured.GET("/dashboard/stats", h.Dashboard.Stats)

	// Manager tier and above; enforced in the service.
	secured.GET("/audit-logs", h.Audit.List)

	users := secured.Group("/users")
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.POST("/me/password", h.User.ChangePassword)
	}
}
