package handlers

import (
	"arportal/internal/services"
	"arportal/internal/validator"
)

// AppHandlers groups every HTTP handler of the application.
type AppHandlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Manufacturer *ManufacturerHandler
	Product      *ProductHandler
	Document     *DocumentHandler
	Certificate  *CertificateHandler
	Submission   *SubmissionHandler
	Dashboard    *DashboardHandler
	Audit        *AuditHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:         NewAuthHandler(base, container.AuthService),
		User:         NewUserHandler(base, container.UserService),
		Manufacturer: NewManufacturerHandler(base, container.ManufacturerService, container.CertificateService),
		Product:      NewProductHandler(base, container.ProductService, container.DocumentService),
		Document:     NewDocumentHandler(base, container.DocumentService),
		Certificate:  NewCertificateHandler(base, container.CertificateService),
		Submission:   NewSubmissionHandler(base, container.SubmissionService),
		Dashboard:    NewDashboardHandler(base, container.DashboardService),
		Audit:        NewAuditHandler(base, container.AuditService),
	}
}
