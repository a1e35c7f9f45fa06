package services

import (
	"time"

	"arportal/internal/auth"
	"arportal/internal/email"
	"arportal/internal/repositories"
	"arportal/internal/storage"
)

// ServiceContainer wires every service of the application.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	ManufacturerService ManufacturerService
	ProductService      ProductService
	DocumentService     DocumentService
	CertificateService  CertificateService
	SubmissionService   SubmissionService
	DashboardService    DashboardService
	AuditService        AuditService

	Storage       storage.Storage
	EmailProvider email.Provider
}

// ContainerConfig carries the non-repository inputs the services need.
type ContainerConfig struct {
	Tokens          *auth.TokenManager
	RefreshTTL      time.Duration
	ExpiryLookAhead time.Duration
	Storage         storage.Storage
	EmailProvider   email.Provider
}

func NewServiceContainer(cfg ContainerConfig) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	manufacturerRepo := repositories.NewManufacturerRepository()
	productRepo := repositories.NewProductRepository()
	documentRepo := repositories.NewDocumentRepository()
	certificateRepo := repositories.NewCertificateRepository()
	submissionRepo := repositories.NewSubmissionRepository()
	auditRepo := repositories.NewAuditLogRepository()

	auditService := NewAuditService(auditRepo)

	return &ServiceContainer{
		AuthService:         NewAuthService(userRepo, manufacturerRepo, cfg.Tokens, cfg.RefreshTTL, auditService),
		UserService:         NewUserService(userRepo, auditService),
		ManufacturerService: NewManufacturerService(manufacturerRepo, auditService),
		ProductService:      NewProductService(productRepo, auditService),
		DocumentService:     NewDocumentService(documentRepo, productRepo, cfg.Storage, auditService),
		CertificateService:  NewCertificateService(certificateRepo, manufacturerRepo, cfg.ExpiryLookAhead, auditService),
		SubmissionService:   NewSubmissionService(submissionRepo, productRepo, auditService),
		DashboardService:    NewDashboardService(productRepo, documentRepo),
		AuditService:        auditService,
		Storage:             cfg.Storage,
		EmailProvider:       cfg.EmailProvider,
	}
}
