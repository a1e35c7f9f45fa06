package services

import (
	"time"

	"arportal/internal/auth"
	"arportal/internal/models"
	"arportal/internal/repositories"
	"arportal/internal/scope"
	"arportal/internal/services/dto"
	"arportal/pkg/apperrors"

	"gorm.io/gorm"
)

// DefaultExpiryLookAhead is the window within which a certificate counts as
// expiring_soon.
const DefaultExpiryLookAhead = 28 * 24 * time.Hour

type CertificateService interface {
	Create(db *gorm.DB, claims *auth.Claims, manufacturerID string, req *dto.CreateCertificateRequest, meta RequestMeta) (*models.Certificate, error)
	GetByID(db *gorm.DB, claims *auth.Claims, id string) (*models.Certificate, error)
	List(db *gorm.DB, claims *auth.Claims, q *dto.CertificateListQuery) ([]models.Certificate, int64, error)
	Update(db *gorm.DB, claims *auth.Claims, id string, req *dto.UpdateCertificateRequest, meta RequestMeta) (*models.Certificate, error)
	Delete(db *gorm.DB, claims *auth.Claims, id string, meta RequestMeta) error
}

type CertificateServiceImpl struct {
	certificateRepo  repositories.CertificateRepository
	manufacturerRepo repositories.ManufacturerRepository
	lookAhead        time.Duration
	auditService     AuditService
}

func NewCertificateService(
	certificateRepo repositories.CertificateRepository,
	manufacturerRepo repositories.ManufacturerRepository,
	lookAhead time.Duration,
	auditService AuditService,
) CertificateService {
	if lookAhead <= 0 {
		lookAhead = DefaultExpiryLookAhead
	}
	return &CertificateServiceImpl{
		certificateRepo:  certificateRepo,
		manufacturerRepo: manufacturerRepo,
		lookAhead:        lookAhead,
		auditService:     auditService,
	}
}

func (s *CertificateServiceImpl) Create(db *gorm.DB, claims *auth.Claims, manufacturerID string, req *dto.CreateCertificateRequest, meta RequestMeta) (*models.Certificate, error) {
	if !auth.HasPermission(claims.Role, "certificates:write") {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if _, err := s.manufacturerRepo.FindByID(db, manufacturerID); err != nil {
		if apperrors.Is(err, repositories.ErrManufacturerNotFound) {
			return nil, apperrors.NewNotFoundError("Manufacturer not found")
		}
		return nil, apperrors.DatabaseError(err)
	}

	issueDate, err := time.Parse("2006-01-02", req.IssueDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid issueDate")
	}
	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid expiryDate")
	}
	if !expiryDate.After(issueDate) {
		return nil, apperrors.NewBadRequestError("expiryDate must be after issueDate")
	}

	c := &models.Certificate{
		ManufacturerID:    manufacturerID,
		CertificateType:   models.CertificateType(req.CertificateType),
		Issuer:            req.Issuer,
		CertificateNumber: req.CertificateNumber,
		IssueDate:         issueDate,
		ExpiryDate:        expiryDate,
	}
	c.Status = c.DeriveStatus(time.Now(), s.lookAhead)

	if err := s.certificateRepo.Create(db, c); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.auditService.Record(db, meta, models.AuditActionCreate, "certificate", c.ID, nil, c)
	return c, nil
}

func (s *CertificateServiceImpl) GetByID(db *gorm.DB, claims *auth.Claims, id string) (*models.Certificate, error) {
	c, err := s.findAccessible(db, claims, id)
	if err != nil {
		return nil, err
	}
	c.Status = c.DeriveStatus(time.Now(), s.lookAhead)
	return c, nil
}

func (s *CertificateServiceImpl) List(db *gorm.DB, claims *auth.Claims, q *dto.CertificateListQuery) ([]models.Certificate, int64, error) {
	tenantScope, err := scope.ForCertificates(claims, q.ManufacturerID)
	if err != nil {
		return nil, 0, err
	}

	q.Normalize()
	filter := repositories.CertificateFilter{
		CertificateType: models.CertificateType(q.CertificateType),
		Status:          models.CertificateStatus(q.Status),
		Limit:           q.Limit,
		Offset:          q.Offset(),
	}
	if auth.IsStaffRole(claims.Role) {
		filter.ManufacturerID = q.ManufacturerID
	}

	certificates, total, err := s.certificateRepo.FindAll(db, filter, tenantScope)
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}

	// Status is derived, not trusted from the stored column.
	now := time.Now()
	for i := range certificates {
		certificates[i].Status = certificates[i].DeriveStatus(now, s.lookAhead)
	}
	return certificates, total, nil
}

func (s *CertificateServiceImpl) Update(db *gorm.DB, claims *auth.Claims, id string, req *dto.UpdateCertificateRequest, meta RequestMeta) (*models.Certificate, error) {
	if !auth.HasPermission(claims.Role, "certificates:write") {
		return nil, apperrors.ErrInsufficientPermissions
	}

	c, err := s.findAccessible(db, claims, id)
	if err != nil {
		return nil, err
	}
	before := *c

	if req.Issuer != nil {
		c.Issuer = *req.Issuer
	}
	if req.CertificateNumber != nil {
		c.CertificateNumber = *req.CertificateNumber
	}
	if req.IssueDate != nil {
		issueDate, err := time.Parse("2006-01-02", *req.IssueDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid issueDate")
		}
		c.IssueDate = issueDate
	}
	if req.ExpiryDate != nil {
		expiryDate, err := time.Parse("2006-01-02", *req.ExpiryDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid expiryDate")
		}
		c.ExpiryDate = expiryDate
		// A moved expiry restarts the alert cycle.
		c.ExpiringSoonAlertSentAt = nil
		c.ExpiryAlertSentAt = nil
	}
	c.Status = c.DeriveStatus(time.Now(), s.lookAhead)

	if err := s.certificateRepo.Update(db, c); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.auditService.Record(db, meta, models.AuditActionUpdate, "certificate", c.ID, &before, c)
	return c, nil
}

func (s *CertificateServiceImpl) Delete(db *gorm.DB, claims *auth.Claims, id string, meta RequestMeta) error {
	if !auth.HasPermission(claims.Role, "certificates:write") {
		return apperrors.ErrInsufficientPermissions
	}

	c, err := s.findAccessible(db, claims, id)
	if err != nil {
		return err
	}

	if err := s.certificateRepo.Delete(db, c.ID); err != nil {
		return apperrors.DatabaseError(err)
	}

	s.auditService.Record(db, meta, models.AuditActionDelete, "certificate", c.ID, c, nil)
	return nil
}

func (s *CertificateServiceImpl) findAccessible(db *gorm.DB, claims *auth.Claims, id string) (*models.Certificate, error) {
	c, err := s.certificateRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCertificateNotFound) {
			return nil, apperrors.NewNotFoundError("Certificate not found")
		}
		return nil, apperrors.DatabaseError(err)
	}
	if err := scope.CheckManufacturerAccess(claims, c.ManufacturerID); err != nil {
		return nil, err
	}
	return c, nil
}
