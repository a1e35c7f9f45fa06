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

type SubmissionService interface {
	Create(db *gorm.DB, claims *auth.Claims, req *dto.CreateSubmissionRequest, meta RequestMeta) (*models.Submission, error)
	GetByID(db *gorm.DB, claims *auth.Claims, id string) (*models.Submission, error)
	List(db *gorm.DB, claims *auth.Claims, q *dto.SubmissionListQuery) ([]models.Submission, int64, error)
	Register(db *gorm.DB, claims *auth.Claims, id string, req *dto.RegisterSubmissionRequest, meta RequestMeta) (*models.Submission, error)
}

type SubmissionServiceImpl struct {
	submissionRepo repositories.SubmissionRepository
	productRepo    repositories.ProductRepository
	auditService   AuditService
}

func NewSubmissionService(
	submissionRepo repositories.SubmissionRepository,
	productRepo repositories.ProductRepository,
	auditService AuditService,
) SubmissionService {
	return &SubmissionServiceImpl{
		submissionRepo: submissionRepo,
		productRepo:    productRepo,
		auditService:   auditService,
	}
}

// Create files a registration submission for a product. A draft product moves
// to under_review once its first submission exists.
func (s *SubmissionServiceImpl) Create(db *gorm.DB, claims *auth.Claims, req *dto.CreateSubmissionRequest, meta RequestMeta) (*models.Submission, error) {
	if !auth.HasPermission(claims.Role, "submissions:write") {
		return nil, apperrors.ErrInsufficientPermissions
	}

	product, err := s.productRepo.FindByID(db, req.ProductID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return nil, apperrors.NewNotFoundError("Product not found")
		}
		return nil, apperrors.DatabaseError(err)
	}
	if err := scope.CheckManufacturerAccess(claims, product.ManufacturerID); err != nil {
		return nil, err
	}
	if product.Archived() {
		return nil, apperrors.ErrProductArchived
	}

	sub := &models.Submission{
		ProductID:     product.ID,
		Authority:     models.Authority(req.Authority),
		Status:        models.SubmissionStatusSubmitted,
		SubmittedByID: claims.UserID,
		SubmittedAt:   time.Now(),
	}
	if err := s.submissionRepo.Create(db, sub); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	if product.Status == models.ProductStatusDraft {
		if err := s.productRepo.UpdateStatus(db, product.ID, models.ProductStatusUnderReview); err != nil {
			return nil, apperrors.DatabaseError(err)
		}
	}

	s.auditService.Record(db, meta, models.AuditActionCreate, "submission", sub.ID, nil, sub)
	return sub, nil
}

func (s *SubmissionServiceImpl) GetByID(db *gorm.DB, claims *auth.Claims, id string) (*models.Submission, error) {
	return s.findAccessible(db, claims, id)
}

func (s *SubmissionServiceImpl) List(db *gorm.DB, claims *auth.Claims, q *dto.SubmissionListQuery) ([]models.Submission, int64, error) {
	tenantScope, err := scope.ForSubmissions(claims, q.ManufacturerID)
	if err != nil {
		return nil, 0, err
	}

	q.Normalize()
	submissions, total, err := s.submissionRepo.FindAll(db, repositories.SubmissionFilter{
		ProductID: q.ProductID,
		Authority: models.Authority(q.Authority),
		Status:    models.SubmissionStatus(q.Status),
		Limit:     q.Limit,
		Offset:    q.Offset(),
	}, tenantScope)
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}
	return submissions, total, nil
}

// Register records the authority's registration number and completes the
// submission; the product becomes registered.
func (s *SubmissionServiceImpl) Register(db *gorm.DB, claims *auth.Claims, id string, req *dto.RegisterSubmissionRequest, meta RequestMeta) (*models.Submission, error) {
	if !auth.HasPermission(claims.Role, "submissions:write") {
		return nil, apperrors.ErrInsufficientPermissions
	}

	sub, err := s.findAccessible(db, claims, id)
	if err != nil {
		return nil, err
	}
	if sub.Status == models.SubmissionStatusRegistered {
		return nil, apperrors.ErrSubmissionRegistered
	}
	before := *sub

	now := time.Now()
	sub.Status = models.SubmissionStatusRegistered
	sub.RegistrationNumber = req.RegistrationNumber
	sub.RegisteredAt = &now

	if err := s.submissionRepo.Update(db, sub); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	if err := s.productRepo.UpdateStatus(db, sub.ProductID, models.ProductStatusRegistered); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.auditService.Record(db, meta, models.AuditActionStatusChange, "submission", sub.ID, &before, sub)
	return sub, nil
}

func (s *SubmissionServiceImpl) findAccessible(db *gorm.DB, claims *auth.Claims, id string) (*models.Submission, error) {
	sub, err := s.submissionRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSubmissionNotFound) {
			return nil, apperrors.NewNotFoundError("Submission not found")
		}
		return nil, apperrors.DatabaseError(err)
	}

	manufacturerID := ""
	if sub.Product != nil {
		manufacturerID = sub.Product.ManufacturerID
	}
	if err := scope.CheckManufacturerAccess(claims, manufacturerID); err != nil {
		return nil, err
	}
	return sub, nil
}
