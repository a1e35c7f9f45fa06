package services

import (
	"context"
	"io"
	"net/http"
	"path"

	"arportal/internal/auth"
	"arportal/internal/logger"
	"arportal/internal/models"
	"arportal/internal/repositories"
	"arportal/internal/scope"
	"arportal/internal/services/dto"
	"arportal/internal/storage"
	"arportal/internal/validator"
	"arportal/pkg/apperrors"

	"gorm.io/gorm"
)

type DocumentService interface {
	Upload(ctx context.Context, db *gorm.DB, claims *auth.Claims, req *dto.UploadDocumentRequest, meta RequestMeta) (*models.Document, error)
	GetByID(db *gorm.DB, claims *auth.Claims, id string) (*models.Document, error)
	List(db *gorm.DB, claims *auth.Claims, q *dto.DocumentListQuery) ([]models.Document, int64, error)
	Update(db *gorm.DB, claims *auth.Claims, id string, req *dto.UpdateDocumentRequest, meta RequestMeta) (*models.Document, error)
	Review(db *gorm.DB, claims *auth.Claims, id string, req *dto.ReviewDocumentRequest, meta RequestMeta) (*models.Document, error)
	Replace(ctx context.Context, db *gorm.DB, claims *auth.Claims, id string, req *dto.ReplaceDocumentRequest, meta RequestMeta) (*models.Document, error)
	Delete(ctx context.Context, db *gorm.DB, claims *auth.Claims, id string, meta RequestMeta) error
	Download(ctx context.Context, db *gorm.DB, claims *auth.Claims, id string) (*models.Document, io.ReadCloser, error)
	ListVersions(db *gorm.DB, claims *auth.Claims, id string) ([]models.DocumentVersion, error)
}

type DocumentServiceImpl struct {
	documentRepo repositories.DocumentRepository
	productRepo  repositories.ProductRepository
	store        storage.Storage
	auditService AuditService
}

func NewDocumentService(
	documentRepo repositories.DocumentRepository,
	productRepo repositories.ProductRepository,
	store storage.Storage,
	auditService AuditService,
) DocumentService {
	return &DocumentServiceImpl{
		documentRepo: documentRepo,
		productRepo:  productRepo,
		store:        store,
		auditService: auditService,
	}
}

// Upload stores the blob and creates the document row. The file is validated
// before anything touches the storage backend; status is always forced to
// pending_review.
func (s *DocumentServiceImpl) Upload(ctx context.Context, db *gorm.DB, claims *auth.Claims, req *dto.UploadDocumentRequest, meta RequestMeta) (*models.Document, error) {
	if req.File == nil {
		return nil, apperrors.NewBadRequestError("No file provided")
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

	contentType := req.File.Header.Get("Content-Type")
	if !validator.IsAllowedFileType(contentType) {
		return nil, apperrors.ErrInvalidFileType
	}
	if !validator.IsValidFileSize(req.File.Size) {
		return nil, apperrors.ErrFileTooLarge
	}

	src, err := req.File.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	key := path.Join(product.ManufacturerID, product.ID, storage.UniqueFilename(req.File.Filename))
	storedPath, err := s.store.Save(ctx, key, src, req.File.Size, contentType)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	doc := &models.Document{
		ProductID:    product.ID,
		DocumentType: models.DocumentType(req.DocumentType),
		Name:         req.Name,
		Version:      req.Version,
		FileURL:      storedPath,
		FileSize:     req.File.Size,
		MimeType:     contentType,
		Status:       models.DocumentStatusPendingReview,
		UploadedByID: claims.UserID,
	}
	if err := s.documentRepo.Create(db, doc); err != nil {
		// The blob is already on disk; clean it up so it does not leak.
		if delErr := s.store.Delete(ctx, storedPath); delErr != nil {
			logger.Warn("orphan blob cleanup failed", "path", storedPath, "error", delErr)
		}
		return nil, apperrors.DatabaseError(err)
	}

	s.auditService.Record(db, meta, models.AuditActionCreate, "document", doc.ID, nil, doc)
	return doc, nil
}

func (s *DocumentServiceImpl) GetByID(db *gorm.DB, claims *auth.Claims, id string) (*models.Document, error) {
	return s.findAccessible(db, claims, id)
}

func (s *DocumentServiceImpl) List(db *gorm.DB, claims *auth.Claims, q *dto.DocumentListQuery) ([]models.Document, int64, error) {
	tenantScope, err := scope.ForDocuments(claims, q.ManufacturerID)
	if err != nil {
		return nil, 0, err
	}

	q.Normalize()
	documents, total, err := s.documentRepo.FindAll(db, repositories.DocumentFilter{
		ProductID:    q.ProductID,
		Status:       models.DocumentStatus(q.Status),
		DocumentType: models.DocumentType(q.DocumentType),
		Limit:        q.Limit,
		Offset:       q.Offset(),
	}, tenantScope)
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}
	return documents, total, nil
}

func (s *DocumentServiceImpl) Update(db *gorm.DB, claims *auth.Claims, id string, req *dto.UpdateDocumentRequest, meta RequestMeta) (*models.Document, error) {
	doc, err := s.findAccessible(db, claims, id)
	if err != nil {
		return nil, err
	}
	before := *doc

	if req.Name != nil {
		doc.Name = *req.Name
	}
	if req.Version != nil {
		doc.Version = *req.Version
	}

	if err := s.documentRepo.Update(db, doc); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.auditService.Record(db, meta, models.AuditActionUpdate, "document", doc.ID, &before, doc)
	return doc, nil
}

// Review records a review decision. Expert tier and above; reviewers never
// approve their own uploads.
func (s *DocumentServiceImpl) Review(db *gorm.DB, claims *auth.Claims, id string, req *dto.ReviewDocumentRequest, meta RequestMeta) (*models.Document, error) {
	if !auth.CanReviewDocuments(claims.Role) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	doc, err := s.findAccessible(db, claims, id)
	if err != nil {
		return nil, err
	}

	status := models.DocumentStatus(req.Status)
	if status == models.DocumentStatusApproved && doc.UploadedByID == claims.UserID {
		return nil, apperrors.NewForbiddenError("Reviewers cannot approve their own uploads")
	}
	before := *doc

	reviewerID := claims.UserID
	doc.Status = status
	doc.ReviewedByID = &reviewerID
	doc.ReviewNotes = req.ReviewNotes

	if err := s.documentRepo.Update(db, doc); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.auditService.Record(db, meta, models.AuditActionStatusChange, "document", doc.ID, &before, doc)
	return doc, nil
}

// Replace archives the current file reference as a version row, stores the
// new blob and sends the document back to pending_review.
func (s *DocumentServiceImpl) Replace(ctx context.Context, db *gorm.DB, claims *auth.Claims, id string, req *dto.ReplaceDocumentRequest, meta RequestMeta) (*models.Document, error) {
	if req.File == nil {
		return nil, apperrors.NewBadRequestError("No file provided")
	}

	doc, err := s.findAccessible(db, claims, id)
	if err != nil {
		return nil, err
	}

	contentType := req.File.Header.Get("Content-Type")
	if !validator.IsAllowedFileType(contentType) {
		return nil, apperrors.ErrInvalidFileType
	}
	if !validator.IsValidFileSize(req.File.Size) {
		return nil, apperrors.ErrFileTooLarge
	}

	count, err := s.documentRepo.CountVersions(db, doc.ID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	version := &models.DocumentVersion{
		DocumentID:     doc.ID,
		VersionNumber:  int(count) + 1,
		FileURL:        doc.FileURL,
		ChangesSummary: req.ChangesSummary,
		CreatedByID:    claims.UserID,
	}
	if err := s.documentRepo.CreateVersion(db, version); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	src, err := req.File.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	manufacturerID := ""
	if doc.Product != nil {
		manufacturerID = doc.Product.ManufacturerID
	}
	key := path.Join(manufacturerID, doc.ProductID, storage.UniqueFilename(req.File.Filename))
	storedPath, err := s.store.Save(ctx, key, src, req.File.Size, contentType)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	before := *doc

	doc.FileURL = storedPath
	doc.FileSize = req.File.Size
	doc.MimeType = contentType
	doc.Status = models.DocumentStatusPendingReview
	doc.ReviewedByID = nil
	doc.ReviewNotes = ""
	if req.Version != "" {
		doc.Version = req.Version
	}

	if err := s.documentRepo.Update(db, doc); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.auditService.Record(db, meta, models.AuditActionStatusChange, "document", doc.ID, &before, doc)
	return doc, nil
}

// Delete removes the row (versions cascade) and the blob. The blob delete is
// best-effort: the row removal stands even if the backend call fails.
func (s *DocumentServiceImpl) Delete(ctx context.Context, db *gorm.DB, claims *auth.Claims, id string, meta RequestMeta) error {
	if !auth.CanReviewDocuments(claims.Role) {
		return apperrors.ErrInsufficientPermissions
	}

	doc, err := s.findAccessible(db, claims, id)
	if err != nil {
		return err
	}

	if err := s.documentRepo.Delete(db, doc.ID); err != nil {
		return apperrors.DatabaseError(err)
	}

	if err := s.store.Delete(ctx, doc.FileURL); err != nil {
		logger.Warn("document blob delete failed", "path", doc.FileURL, "error", err)
	}

	s.auditService.Record(db, meta, models.AuditActionDelete, "document", doc.ID, doc, nil)
	return nil
}

func (s *DocumentServiceImpl) Download(ctx context.Context, db *gorm.DB, claims *auth.Claims, id string) (*models.Document, io.ReadCloser, error) {
	doc, err := s.findAccessible(db, claims, id)
	if err != nil {
		return nil, nil, err
	}

	reader, err := s.store.Open(ctx, doc.FileURL)
	if err != nil {
		return nil, nil, apperrors.Wrap(err, apperrors.CodeNotFound, "upload", "Stored file is missing", http.StatusNotFound)
	}
	return doc, reader, nil
}

func (s *DocumentServiceImpl) ListVersions(db *gorm.DB, claims *auth.Claims, id string) ([]models.DocumentVersion, error) {
	doc, err := s.findAccessible(db, claims, id)
	if err != nil {
		return nil, err
	}

	versions, err := s.documentRepo.FindVersions(db, doc.ID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return versions, nil
}

// findAccessible loads the document with its product and enforces tenant
// access through the owning manufacturer.
func (s *DocumentServiceImpl) findAccessible(db *gorm.DB, claims *auth.Claims, id string) (*models.Document, error) {
	doc, err := s.documentRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, apperrors.NewNotFoundError("Document not found")
		}
		return nil, apperrors.DatabaseError(err)
	}

	manufacturerID := ""
	if doc.Product != nil {
		manufacturerID = doc.Product.ManufacturerID
	}
	if err := scope.CheckManufacturerAccess(claims, manufacturerID); err != nil {
		return nil, err
	}
	return doc, nil
}
