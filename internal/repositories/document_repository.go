package repositories

import (
	"errors"

	"arportal/internal/models"
	"arportal/internal/scope"

	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentFilter struct {
	ProductID    string
	Status       models.DocumentStatus
	DocumentType models.DocumentType
	Limit        int
	Offset       int
}

type DocumentRepository interface {
	Create(db *gorm.DB, d *models.Document) error
	FindByID(db *gorm.DB, id string) (*models.Document, error)
	FindAll(db *gorm.DB, f DocumentFilter, s scope.GormScope) ([]models.Document, int64, error)
	Update(db *gorm.DB, d *models.Document) error
	Delete(db *gorm.DB, id string) error
	CountPendingReview(db *gorm.DB, s scope.GormScope) (int64, error)
	Count(db *gorm.DB, s scope.GormScope) (int64, error)
	FindRecent(db *gorm.DB, limit int, s scope.GormScope) ([]models.Document, error)

	// Version history (append-only)
	CreateVersion(db *gorm.DB, v *models.DocumentVersion) error
	CountVersions(db *gorm.DB, documentID string) (int64, error)
	FindVersions(db *gorm.DB, documentID string) ([]models.DocumentVersion, error)
}

type DocumentRepositoryImpl struct{}

func NewDocumentRepository() DocumentRepository {
	return &DocumentRepositoryImpl{}
}

func (r *DocumentRepositoryImpl) Create(db *gorm.DB, d *models.Document) error {
	return db.Create(d).Error
}

func (r *DocumentRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Document, error) {
	var d models.Document
	err := db.Preload("Product").
		Preload("Product.Manufacturer").
		Preload("UploadedBy").
		Preload("ReviewedBy").
		First(&d, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *DocumentRepositoryImpl) FindAll(db *gorm.DB, f DocumentFilter, s scope.GormScope) ([]models.Document, int64, error) {
	query := db.Model(&models.Document{}).Scopes(s)
	if f.ProductID != "" {
		query = query.Where("documents.product_id = ?", f.ProductID)
	}
	if f.Status != "" {
		query = query.Where("documents.status = ?", f.Status)
	}
	if f.DocumentType != "" {
		query = query.Where("documents.document_type = ?", f.DocumentType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var documents []models.Document
	err := query.Preload("Product").
		Preload("UploadedBy").
		Preload("ReviewedBy").
		Order("documents.created_at DESC").
		Limit(f.Limit).Offset(f.Offset).
		Find(&documents).Error
	return documents, total, err
}

func (r *DocumentRepositoryImpl) Update(db *gorm.DB, d *models.Document) error {
	return db.Save(d).Error
}

// Delete removes the row; versions cascade at the database level.
func (r *DocumentRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Document{}, "id = ?", id).Error
}

func (r *DocumentRepositoryImpl) CountPendingReview(db *gorm.DB, s scope.GormScope) (int64, error) {
	var count int64
	err := db.Model(&models.Document{}).Scopes(s).
		Where("documents.status = ?", models.DocumentStatusPendingReview).
		Count(&count).Error
	return count, err
}

func (r *DocumentRepositoryImpl) Count(db *gorm.DB, s scope.GormScope) (int64, error) {
	var count int64
	err := db.Model(&models.Document{}).Scopes(s).Count(&count).Error
	return count, err
}

func (r *DocumentRepositoryImpl) FindRecent(db *gorm.DB, limit int, s scope.GormScope) ([]models.Document, error) {
	var documents []models.Document
	err := db.Model(&models.Document{}).Scopes(s).
		Preload("Product").
		Preload("UploadedBy").
		Order("documents.created_at DESC").
		Limit(limit).
		Find(&documents).Error
	return documents, err
}

func (r *DocumentRepositoryImpl) CreateVersion(db *gorm.DB, v *models.DocumentVersion) error {
	return db.Create(v).Error
}

func (r *DocumentRepositoryImpl) CountVersions(db *gorm.DB, documentID string) (int64, error) {
	var count int64
	err := db.Model(&models.DocumentVersion{}).
		Where("document_id = ?", documentID).
		Count(&count).Error
	return count, err
}

func (r *DocumentRepositoryImpl) FindVersions(db *gorm.DB, documentID string) ([]models.DocumentVersion, error) {
	var versions []models.DocumentVersion
	err := db.Where("document_id = ?", documentID).
		Order("version_number ASC").
		Find(&versions).Error
	return versions, err
}
