package repositories

import (
	"errors"

	"arportal/internal/models"
	"arportal/internal/scope"

	"gorm.io/gorm"
)

var ErrSubmissionNotFound = errors.New("submission not found")

type SubmissionFilter struct {
	ProductID string
	Authority models.Authority
	Status    models.SubmissionStatus
	Limit     int
	Offset    int
}

type SubmissionRepository interface {
	Create(db *gorm.DB, s *models.Submission) error
	FindByID(db *gorm.DB, id string) (*models.Submission, error)
	FindAll(db *gorm.DB, f SubmissionFilter, s scope.GormScope) ([]models.Submission, int64, error)
	Update(db *gorm.DB, s *models.Submission) error
	CountByStatus(db *gorm.DB, s scope.GormScope) (map[models.SubmissionStatus]int64, error)
}

type SubmissionRepositoryImpl struct{}

func NewSubmissionRepository() SubmissionRepository {
	return &SubmissionRepositoryImpl{}
}

func (r *SubmissionRepositoryImpl) Create(db *gorm.DB, s *models.Submission) error {
	return db.Create(s).Error
}

func (r *SubmissionRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Submission, error) {
	var s models.Submission
	err := db.Preload("Product").
		Preload("Product.Manufacturer").
		Preload("SubmittedBy").
		First(&s, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *SubmissionRepositoryImpl) FindAll(db *gorm.DB, f SubmissionFilter, s scope.GormScope) ([]models.Submission, int64, error) {
	query := db.Model(&models.Submission{}).Scopes(s)
	if f.ProductID != "" {
		query = query.Where("submissions.product_id = ?", f.ProductID)
	}
	if f.Authority != "" {
		query = query.Where("submissions.authority = ?", f.Authority)
	}
	if f.Status != "" {
		query = query.Where("submissions.status = ?", f.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var submissions []models.Submission
	err := query.Preload("Product").
		Preload("SubmittedBy").
		Order("submissions.created_at DESC").
		Limit(f.Limit).Offset(f.Offset).
		Find(&submissions).Error
	return submissions, total, err
}

func (r *SubmissionRepositoryImpl) Update(db *gorm.DB, s *models.Submission) error {
	return db.Save(s).Error
}

func (r *SubmissionRepositoryImpl) CountByStatus(db *gorm.DB, s scope.GormScope) (map[models.SubmissionStatus]int64, error) {
	type row struct {
		Status models.SubmissionStatus
		Count  int64
	}
	var rows []row
	err := db.Model(&models.Submission{}).Scopes(s).
		Select("submissions.status AS status, COUNT(*) AS count").
		Group("submissions.status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.SubmissionStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
