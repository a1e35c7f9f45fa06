package repositories

import (
	"errors"
	"time"

	"arportal/internal/models"
	"arportal/internal/scope"

	"gorm.io/gorm"
)

var ErrCertificateNotFound = errors.New("certificate not found")

type CertificateFilter struct {
	ManufacturerID  string
	CertificateType models.CertificateType
	Status          models.CertificateStatus
	Limit           int
	Offset          int
}

type CertificateRepository interface {
	Create(db *gorm.DB, c *models.Certificate) error
	FindByID(db *gorm.DB, id string) (*models.Certificate, error)
	FindAll(db *gorm.DB, f CertificateFilter, s scope.GormScope) ([]models.Certificate, int64, error)
	Update(db *gorm.DB, c *models.Certificate) error
	Delete(db *gorm.DB, id string) error

	// Worker queries
	FindExpiringBefore(db *gorm.DB, deadline time.Time) ([]models.Certificate, error)
	UpdateStatus(db *gorm.DB, id string, status models.CertificateStatus) error
	MarkExpiringSoonAlertSent(db *gorm.DB, id string, at time.Time) error
	MarkExpiryAlertSent(db *gorm.DB, id string, at time.Time) error
}

type CertificateRepositoryImpl struct{}

func NewCertificateRepository() CertificateRepository {
	return &CertificateRepositoryImpl{}
}

func (r *CertificateRepositoryImpl) Create(db *gorm.DB, c *models.Certificate) error {
	return db.Create(c).Error
}

func (r *CertificateRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Certificate, error) {
	var c models.Certificate
	err := db.Preload("Manufacturer").First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCertificateNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CertificateRepositoryImpl) FindAll(db *gorm.DB, f CertificateFilter, s scope.GormScope) ([]models.Certificate, int64, error) {
	query := db.Model(&models.Certificate{}).Scopes(s)
	if f.ManufacturerID != "" {
		query = query.Where("certificates.manufacturer_id = ?", f.ManufacturerID)
	}
	if f.CertificateType != "" {
		query = query.Where("certificates.certificate_type = ?", f.CertificateType)
	}
	if f.Status != "" {
		query = query.Where("certificates.status = ?", f.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var certificates []models.Certificate
	err := query.Preload("Manufacturer").
		Order("certificates.expiry_date ASC").
		Limit(f.Limit).Offset(f.Offset).
		Find(&certificates).Error
	return certificates, total, err
}

func (r *CertificateRepositoryImpl) Update(db *gorm.DB, c *models.Certificate) error {
	return db.Save(c).Error
}

func (r *CertificateRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Certificate{}, "id = ?", id).Error
}

func (r *CertificateRepositoryImpl) FindExpiringBefore(db *gorm.DB, deadline time.Time) ([]models.Certificate, error) {
	var certificates []models.Certificate
	err := db.Preload("Manufacturer").
		Where("expiry_date <= ?", deadline).
		Find(&certificates).Error
	return certificates, err
}

func (r *CertificateRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.CertificateStatus) error {
	return db.Model(&models.Certificate{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *CertificateRepositoryImpl) MarkExpiringSoonAlertSent(db *gorm.DB, id string, at time.Time) error {
	return db.Model(&models.Certificate{}).Where("id = ?", id).
		Update("expiring_soon_alert_sent_at", at).Error
}

func (r *CertificateRepositoryImpl) MarkExpiryAlertSent(db *gorm.DB, id string, at time.Time) error {
	return db.Model(&models.Certificate{}).Where("id = ?", id).
		Update("expiry_alert_sent_at", at).Error
}
