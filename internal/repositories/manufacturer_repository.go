package repositories

import (
	"errors"

	"arportal/internal/models"
	"arportal/internal/scope"

	"gorm.io/gorm"
)

var ErrManufacturerNotFound = errors.New("manufacturer not found")

type ManufacturerFilter struct {
	Status models.ManufacturerStatus
	Search string
	Limit  int
	Offset int
}

type ManufacturerRepository interface {
	Create(db *gorm.DB, m *models.Manufacturer) error
	FindByID(db *gorm.DB, id string) (*models.Manufacturer, error)
	FindAll(db *gorm.DB, f ManufacturerFilter, s scope.GormScope) ([]models.Manufacturer, int64, error)
	Update(db *gorm.DB, m *models.Manufacturer) error
}

type ManufacturerRepositoryImpl struct{}

func NewManufacturerRepository() ManufacturerRepository {
	return &ManufacturerRepositoryImpl{}
}

func (r *ManufacturerRepositoryImpl) Create(db *gorm.DB, m *models.Manufacturer) error {
	return db.Create(m).Error
}

func (r *ManufacturerRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Manufacturer, error) {
	var m models.Manufacturer
	err := db.Preload("AssignedEcRep").First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrManufacturerNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *ManufacturerRepositoryImpl) FindAll(db *gorm.DB, f ManufacturerFilter, s scope.GormScope) ([]models.Manufacturer, int64, error) {
	query := db.Model(&models.Manufacturer{}).Scopes(s)
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Search != "" {
		query = query.Where("name ILIKE ? OR legal_name ILIKE ?", "%"+f.Search+"%", "%"+f.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var manufacturers []models.Manufacturer
	err := query.Order("name ASC").
		Limit(f.Limit).Offset(f.Offset).
		Find(&manufacturers).Error
	return manufacturers, total, err
}

func (r *ManufacturerRepositoryImpl) Update(db *gorm.DB, m *models.Manufacturer) error {
	return db.Save(m).Error
}
