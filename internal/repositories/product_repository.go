package repositories

import (
	"errors"

	"arportal/internal/models"
	"arportal/internal/scope"

	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type ProductFilter struct {
	ManufacturerID string
	Status         models.ProductStatus
	DeviceType     models.DeviceType
	Search         string
	Limit          int
	Offset         int
}

type ProductRepository interface {
	Create(db *gorm.DB, p *models.Product) error
	FindByID(db *gorm.DB, id string) (*models.Product, error)
	FindAll(db *gorm.DB, f ProductFilter, s scope.GormScope) ([]models.Product, int64, error)
	Update(db *gorm.DB, p *models.Product) error
	UpdateStatus(db *gorm.DB, id string, status models.ProductStatus) error
	CountByStatus(db *gorm.DB, s scope.GormScope) (map[models.ProductStatus]int64, error)
	FindRecent(db *gorm.DB, limit int, s scope.GormScope) ([]models.Product, error)
}

type ProductRepositoryImpl struct{}

func NewProductRepository() ProductRepository {
	return &ProductRepositoryImpl{}
}

func (r *ProductRepositoryImpl) Create(db *gorm.DB, p *models.Product) error {
	return db.Create(p).Error
}

func (r *ProductRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Product, error) {
	var p models.Product
	err := db.Preload("Manufacturer").First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepositoryImpl) FindAll(db *gorm.DB, f ProductFilter, s scope.GormScope) ([]models.Product, int64, error) {
	query := db.Model(&models.Product{}).Scopes(s)
	if f.ManufacturerID != "" {
		query = query.Where("products.manufacturer_id = ?", f.ManufacturerID)
	}
	if f.Status != "" {
		query = query.Where("products.status = ?", f.Status)
	}
	if f.DeviceType != "" {
		query = query.Where("products.device_type = ?", f.DeviceType)
	}
	if f.Search != "" {
		query = query.Where("products.name ILIKE ? OR products.udi_di ILIKE ?", "%"+f.Search+"%", "%"+f.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := query.Preload("Manufacturer").
		Order("products.created_at DESC").
		Limit(f.Limit).Offset(f.Offset).
		Find(&products).Error
	return products, total, err
}

func (r *ProductRepositoryImpl) Update(db *gorm.DB, p *models.Product) error {
	return db.Save(p).Error
}

func (r *ProductRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.ProductStatus) error {
	return db.Model(&models.Product{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *ProductRepositoryImpl) CountByStatus(db *gorm.DB, s scope.GormScope) (map[models.ProductStatus]int64, error) {
	type row struct {
		Status models.ProductStatus
		Count  int64
	}
	var rows []row
	err := db.Model(&models.Product{}).Scopes(s).
		Select("products.status AS status, COUNT(*) AS count").
		Group("products.status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.ProductStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

func (r *ProductRepositoryImpl) FindRecent(db *gorm.DB, limit int, s scope.GormScope) ([]models.Product, error) {
	var products []models.Product
	err := db.Model(&models.Product{}).Scopes(s).
		Preload("Manufacturer").
		Order("products.created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}
