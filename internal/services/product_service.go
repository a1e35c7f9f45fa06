package services

import (
	"arportal/internal/auth"
	"arportal/internal/models"
	"arportal/internal/repositories"
	"arportal/internal/scope"
	"arportal/internal/services/dto"
	"arportal/pkg/apperrors"

	"gorm.io/gorm"
)

type ProductService interface {
	Create(db *gorm.DB, claims *auth.Claims, req *dto.CreateProductRequest, meta RequestMeta) (*models.Product, error)
	GetByID(db *gorm.DB, claims *auth.Claims, id string) (*models.Product, error)
	List(db *gorm.DB, claims *auth.Claims, q *dto.ProductListQuery) ([]models.Product, int64, error)
	Update(db *gorm.DB, claims *auth.Claims, id string, req *dto.UpdateProductRequest, meta RequestMeta) (*models.Product, error)
	Archive(db *gorm.DB, claims *auth.Claims, id string, meta RequestMeta) (*models.Product, error)
}

type ProductServiceImpl struct {
	productRepo  repositories.ProductRepository
	auditService AuditService
}

func NewProductService(productRepo repositories.ProductRepository, auditService AuditService) ProductService {
	return &ProductServiceImpl{productRepo: productRepo, auditService: auditService}
}

// Create registers a product for a manufacturer. Customers create only under
// their own manufacturer; staff must name one explicitly. Status is always
// forced to draft.
func (s *ProductServiceImpl) Create(db *gorm.DB, claims *auth.Claims, req *dto.CreateProductRequest, meta RequestMeta) (*models.Product, error) {
	manufacturerID := req.ManufacturerID
	if claims.Role == models.UserRoleCustomer {
		if claims.ManufacturerID == "" {
			return nil, apperrors.ErrNoManufacturer
		}
		if manufacturerID != "" && manufacturerID != claims.ManufacturerID {
			return nil, apperrors.ErrOtherManufacturer
		}
		manufacturerID = claims.ManufacturerID
	}
	if manufacturerID == "" {
		return nil, apperrors.NewBadRequestError("manufacturerId is required")
	}

	p := &models.Product{
		ManufacturerID:  manufacturerID,
		Name:            req.Name,
		UdiDi:           req.UdiDi,
		IntendedPurpose: req.IntendedPurpose,
		Status:          models.ProductStatusDraft,
	}
	if req.DeviceType != "" {
		dt := models.DeviceType(req.DeviceType)
		p.DeviceType = &dt
	}
	if req.Classification != "" {
		cl := models.Classification(req.Classification)
		p.Classification = &cl
	}
	if req.Regulation != "" {
		reg := models.Regulation(req.Regulation)
		p.ApplicableRegulation = &reg
	}
	if req.Metadata != nil {
		p.Metadata = marshalJSONB(req.Metadata)
	}

	if err := s.productRepo.Create(db, p); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.auditService.Record(db, meta, models.AuditActionCreate, "product", p.ID, nil, p)
	return p, nil
}

func (s *ProductServiceImpl) GetByID(db *gorm.DB, claims *auth.Claims, id string) (*models.Product, error) {
	p, err := s.findAccessible(db, claims, id)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductServiceImpl) List(db *gorm.DB, claims *auth.Claims, q *dto.ProductListQuery) ([]models.Product, int64, error) {
	tenantScope, err := scope.ForProducts(claims, q.ManufacturerID)
	if err != nil {
		return nil, 0, err
	}

	q.Normalize()
	filter := repositories.ProductFilter{
		Status:     models.ProductStatus(q.Status),
		DeviceType: models.DeviceType(q.DeviceType),
		Search:     q.Search,
		Limit:      q.Limit,
		Offset:     q.Offset(),
	}
	if auth.IsStaffRole(claims.Role) {
		filter.ManufacturerID = q.ManufacturerID
	}

	products, total, err := s.productRepo.FindAll(db, filter, tenantScope)
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}
	return products, total, nil
}

func (s *ProductServiceImpl) Update(db *gorm.DB, claims *auth.Claims, id string, req *dto.UpdateProductRequest, meta RequestMeta) (*models.Product, error) {
	p, err := s.findAccessible(db, claims, id)
	if err != nil {
		return nil, err
	}
	if p.Archived() {
		return nil, apperrors.ErrProductArchived
	}
	before := *p

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.UdiDi != nil {
		p.UdiDi = *req.UdiDi
	}
	if req.DeviceType != nil {
		dt := models.DeviceType(*req.DeviceType)
		p.DeviceType = &dt
	}
	if req.Classification != nil {
		cl := models.Classification(*req.Classification)
		p.Classification = &cl
	}
	if req.Regulation != nil {
		reg := models.Regulation(*req.Regulation)
		p.ApplicableRegulation = &reg
	}
	if req.IntendedPurpose != nil {
		p.IntendedPurpose = *req.IntendedPurpose
	}
	if req.Metadata != nil {
		p.Metadata = marshalJSONB(req.Metadata)
	}

	action := models.AuditActionUpdate
	if req.Status != nil {
		status := models.ProductStatus(*req.Status)
		if status == models.ProductStatusDiscontinued {
			return nil, apperrors.ErrArchiveViaUpdate
		}
		if status != p.Status {
			action = models.AuditActionStatusChange
		}
		p.Status = status
	}

	if err := s.productRepo.Update(db, p); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.auditService.Record(db, meta, action, "product", p.ID, &before, p)
	return p, nil
}

// Archive moves the product to its terminal discontinued state. One-way;
// expert tier or above.
func (s *ProductServiceImpl) Archive(db *gorm.DB, claims *auth.Claims, id string, meta RequestMeta) (*models.Product, error) {
	if !auth.CanArchiveProducts(claims.Role) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	p, err := s.findAccessible(db, claims, id)
	if err != nil {
		return nil, err
	}
	if p.Archived() {
		return nil, apperrors.ErrProductArchived
	}
	before := *p

	if err := s.productRepo.UpdateStatus(db, p.ID, models.ProductStatusDiscontinued); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	p.Status = models.ProductStatusDiscontinued

	s.auditService.Record(db, meta, models.AuditActionStatusChange, "product", p.ID, &before, p)
	return p, nil
}

// findAccessible loads the product and enforces tenant access.
func (s *ProductServiceImpl) findAccessible(db *gorm.DB, claims *auth.Claims, id string) (*models.Product, error) {
	p, err := s.productRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return nil, apperrors.NewNotFoundError("Product not found")
		}
		return nil, apperrors.DatabaseError(err)
	}
	if err := scope.CheckManufacturerAccess(claims, p.ManufacturerID); err != nil {
		return nil, err
	}
	return p, nil
}
