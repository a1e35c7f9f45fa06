package services

import (
	"encoding/json"
	"time"

	"arportal/internal/auth"
	"arportal/internal/models"
	"arportal/internal/repositories"
	"arportal/internal/scope"
	"arportal/internal/services/dto"
	"arportal/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ManufacturerService interface {
	Create(db *gorm.DB, claims *auth.Claims, req *dto.CreateManufacturerRequest, meta RequestMeta) (*models.Manufacturer, error)
	GetByID(db *gorm.DB, claims *auth.Claims, id string) (*models.Manufacturer, error)
	List(db *gorm.DB, claims *auth.Claims, q *dto.ManufacturerListQuery) ([]models.Manufacturer, int64, error)
	Update(db *gorm.DB, claims *auth.Claims, id string, req *dto.UpdateManufacturerRequest, meta RequestMeta) (*models.Manufacturer, error)
}

type ManufacturerServiceImpl struct {
	manufacturerRepo repositories.ManufacturerRepository
	auditService     AuditService
}

func NewManufacturerService(manufacturerRepo repositories.ManufacturerRepository, auditService AuditService) ManufacturerService {
	return &ManufacturerServiceImpl{
		manufacturerRepo: manufacturerRepo,
		auditService:     auditService,
	}
}

func (s *ManufacturerServiceImpl) Create(db *gorm.DB, claims *auth.Claims, req *dto.CreateManufacturerRequest, meta RequestMeta) (*models.Manufacturer, error) {
	if !auth.CanManageManufacturers(claims.Role) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	m := &models.Manufacturer{
		Name:      req.Name,
		LegalName: req.LegalName,
		Status:    models.ManufacturerStatusActive,
	}
	if req.Address != nil {
		m.Address = marshalJSONB(req.Address)
	}
	if req.PrimaryContact != nil {
		m.PrimaryContact = marshalJSONB(req.PrimaryContact)
	}
	if req.Services != nil {
		m.SetServices(req.Services)
	}
	if req.AssignedEcRepID != "" {
		id := req.AssignedEcRepID
		m.AssignedEcRepID = &id
	}

	var err error
	if m.ContractStart, err = parseDate(req.ContractStart); err != nil {
		return nil, apperrors.NewBadRequestError("Invalid contractStart date")
	}
	if m.ContractEnd, err = parseDate(req.ContractEnd); err != nil {
		return nil, apperrors.NewBadRequestError("Invalid contractEnd date")
	}

	if err := s.manufacturerRepo.Create(db, m); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.auditService.Record(db, meta, models.AuditActionCreate, "manufacturer", m.ID, nil, m)
	return m, nil
}

func (s *ManufacturerServiceImpl) GetByID(db *gorm.DB, claims *auth.Claims, id string) (*models.Manufacturer, error) {
	if err := scope.CheckManufacturerAccess(claims, id); err != nil {
		return nil, err
	}

	m, err := s.manufacturerRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrManufacturerNotFound) {
			return nil, apperrors.NewNotFoundError("Manufacturer not found")
		}
		return nil, apperrors.DatabaseError(err)
	}
	return m, nil
}

func (s *ManufacturerServiceImpl) List(db *gorm.DB, claims *auth.Claims, q *dto.ManufacturerListQuery) ([]models.Manufacturer, int64, error) {
	tenantScope, err := scope.ForManufacturers(claims, "")
	if err != nil {
		return nil, 0, err
	}

	q.Normalize()
	manufacturers, total, err := s.manufacturerRepo.FindAll(db, repositories.ManufacturerFilter{
		Status: models.ManufacturerStatus(q.Status),
		Search: q.Search,
		Limit:  q.Limit,
		Offset: q.Offset(),
	}, tenantScope)
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}
	return manufacturers, total, nil
}

func (s *ManufacturerServiceImpl) Update(db *gorm.DB, claims *auth.Claims, id string, req *dto.UpdateManufacturerRequest, meta RequestMeta) (*models.Manufacturer, error) {
	if !auth.CanManageManufacturers(claims.Role) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	m, err := s.manufacturerRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrManufacturerNotFound) {
			return nil, apperrors.NewNotFoundError("Manufacturer not found")
		}
		return nil, apperrors.DatabaseError(err)
	}
	before := *m

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.LegalName != nil {
		m.LegalName = *req.LegalName
	}
	if req.Address != nil {
		m.Address = marshalJSONB(req.Address)
	}
	if req.PrimaryContact != nil {
		m.PrimaryContact = marshalJSONB(req.PrimaryContact)
	}
	if req.Services != nil {
		m.SetServices(req.Services)
	}
	if req.AssignedEcRepID != nil {
		m.AssignedEcRepID = req.AssignedEcRepID
	}
	if req.ContractStart != nil {
		if m.ContractStart, err = parseDate(*req.ContractStart); err != nil {
			return nil, apperrors.NewBadRequestError("Invalid contractStart date")
		}
	}
	if req.ContractEnd != nil {
		if m.ContractEnd, err = parseDate(*req.ContractEnd); err != nil {
			return nil, apperrors.NewBadRequestError("Invalid contractEnd date")
		}
	}
	if req.Status != nil {
		m.Status = models.ManufacturerStatus(*req.Status)
	}

	if err := s.manufacturerRepo.Update(db, m); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.auditService.Record(db, meta, models.AuditActionUpdate, "manufacturer", m.ID, &before, m)
	return m, nil
}

func marshalJSONB(v interface{}) datatypes.JSON {
	data, _ := json.Marshal(v)
	return data
}

// parseDate parses a YYYY-MM-DD value; empty input yields nil.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
