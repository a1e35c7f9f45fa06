package services

import (
	"arportal/internal/auth"
	"arportal/internal/models"
	"arportal/internal/repositories"
	"arportal/internal/services/dto"
	"arportal/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	Create(db *gorm.DB, claims *auth.Claims, req *dto.CreateUserRequest, meta RequestMeta) (*models.User, error)
	GetByID(db *gorm.DB, claims *auth.Claims, id string) (*models.User, error)
	List(db *gorm.DB, claims *auth.Claims, q *dto.UserListQuery) ([]models.User, int64, error)
	Update(db *gorm.DB, claims *auth.Claims, id string, req *dto.UpdateUserRequest, meta RequestMeta) (*models.User, error)
	ChangePassword(db *gorm.DB, claims *auth.Claims, req *dto.ChangePasswordRequest) error
}

type UserServiceImpl struct {
	userRepo     repositories.UserRepository
	auditService AuditService
}

func NewUserService(userRepo repositories.UserRepository, auditService AuditService) UserService {
	return &UserServiceImpl{userRepo: userRepo, auditService: auditService}
}

// Create provisions an account, including staff roles. Manager or admin only;
// only an admin may mint another admin.
func (s *UserServiceImpl) Create(db *gorm.DB, claims *auth.Claims, req *dto.CreateUserRequest, meta RequestMeta) (*models.User, error) {
	if !auth.CanManageManufacturers(claims.Role) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	role := models.UserRole(req.Role)
	if role == models.UserRoleAdmin && !auth.IsAdmin(claims.Role) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if role == models.UserRoleCustomer && req.ManufacturerID == "" {
		return nil, apperrors.NewBadRequestError("Customer accounts require a manufacturer")
	}
	if role != models.UserRoleCustomer && req.ManufacturerID != "" {
		return nil, apperrors.NewBadRequestError("Staff accounts cannot be tied to a manufacturer")
	}

	if _, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.NewConflictError("auth", "Email is already registered")
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.DatabaseError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
		IsActive:     true,
	}
	if req.ManufacturerID != "" {
		manufacturerID := req.ManufacturerID
		user.ManufacturerID = &manufacturerID
	}

	if err := s.userRepo.Create(db, user); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	s.auditService.Record(db, meta, models.AuditActionCreate, "user", user.ID, nil, user)
	return user, nil
}

func (s *UserServiceImpl) GetByID(db *gorm.DB, claims *auth.Claims, id string) (*models.User, error) {
	if !auth.IsStaffRole(claims.Role) && claims.UserID != id {
		return nil, apperrors.ErrInsufficientPermissions
	}

	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, apperrors.DatabaseError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) List(db *gorm.DB, claims *auth.Claims, q *dto.UserListQuery) ([]models.User, int64, error) {
	if !auth.CanManageManufacturers(claims.Role) {
		return nil, 0, apperrors.ErrInsufficientPermissions
	}

	q.Normalize()
	users, total, err := s.userRepo.FindWithFilter(db, repositories.UserFilter{
		Role:           models.UserRole(q.Role),
		ManufacturerID: q.ManufacturerID,
		Limit:          q.Limit,
		Offset:         q.Offset(),
	})
	if err != nil {
		return nil, 0, apperrors.DatabaseError(err)
	}
	return users, total, nil
}

func (s *UserServiceImpl) Update(db *gorm.DB, claims *auth.Claims, id string, req *dto.UpdateUserRequest, meta RequestMeta) (*models.User, error) {
	if !auth.CanManageManufacturers(claims.Role) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, apperrors.DatabaseError(err)
	}
	before := *user

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Role != nil {
		role := models.UserRole(*req.Role)
		if role == models.UserRoleAdmin && !auth.IsAdmin(claims.Role) {
			return nil, apperrors.ErrInsufficientPermissions
		}
		user.Role = role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	// Deactivation kills open sessions.
	if req.IsActive != nil && !*req.IsActive {
		if err := s.userRepo.DeleteUserRefreshTokens(db, user.ID); err != nil {
			return nil, apperrors.DatabaseError(err)
		}
	}

	s.auditService.Record(db, meta, models.AuditActionUpdate, "user", user.ID, &before, user)
	return user, nil
}

func (s *UserServiceImpl) ChangePassword(db *gorm.DB, claims *auth.Claims, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(db, claims.UserID)
	if err != nil {
		return apperrors.DatabaseError(err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		return apperrors.NewUnauthorizedError("Current password is incorrect")
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	user.PasswordHash = hash

	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.DatabaseError(err)
	}
	return s.userRepo.DeleteUserRefreshTokens(db, user.ID)
}
