package services

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"arportal/internal/auth"
	"arportal/internal/models"
	"arportal/internal/repositories"
	"arportal/internal/services/dto"
	"arportal/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error)
	Login(db *gorm.DB, req *dto.LoginRequest, meta RequestMeta) (*dto.LoginResponse, error)
	Refresh(db *gorm.DB, refreshToken string) (*dto.LoginResponse, error)
	Logout(db *gorm.DB, refreshToken string) error
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	manufacturerRepo repositories.ManufacturerRepository
	tokens           *auth.TokenManager
	refreshTTL       time.Duration
	auditService     AuditService
}

func NewAuthService(
	userRepo repositories.UserRepository,
	manufacturerRepo repositories.ManufacturerRepository,
	tokens *auth.TokenManager,
	refreshTTL time.Duration,
	auditService AuditService,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		manufacturerRepo: manufacturerRepo,
		tokens:           tokens,
		refreshTTL:       refreshTTL,
		auditService:     auditService,
	}
}

// Register creates a customer account tied to an existing manufacturer.
// Staff accounts are provisioned through user administration, never here.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error) {
	if _, err := s.manufacturerRepo.FindByID(db, req.ManufacturerID); err != nil {
		if apperrors.Is(err, repositories.ErrManufacturerNotFound) {
			return nil, apperrors.NewBadRequestError("Unknown manufacturer")
		}
		return nil, apperrors.DatabaseError(err)
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

	manufacturerID := req.ManufacturerID
	user := &models.User{
		Email:          req.Email,
		PasswordHash:   hash,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Role:           models.UserRoleCustomer,
		ManufacturerID: &manufacturerID,
		IsActive:       true,
	}
	if err := s.userRepo.Create(db, user); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return user, nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest, meta RequestMeta) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("Invalid email or password")
		}
		return nil, apperrors.DatabaseError(err)
	}

	if !user.IsActive {
		return nil, apperrors.NewUnauthorizedError("Account is deactivated")
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.NewUnauthorizedError("Invalid email or password")
	}

	resp, err := s.issueSession(db, user)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(db, user.ID, now); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	user.LastLoginAt = &now

	meta.UserID = user.ID
	s.auditService.Record(db, meta, models.AuditActionLogin, "user", user.ID, nil, nil)

	return resp, nil
}

func (s *AuthServiceImpl) Refresh(db *gorm.DB, refreshToken string) (*dto.LoginResponse, error) {
	stored, err := s.userRepo.FindRefreshToken(db, refreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.userRepo.DeleteRefreshToken(db, refreshToken)
		return nil, apperrors.NewUnauthorizedError("Refresh token expired")
	}

	user, err := s.userRepo.FindByID(db, stored.UserID)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
	}
	if !user.IsActive {
		return nil, apperrors.NewUnauthorizedError("Account is deactivated")
	}

	// Rotate: the presented token is single-use.
	if err := s.userRepo.DeleteRefreshToken(db, refreshToken); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return s.issueSession(db, user)
}

func (s *AuthServiceImpl) Logout(db *gorm.DB, refreshToken string) error {
	if err := s.userRepo.DeleteRefreshToken(db, refreshToken); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *AuthServiceImpl) issueSession(db *gorm.DB, user *models.User) (*dto.LoginResponse, error) {
	accessToken, err := s.tokens.Issue(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := generateRefreshToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	record := &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}
	if err := s.userRepo.CreateRefreshToken(db, record); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func generateRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
