package repositories

import (
	"errors"
	"time"

	"arportal/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserFilter struct {
	Role           models.UserRole
	ManufacturerID string
	IsActive       *bool
	Limit          int
	Offset         int
}

type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	Update(db *gorm.DB, user *models.User) error
	UpdateLastLogin(db *gorm.DB, userID string, at time.Time) error
	FindWithFilter(db *gorm.DB, f UserFilter) ([]models.User, int64, error)

	// RefreshToken operations
	CreateRefreshToken(db *gorm.DB, token *models.RefreshToken) error
	FindRefreshToken(db *gorm.DB, token string) (*models.RefreshToken, error)
	DeleteRefreshToken(db *gorm.DB, token string) error
	DeleteUserRefreshTokens(db *gorm.DB, userID string) error
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	return db.Create(user).Error
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.Preload("Manufacturer").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Update(db *gorm.DB, user *models.User) error {
	return db.Save(user).Error
}

func (r *UserRepositoryImpl) UpdateLastLogin(db *gorm.DB, userID string, at time.Time) error {
	return db.Model(&models.User{}).Where("id = ?", userID).
		Update("last_login_at", at).Error
}

func (r *UserRepositoryImpl) FindWithFilter(db *gorm.DB, f UserFilter) ([]models.User, int64, error) {
	query := db.Model(&models.User{})
	if f.Role != "" {
		query = query.Where("role = ?", f.Role)
	}
	if f.ManufacturerID != "" {
		query = query.Where("manufacturer_id = ?", f.ManufacturerID)
	}
	if f.IsActive != nil {
		query = query.Where("is_active = ?", *f.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := query.Order("created_at DESC").
		Limit(f.Limit).Offset(f.Offset).
		Find(&users).Error
	return users, total, err
}

func (r *UserRepositoryImpl) CreateRefreshToken(db *gorm.DB, token *models.RefreshToken) error {
	return db.Create(token).Error
}

func (r *UserRepositoryImpl) FindRefreshToken(db *gorm.DB, token string) (*models.RefreshToken, error) {
	var rt models.RefreshToken
	err := db.First(&rt, "token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *UserRepositoryImpl) DeleteRefreshToken(db *gorm.DB, token string) error {
	return db.Delete(&models.RefreshToken{}, "token = ?", token).Error
}

func (r *UserRepositoryImpl) DeleteUserRefreshTokens(db *gorm.DB, userID string) error {
	return db.Delete(&models.RefreshToken{}, "user_id = ?", userID).Error
}
