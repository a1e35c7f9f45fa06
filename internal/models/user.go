package models

import "time"

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	// Set only for customer accounts; ties the user to exactly one tenant.
	ManufacturerID *string    `gorm:"type:uuid;index" json:"manufacturerId,omitempty"`
	IsActive       bool       `gorm:"default:true" json:"isActive"`
	LastLoginAt    *time.Time `json:"lastLoginAt,omitempty"`

	// Relations
	Manufacturer  *Manufacturer  `gorm:"foreignKey:ManufacturerID" json:"manufacturer,omitempty"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"type:uuid;not null;index" json:"userId"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
}
