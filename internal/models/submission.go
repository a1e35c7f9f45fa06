package models

import "time"

// Submission records one registration attempt of a product with a
// regulatory authority.
type Submission struct {
	BaseModel
	ProductID          string           `gorm:"type:uuid;not null;index" json:"productId"`
	Authority          Authority        `gorm:"type:varchar(20);not null" json:"authority"`
	Status             SubmissionStatus `gorm:"type:varchar(20);default:'submitted'" json:"status"`
	RegistrationNumber string           `json:"registrationNumber"`
	SubmittedByID      string           `gorm:"type:uuid;not null" json:"submittedById"`
	SubmittedAt        time.Time        `json:"submittedAt"`
	RegisteredAt       *time.Time       `json:"registeredAt,omitempty"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
