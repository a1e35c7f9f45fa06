package models

import (
	"gorm.io/datatypes"
)

type Product struct {
	BaseModel
	ManufacturerID string `gorm:"type:uuid;not null;index" json:"manufacturerId"`
	Name           string `gorm:"not null" json:"name"`
	// UDI-DI: Unique Device Identifier - Device Identifier.
	UdiDi                string          `gorm:"index" json:"udiDi"`
	DeviceType           *DeviceType     `gorm:"type:varchar(10)" json:"deviceType,omitempty"`
	Classification       *Classification `gorm:"type:varchar(10)" json:"classification,omitempty"`
	ApplicableRegulation *Regulation     `gorm:"type:varchar(10)" json:"applicableRegulation,omitempty"`
	IntendedPurpose      string          `json:"intendedPurpose"`
	Status               ProductStatus   `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	Metadata             datatypes.JSON  `gorm:"type:jsonb" json:"metadata"`

	// Relations
	Manufacturer *Manufacturer `gorm:"foreignKey:ManufacturerID" json:"manufacturer,omitempty"`
	Documents    []Document    `gorm:"foreignKey:ProductID" json:"documents,omitempty"`
	Submissions  []Submission  `gorm:"foreignKey:ProductID" json:"submissions,omitempty"`
}

// Archived reports whether the product reached its terminal state.
func (p *Product) Archived() bool {
	return p.Status == ProductStatusDiscontinued
}
