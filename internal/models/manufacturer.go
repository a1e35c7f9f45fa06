package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Manufacturer is a tenant: it owns customer users, products and
// certificates, isolated from every other manufacturer's data.
type Manufacturer struct {
	BaseModel
	Name      string `gorm:"not null;index" json:"name"`
	LegalName string `json:"legalName"`
	// Postal address and primary contact are stored as JSON documents,
	// they are display data and never queried field-by-field.
	Address        datatypes.JSON `gorm:"type:jsonb" json:"address"`
	PrimaryContact datatypes.JSON `gorm:"type:jsonb" json:"primaryContact"`
	// Contracted service roster, e.g. ["EC_REP", "CH_REP", "UKRP"].
	Services        datatypes.JSON     `gorm:"type:jsonb" json:"services"`
	AssignedEcRepID *string            `gorm:"type:uuid" json:"assignedEcRepId,omitempty"`
	ContractStart   *time.Time         `json:"contractStart,omitempty"`
	ContractEnd     *time.Time         `json:"contractEnd,omitempty"`
	Status          ManufacturerStatus `gorm:"type:varchar(20);default:'active'" json:"status"`

	// Relations
	AssignedEcRep *User         `gorm:"foreignKey:AssignedEcRepID" json:"assignedEcRep,omitempty"`
	Products      []Product     `gorm:"foreignKey:ManufacturerID" json:"products,omitempty"`
	Users         []User        `gorm:"foreignKey:ManufacturerID" json:"users,omitempty"`
	Certificates  []Certificate `gorm:"foreignKey:ManufacturerID" json:"certificates,omitempty"`
}

// GetServices returns the service roster as a string slice.
func (m *Manufacturer) GetServices() []string {
	var services []string
	if len(m.Services) > 0 {
		_ = json.Unmarshal(m.Services, &services)
	}
	return services
}

// SetServices stores the service roster.
func (m *Manufacturer) SetServices(services []string) {
	data, _ := json.Marshal(services)
	m.Services = datatypes.JSON(data)
}
