package dto

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

type ManufacturerListQuery struct {
	PageQuery
	Status string `form:"status"`
	Search string `form:"search"`
}

type CreateManufacturerRequest struct {
	Name            string   `json:"name" validate:"required"`
	LegalName       string   `json:"legalName" validate:"required"`
	Address         *Address `json:"address"`
	PrimaryContact  *Contact `json:"primaryContact"`
	Services        []string `json:"services"`
	AssignedEcRepID string   `json:"assignedEcRepId" validate:"omitempty,uuid"`
	ContractStart   string   `json:"contractStart" validate:"omitempty,datetime=2006-01-02"`
	ContractEnd     string   `json:"contractEnd" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateManufacturerRequest struct {
	Name            *string  `json:"name" validate:"omitempty,min=1"`
	LegalName       *string  `json:"legalName" validate:"omitempty,min=1"`
	Address         *Address `json:"address"`
	PrimaryContact  *Contact `json:"primaryContact"`
	Services        []string `json:"services"`
	AssignedEcRepID *string  `json:"assignedEcRepId" validate:"omitempty,uuid"`
	ContractStart   *string  `json:"contractStart" validate:"omitempty,datetime=2006-01-02"`
	ContractEnd     *string  `json:"contractEnd" validate:"omitempty,datetime=2006-01-02"`
	Status          *string  `json:"status" validate:"omitempty,oneof=active inactive suspended"`
}
