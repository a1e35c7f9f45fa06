package dto

type SubmissionListQuery struct {
	PageQuery
	ProductID      string `form:"productId" validate:"omitempty,uuid"`
	ManufacturerID string `form:"manufacturerId" validate:"omitempty,uuid"`
	Authority      string `form:"authority" validate:"omitempty,is-authority"`
	Status         string `form:"status" validate:"omitempty,oneof=submitted registered"`
}

type CreateSubmissionRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Authority string `json:"authority" validate:"required,is-authority"`
}

type RegisterSubmissionRequest struct {
	RegistrationNumber string `json:"registrationNumber" validate:"required"`
}
