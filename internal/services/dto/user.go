package dto

type UserListQuery struct {
	PageQuery
	Role           string `form:"role" validate:"omitempty,is-user-role"`
	ManufacturerID string `form:"manufacturerId" validate:"omitempty,uuid"`
}

type CreateUserRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Role           string `json:"role" validate:"required,is-user-role"`
	ManufacturerID string `json:"manufacturerId" validate:"omitempty,uuid"`
}

type UpdateUserRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1"`
	Role      *string `json:"role" validate:"omitempty,is-user-role"`
	IsActive  *bool   `json:"isActive"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}
