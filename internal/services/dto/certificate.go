package dto

type CertificateListQuery struct {
	PageQuery
	ManufacturerID  string `form:"manufacturerId" validate:"omitempty,uuid"`
	CertificateType string `form:"certificateType" validate:"omitempty,oneof=ISO_13485 NB_Certificate Insurance DoC"`
	Status          string `form:"status" validate:"omitempty,oneof=valid expiring_soon expired"`
}

type CreateCertificateRequest struct {
	CertificateType   string `json:"certificateType" validate:"required,oneof=ISO_13485 NB_Certificate Insurance DoC"`
	Issuer            string `json:"issuer" validate:"required"`
	CertificateNumber string `json:"certificateNumber" validate:"required"`
	IssueDate         string `json:"issueDate" validate:"required,datetime=2006-01-02"`
	ExpiryDate        string `json:"expiryDate" validate:"required,datetime=2006-01-02"`
}

type UpdateCertificateRequest struct {
	Issuer            *string `json:"issuer" validate:"omitempty,min=1"`
	CertificateNumber *string `json:"certificateNumber" validate:"omitempty,min=1"`
	IssueDate         *string `json:"issueDate" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate        *string `json:"expiryDate" validate:"omitempty,datetime=2006-01-02"`
}
