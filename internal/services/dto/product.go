package dto

type ProductListQuery struct {
	PageQuery
	ManufacturerID string `form:"manufacturerId" validate:"omitempty,uuid"`
	Status         string `form:"status" validate:"omitempty,is-product-status"`
	DeviceType     string `form:"deviceType" validate:"omitempty,oneof=MD IVD"`
	Search         string `form:"search"`
}

type CreateProductRequest struct {
	ManufacturerID  string                 `json:"manufacturerId" validate:"omitempty,uuid"`
	Name            string                 `json:"name" validate:"required"`
	UdiDi           string                 `json:"udiDi" validate:"omitempty,udi_di"`
	DeviceType      string                 `json:"deviceType" validate:"omitempty,oneof=MD IVD"`
	Classification  string                 `json:"classification" validate:"omitempty,oneof=I IIa IIb III A B C D"`
	Regulation      string                 `json:"applicableRegulation" validate:"omitempty,oneof=MDR IVDR MDD IVDD"`
	IntendedPurpose string                 `json:"intendedPurpose"`
	Metadata        map[string]interface{} `json:"metadata"`
}

type UpdateProductRequest struct {
	Name            *string                `json:"name" validate:"omitempty,min=1"`
	UdiDi           *string                `json:"udiDi" validate:"omitempty,udi_di"`
	DeviceType      *string                `json:"deviceType" validate:"omitempty,oneof=MD IVD"`
	Classification  *string                `json:"classification" validate:"omitempty,oneof=I IIa IIb III A B C D"`
	Regulation      *string                `json:"applicableRegulation" validate:"omitempty,oneof=MDR IVDR MDD IVDD"`
	IntendedPurpose *string                `json:"intendedPurpose"`
	Status          *string                `json:"status" validate:"omitempty,is-product-status"`
	Metadata        map[string]interface{} `json:"metadata"`
}
