package dto

import "mime/multipart"

type DocumentListQuery struct {
	PageQuery
	ProductID      string `form:"productId" validate:"omitempty,uuid"`
	ManufacturerID string `form:"manufacturerId" validate:"omitempty,uuid"`
	Status         string `form:"status" validate:"omitempty,is-document-status"`
	DocumentType   string `form:"documentType" validate:"omitempty,is-document-type"`
}

// UploadDocumentRequest is bound from a multipart form; File is attached by
// the handler.
type UploadDocumentRequest struct {
	ProductID    string                `form:"productId" validate:"required,uuid"`
	DocumentType string                `form:"documentType" validate:"required,is-document-type"`
	Name         string                `form:"name" validate:"required"`
	Version      string                `form:"version"`
	File         *multipart.FileHeader `form:"-" validate:"-"`
}

type UpdateDocumentRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Version *string `json:"version"`
}

type ReviewDocumentRequest struct {
	Status      string `json:"status" validate:"required,is-document-status"`
	ReviewNotes string `json:"reviewNotes"`
}

// ReplaceDocumentRequest accompanies the replacement file upload.
type ReplaceDocumentRequest struct {
	ChangesSummary string                `form:"changesSummary"`
	Version        string                `form:"version"`
	File           *multipart.FileHeader `form:"-" validate:"-"`
}
