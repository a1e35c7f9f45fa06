package models

type UserRole string
type ManufacturerStatus string
type ProductStatus string
type DeviceType string
type Classification string
type Regulation string
type DocumentType string
type DocumentStatus string
type CertificateType string
type CertificateStatus string
type Authority string
type SubmissionStatus string
type AuditAction string

const (
	UserRoleCustomer        UserRole = "customer"
	UserRoleEcRepAssistant  UserRole = "ec_rep_assistant"
	UserRoleEcRepExpert     UserRole = "ec_rep_expert"
	UserRoleEcRepManager    UserRole = "ec_rep_manager"
	UserRoleAdmin           UserRole = "admin"

	ManufacturerStatusActive    ManufacturerStatus = "active"
	ManufacturerStatusInactive  ManufacturerStatus = "inactive"
	ManufacturerStatusSuspended ManufacturerStatus = "suspended"

	ProductStatusDraft        ProductStatus = "draft"
	ProductStatusUnderReview  ProductStatus = "under_review"
	ProductStatusRegistered   ProductStatus = "registered"
	ProductStatusDiscontinued ProductStatus = "discontinued"

	DeviceTypeMD  DeviceType = "MD"
	DeviceTypeIVD DeviceType = "IVD"

	// MD classes per MDR Annex VIII, IVD classes per IVDR Annex VIII.
	ClassificationI   Classification = "I"
	ClassificationIIa Classification = "IIa"
	ClassificationIIb Classification = "IIb"
	ClassificationIII Classification = "III"
	ClassificationA   Classification = "A"
	ClassificationB   Classification = "B"
	ClassificationC   Classification = "C"
	ClassificationD   Classification = "D"

	RegulationMDR  Regulation = "MDR"
	RegulationIVDR Regulation = "IVDR"
	RegulationMDD  Regulation = "MDD"
	RegulationIVDD Regulation = "IVDD"

	DocumentTypeDoC          DocumentType = "DoC"
	DocumentTypeIFU          DocumentType = "IFU"
	DocumentTypeLabel        DocumentType = "Label"
	DocumentTypeTechnicalDoc DocumentType = "TechnicalDoc"
	DocumentTypeCertificate  DocumentType = "Certificate"

	DocumentStatusPendingReview DocumentStatus = "pending_review"
	DocumentStatusUnderReview   DocumentStatus = "under_review"
	DocumentStatusNeedsRevision DocumentStatus = "needs_revision"
	DocumentStatusApproved      DocumentStatus = "approved"
	DocumentStatusRejected      DocumentStatus = "rejected"
	DocumentStatusArchived      DocumentStatus = "archived"

	CertificateTypeISO13485      CertificateType = "ISO_13485"
	CertificateTypeNBCertificate CertificateType = "NB_Certificate"
	CertificateTypeInsurance     CertificateType = "Insurance"
	CertificateTypeDoC           CertificateType = "DoC"

	CertificateStatusValid        CertificateStatus = "valid"
	CertificateStatusExpiringSoon CertificateStatus = "expiring_soon"
	CertificateStatusExpired      CertificateStatus = "expired"

	AuthorityEUDAMED    Authority = "EUDAMED"
	AuthoritySwissdamed Authority = "Swissdamed"
	AuthorityMHRA       Authority = "MHRA"

	SubmissionStatusSubmitted  SubmissionStatus = "submitted"
	SubmissionStatusRegistered SubmissionStatus = "registered"

	AuditActionCreate       AuditAction = "create"
	AuditActionUpdate       AuditAction = "update"
	AuditActionDelete       AuditAction = "delete"
	AuditActionStatusChange AuditAction = "status_change"
	AuditActionLogin        AuditAction = "login"
)

// AllUserRoles lists every recognized role.
var AllUserRoles = []UserRole{
	UserRoleCustomer,
	UserRoleEcRepAssistant,
	UserRoleEcRepExpert,
	UserRoleEcRepManager,
	UserRoleAdmin,
}

func (r UserRole) Valid() bool {
	for _, role := range AllUserRoles {
		if r == role {
			return true
		}
	}
	return false
}

func (s ProductStatus) Valid() bool {
	switch s {
	case ProductStatusDraft, ProductStatusUnderReview, ProductStatusRegistered, ProductStatusDiscontinued:
		return true
	}
	return false
}

func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentStatusPendingReview, DocumentStatusUnderReview, DocumentStatusNeedsRevision,
		DocumentStatusApproved, DocumentStatusRejected, DocumentStatusArchived:
		return true
	}
	return false
}

func (t DocumentType) Valid() bool {
	switch t {
	case DocumentTypeDoC, DocumentTypeIFU, DocumentTypeLabel, DocumentTypeTechnicalDoc, DocumentTypeCertificate:
		return true
	}
	return false
}

func (a Authority) Valid() bool {
	switch a {
	case AuthorityEUDAMED, AuthoritySwissdamed, AuthorityMHRA:
		return true
	}
	return false
}
