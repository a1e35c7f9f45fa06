package models

import "time"

// Certificate tracks a manufacturer-level credential (quality system
// certificate, notified-body certificate, insurance). Its status is derived
// from ExpiryDate, never set by user action.
type Certificate struct {
	BaseModel
	ManufacturerID    string          `gorm:"type:uuid;not null;index" json:"manufacturerId"`
	CertificateType   CertificateType   `gorm:"type:varchar(20);not null" json:"certificateType"`
	Issuer            string            `json:"issuer"`
	CertificateNumber string            `json:"certificateNumber"`
	IssueDate         time.Time         `json:"issueDate"`
	ExpiryDate        time.Time         `gorm:"index" json:"expiryDate"`
	Status            CertificateStatus `gorm:"type:varchar(20);default:'valid'" json:"status"`
	// Alert dedup flags so the worker never mails twice for the same event.
	ExpiringSoonAlertSentAt *time.Time `json:"expiringSoonAlertSentAt,omitempty"`
	ExpiryAlertSentAt       *time.Time `json:"expiryAlertSentAt,omitempty"`

	Manufacturer *Manufacturer `gorm:"foreignKey:ManufacturerID" json:"manufacturer,omitempty"`
}

// DeriveStatus classifies the certificate against now using the look-ahead
// window for the expiring_soon band. Idempotent: re-derivable at any time
// from ExpiryDate alone.
func (c *Certificate) DeriveStatus(now time.Time, lookAhead time.Duration) CertificateStatus {
	if !c.ExpiryDate.After(now) {
		return CertificateStatusExpired
	}
	if !c.ExpiryDate.After(now.Add(lookAhead)) {
		return CertificateStatusExpiringSoon
	}
	return CertificateStatusValid
}
