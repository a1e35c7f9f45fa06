package database

import (
	"encoding/json"
	"time"

	"arportal/internal/auth"
	"arportal/internal/logger"
	"arportal/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seed loads a demo data set: staff accounts, two manufacturers with
// customer logins, products in every lifecycle stage and certificates
// covering all three status bands. Skips silently when users already exist.
func Seed(db *gorm.DB, adminEmail, adminPassword string) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("seed skipped, users already present")
		return nil
	}

	if adminEmail == "" {
		adminEmail = "admin@qbd.com"
	}
	if adminPassword == "" {
		adminPassword = "password123"
	}
	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		admin := &models.User{Email: adminEmail, PasswordHash: hash, FirstName: "Admin", LastName: "User", Role: models.UserRoleAdmin, IsActive: true}
		manager := &models.User{Email: "manager@qbd.com", PasswordHash: hash, FirstName: "Sarah", LastName: "Manager", Role: models.UserRoleEcRepManager, IsActive: true}
		expert := &models.User{Email: "expert@qbd.com", PasswordHash: hash, FirstName: "John", LastName: "Expert", Role: models.UserRoleEcRepExpert, IsActive: true}
		assistant := &models.User{Email: "assistant@qbd.com", PasswordHash: hash, FirstName: "Emily", LastName: "Assistant", Role: models.UserRoleEcRepAssistant, IsActive: true}
		for _, u := range []*models.User{admin, manager, expert, assistant} {
			if err := tx.Create(u).Error; err != nil {
				return err
			}
		}

		acme := &models.Manufacturer{
			Name:      "Acme Medical Devices",
			LegalName: "Acme Medical Devices GmbH",
			Address: jsonDoc(map[string]string{
				"street": "123 Innovation Way", "city": "Munich",
				"country": "Germany", "postalCode": "80331",
			}),
			PrimaryContact: jsonDoc(map[string]string{
				"name": "Hans Mueller", "email": "hans@acme-medical.com", "phone": "+49 89 1234567",
			}),
			AssignedEcRepID: &expert.ID,
			ContractStart:   datePtr(2024, time.January, 1),
			ContractEnd:     datePtr(2026, time.December, 31),
			Status:          models.ManufacturerStatusActive,
		}
		acme.SetServices([]string{"EC-REP", "CH-REP"})

		biotech := &models.Manufacturer{
			Name:      "BioTech Instruments",
			LegalName: "BioTech Instruments Inc.",
			Address: jsonDoc(map[string]string{
				"street": "456 Science Park", "city": "Boston",
				"country": "USA", "postalCode": "02108",
			}),
			PrimaryContact: jsonDoc(map[string]string{
				"name": "Jennifer Smith", "email": "jsmith@biotech-inst.com", "phone": "+1 617 555 1234",
			}),
			AssignedEcRepID: &assistant.ID,
			ContractStart:   datePtr(2024, time.June, 1),
			ContractEnd:     datePtr(2027, time.May, 31),
			Status:          models.ManufacturerStatusActive,
		}
		biotech.SetServices([]string{"EC-REP", "UKRP"})

		for _, m := range []*models.Manufacturer{acme, biotech} {
			if err := tx.Create(m).Error; err != nil {
				return err
			}
		}

		acmeCustomer := &models.User{Email: "customer@acme-medical.com", PasswordHash: hash, FirstName: "Hans", LastName: "Mueller", Role: models.UserRoleCustomer, ManufacturerID: &acme.ID, IsActive: true}
		biotechCustomer := &models.User{Email: "customer@biotech-inst.com", PasswordHash: hash, FirstName: "Jennifer", LastName: "Smith", Role: models.UserRoleCustomer, ManufacturerID: &biotech.ID, IsActive: true}
		for _, u := range []*models.User{acmeCustomer, biotechCustomer} {
			if err := tx.Create(u).Error; err != nil {
				return err
			}
		}

		cardioMonitor := seedProduct(acme.ID, "CardioMonitor X1", "4260456789012", models.DeviceTypeMD, models.ClassificationIIa, models.RegulationMDR,
			"Continuous cardiac monitoring for hospital use", models.ProductStatusRegistered)
		cardioMonitor2 := seedProduct(acme.ID, "CardioMonitor X2 Pro", "4260456789029", models.DeviceTypeMD, models.ClassificationIIa, models.RegulationMDR,
			"Advanced cardiac monitoring with AI-assisted analysis", models.ProductStatusUnderReview)
		surgicalKit := seedProduct(acme.ID, "SurgicalKit Pro", "4260456789036", models.DeviceTypeMD, models.ClassificationIIb, models.RegulationMDR,
			"Sterile surgical instrument kit for general surgery", models.ProductStatusDraft)
		bloodAnalyzer := seedProduct(biotech.ID, "BloodAnalyzer Pro", "0860123456789", models.DeviceTypeIVD, models.ClassificationB, models.RegulationIVDR,
			"In vitro diagnostic device for blood cell analysis", models.ProductStatusDraft)

		for _, p := range []*models.Product{cardioMonitor, cardioMonitor2, surgicalKit, bloodAnalyzer} {
			if err := tx.Create(p).Error; err != nil {
				return err
			}
		}

		documents := []*models.Document{
			{
				ProductID: cardioMonitor.ID, DocumentType: models.DocumentTypeDoC,
				Name: "Declaration of Conformity - CardioMonitor X1", Version: "1.0",
				FileURL: acme.ID + "/" + cardioMonitor.ID + "/doc-cardio-x1.pdf", FileSize: 245000,
				MimeType: "application/pdf", Status: models.DocumentStatusApproved,
				UploadedByID: acmeCustomer.ID, ReviewedByID: &expert.ID,
				ReviewNotes: "Compliant with MDR requirements",
			},
			{
				ProductID: cardioMonitor.ID, DocumentType: models.DocumentTypeIFU,
				Name: "Instructions for Use - CardioMonitor X1", Version: "2.1",
				FileURL: acme.ID + "/" + cardioMonitor.ID + "/ifu-cardio-x1.pdf", FileSize: 1245000,
				MimeType: "application/pdf", Status: models.DocumentStatusApproved,
				UploadedByID: acmeCustomer.ID, ReviewedByID: &expert.ID,
			},
			{
				ProductID: cardioMonitor2.ID, DocumentType: models.DocumentTypeDoC,
				Name: "Declaration of Conformity - CardioMonitor X2", Version: "1.0",
				FileURL: acme.ID + "/" + cardioMonitor2.ID + "/doc-cardio-x2.pdf", FileSize: 256000,
				MimeType: "application/pdf", Status: models.DocumentStatusPendingReview,
				UploadedByID: acmeCustomer.ID,
			},
			{
				ProductID: cardioMonitor2.ID, DocumentType: models.DocumentTypeIFU,
				Name: "Instructions for Use - CardioMonitor X2", Version: "1.0",
				FileURL: acme.ID + "/" + cardioMonitor2.ID + "/ifu-cardio-x2.pdf", FileSize: 1567000,
				MimeType: "application/pdf", Status: models.DocumentStatusNeedsRevision,
				UploadedByID: acmeCustomer.ID, ReviewedByID: &expert.ID,
				ReviewNotes: "Missing CE marking on page 3. Please update and resubmit.",
			},
		}
		for _, d := range documents {
			if err := tx.Create(d).Error; err != nil {
				return err
			}
		}

		now := time.Now()
		certificates := []*models.Certificate{
			{
				ManufacturerID: acme.ID, CertificateType: models.CertificateTypeISO13485,
				Issuer: "TUV SUD", CertificateNumber: "Q1 123456",
				IssueDate: date(2023, time.June, 15), ExpiryDate: now.Add(28 * 24 * time.Hour),
				Status: models.CertificateStatusExpiringSoon,
			},
			{
				ManufacturerID: acme.ID, CertificateType: models.CertificateTypeNBCertificate,
				Issuer: "BSI", CertificateNumber: "CE 123456",
				IssueDate: date(2024, time.January, 10), ExpiryDate: date(2029, time.January, 9),
				Status: models.CertificateStatusValid,
			},
			{
				ManufacturerID: acme.ID, CertificateType: models.CertificateTypeInsurance,
				Issuer: "Allianz", CertificateNumber: "INS-2024-78901",
				IssueDate: date(2024, time.January, 1), ExpiryDate: now.Add(-30 * 24 * time.Hour),
				Status: models.CertificateStatusExpired, ExpiryAlertSentAt: &now,
			},
			{
				ManufacturerID: biotech.ID, CertificateType: models.CertificateTypeISO13485,
				Issuer: "SGS", CertificateNumber: "US-456789",
				IssueDate: date(2024, time.March, 1), ExpiryDate: date(2027, time.February, 28),
				Status: models.CertificateStatusValid,
			},
		}
		for _, c := range certificates {
			if err := tx.Create(c).Error; err != nil {
				return err
			}
		}

		registeredAt := date(2024, time.March, 1)
		submission := &models.Submission{
			ProductID: cardioMonitor.ID, Authority: models.AuthorityEUDAMED,
			Status: models.SubmissionStatusRegistered, RegistrationNumber: "EU-MD-2024-001234",
			SubmittedByID: expert.ID, SubmittedAt: date(2024, time.February, 15),
			RegisteredAt: &registeredAt,
		}
		if err := tx.Create(submission).Error; err != nil {
			return err
		}

		logger.Info("seed completed", "admin", adminEmail)
		return nil
	})
}

func seedProduct(manufacturerID, name, udiDi string, deviceType models.DeviceType, classification models.Classification, regulation models.Regulation, purpose string, status models.ProductStatus) *models.Product {
	return &models.Product{
		ManufacturerID:       manufacturerID,
		Name:                 name,
		UdiDi:                udiDi,
		DeviceType:           &deviceType,
		Classification:       &classification,
		ApplicableRegulation: &regulation,
		IntendedPurpose:      purpose,
		Status:               status,
	}
}

func jsonDoc(v interface{}) datatypes.JSON {
	data, _ := json.Marshal(v)
	return data
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := date(year, month, day)
	return &t
}
