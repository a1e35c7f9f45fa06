package workers

import (
	"context"
	"time"

	"arportal/internal/email"
	"arportal/internal/logger"
	"arportal/internal/models"
	"arportal/internal/repositories"

	"gorm.io/gorm"
)

// CertificateWorker recomputes derived certificate statuses on a fixed
// interval and mails alerts for certificates entering the expiring_soon or
// expired band. Alert dedup flags on the certificate row keep the worker
// from mailing twice for the same event.
type CertificateWorker struct {
	db              *gorm.DB
	certificateRepo repositories.CertificateRepository
	mailer          email.Provider
	lookAhead       time.Duration
	interval        time.Duration
	alertRecipient  string
}

func NewCertificateWorker(
	db *gorm.DB,
	certificateRepo repositories.CertificateRepository,
	mailer email.Provider,
	lookAhead time.Duration,
	interval time.Duration,
	alertRecipient string,
) *CertificateWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &CertificateWorker{
		db:              db,
		certificateRepo: certificateRepo,
		mailer:          mailer,
		lookAhead:       lookAhead,
		interval:        interval,
		alertRecipient:  alertRecipient,
	}
}

// Start runs the monitoring loop until the context is cancelled. One sweep
// happens immediately at startup.
func (w *CertificateWorker) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.sweep()
		for {
			select {
			case <-ctx.Done():
				logger.Info("certificate worker stopped")
				return
			case <-ticker.C:
				w.sweep()
			}
		}
	}()
}

// sweep recomputes statuses and dispatches pending alerts. Idempotent: a
// rerun over the same data changes nothing and sends nothing.
func (w *CertificateWorker) sweep() {
	now := time.Now()
	deadline := now.Add(w.lookAhead)

	certificates, err := w.certificateRepo.FindExpiringBefore(w.db, deadline)
	if err != nil {
		logger.Error("certificate sweep query failed", "error", err)
		return
	}

	for i := range certificates {
		c := &certificates[i]
		status := c.DeriveStatus(now, w.lookAhead)

		if status != c.Status {
			if err := w.certificateRepo.UpdateStatus(w.db, c.ID, status); err != nil {
				logger.Error("certificate status update failed", "certificate_id", c.ID, "error", err)
				continue
			}
			c.Status = status
		}

		switch status {
		case models.CertificateStatusExpired:
			if c.ExpiryAlertSentAt == nil {
				if w.sendAlert(c, email.TemplateCertificateExpired, "Certificate expired") {
					_ = w.certificateRepo.MarkExpiryAlertSent(w.db, c.ID, now)
				}
			}
		case models.CertificateStatusExpiringSoon:
			if c.ExpiringSoonAlertSentAt == nil {
				if w.sendAlert(c, email.TemplateCertificateExpiringSoon, "Certificate expiring soon") {
					_ = w.certificateRepo.MarkExpiringSoonAlertSent(w.db, c.ID, now)
				}
			}
		}
	}
}

func (w *CertificateWorker) sendAlert(c *models.Certificate, templateName, subject string) bool {
	if w.mailer == nil || w.alertRecipient == "" {
		return false
	}

	manufacturerName := ""
	if c.Manufacturer != nil {
		manufacturerName = c.Manufacturer.Name
	}

	data := email.TemplateData{
		"CertificateNumber": c.CertificateNumber,
		"CertificateType":   string(c.CertificateType),
		"ManufacturerName":  manufacturerName,
		"Issuer":            c.Issuer,
		"ExpiryDate":        c.ExpiryDate.Format("2006-01-02"),
	}

	msg := &email.Email{
		To:      []string{w.alertRecipient},
		Subject: subject,
	}
	if err := w.mailer.SendWithTemplate(templateName, data, msg); err != nil {
		logger.Error("certificate alert mail failed", "certificate_id", c.ID, "error", err)
		return false
	}

	logger.Info("certificate alert sent",
		"certificate_id", c.ID,
		"template", templateName,
		"expiry_date", c.ExpiryDate.Format("2006-01-02"))
	return true
}
