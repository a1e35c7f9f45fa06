package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	lookAhead := 28 * 24 * time.Hour

	tests := []struct {
		name   string
		expiry time.Time
		want   CertificateStatus
	}{
		{"expired long ago", now.AddDate(-1, 0, 0), CertificateStatusExpired},
		{"expires exactly now", now, CertificateStatusExpired},
		{"inside look-ahead window", now.Add(10 * 24 * time.Hour), CertificateStatusExpiringSoon},
		{"expires exactly at window edge", now.Add(lookAhead), CertificateStatusExpiringSoon},
		{"well beyond window", now.AddDate(1, 0, 0), CertificateStatusValid},
		{"just past window edge", now.Add(lookAhead + time.Second), CertificateStatusValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Certificate{ExpiryDate: tt.expiry}
			assert.Equal(t, tt.want, c.DeriveStatus(now, lookAhead))
		})
	}
}
