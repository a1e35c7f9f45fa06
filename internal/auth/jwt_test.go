package auth

import (
	"testing"
	"time"

	"arportal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser(role models.UserRole, manufacturerID string) *models.User {
	u := &models.User{Role: role}
	u.ID = "2b7f5dbe-8e59-4885-b6a5-6f30f4a9d611"
	if manufacturerID != "" {
		u.ManufacturerID = &manufacturerID
	}
	return u
}

func TestIssueAndParse(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue(testUser(models.UserRoleCustomer, "mfr-1"))
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "2b7f5dbe-8e59-4885-b6a5-6f30f4a9d611", claims.UserID)
	assert.Equal(t, models.UserRoleCustomer, claims.Role)
	assert.Equal(t, "mfr-1", claims.ManufacturerID)
}

func TestParseStaffTokenHasNoManufacturer(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue(testUser(models.UserRoleEcRepExpert, ""))
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Empty(t, claims.ManufacturerID)
}

func TestParseExpiredToken(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)

	token, err := m.Issue(testUser(models.UserRoleAdmin, ""))
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue(testUser(models.UserRoleAdmin, ""))
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	_, err := m.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
