package services

import (
	"testing"
	"time"

	"arportal/internal/auth"
	"arportal/internal/models"
	"arportal/internal/services/dto"
	"arportal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(users *mockUserRepo) UserService {
	return NewUserService(users, &mockAuditService{})
}

func TestUserCreateRequiresManagerTier(t *testing.T) {
	svc := newUserService(newMockUserRepo())

	_, err := svc.Create(nil, staffClaims(models.UserRoleEcRepExpert), &dto.CreateUserRequest{
		Email:     "new@arportal.example",
		Password:  "s3cret-pass",
		FirstName: "New",
		LastName:  "Expert",
		Role:      string(models.UserRoleEcRepAssistant),
	}, testMeta())
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestUserCreateOnlyAdminMintsAdmin(t *testing.T) {
	users := newMockUserRepo()
	svc := newUserService(users)

	req := &dto.CreateUserRequest{
		Email:     "root@arportal.example",
		Password:  "s3cret-pass",
		FirstName: "Second",
		LastName:  "Admin",
		Role:      string(models.UserRoleAdmin),
	}

	_, err := svc.Create(nil, staffClaims(models.UserRoleEcRepManager), req, testMeta())
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	user, err := svc.Create(nil, staffClaims(models.UserRoleAdmin), req, testMeta())
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, user.Role)
}

func TestUserCreateManufacturerPairing(t *testing.T) {
	svc := newUserService(newMockUserRepo())
	admin := staffClaims(models.UserRoleAdmin)

	// Customers need a manufacturer.
	_, err := svc.Create(nil, admin, &dto.CreateUserRequest{
		Email:     "cust@arportal.example",
		Password:  "s3cret-pass",
		FirstName: "Cust",
		LastName:  "Omer",
		Role:      string(models.UserRoleCustomer),
	}, testMeta())
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)

	// Staff must not carry one.
	_, err = svc.Create(nil, admin, &dto.CreateUserRequest{
		Email:          "staff@arportal.example",
		Password:       "s3cret-pass",
		FirstName:      "Staff",
		LastName:       "Member",
		Role:           string(models.UserRoleEcRepAssistant),
		ManufacturerID: "mfr-1",
	}, testMeta())
	require.Error(t, err)
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestUserGetSelfOrStaffOnly(t *testing.T) {
	users := newMockUserRepo()
	svc := newUserService(users)
	self := users.add(&models.User{Email: "me@acme.example", Role: models.UserRoleCustomer})
	other := users.add(&models.User{Email: "other@acme.example", Role: models.UserRoleCustomer})

	claims := &auth.Claims{UserID: self.ID, Role: models.UserRoleCustomer, ManufacturerID: "mfr-1"}

	got, err := svc.GetByID(nil, claims, self.ID)
	require.NoError(t, err)
	assert.Equal(t, self.ID, got.ID)

	_, err = svc.GetByID(nil, claims, other.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	_, err = svc.GetByID(nil, staffClaims(models.UserRoleEcRepAssistant), other.ID)
	require.NoError(t, err)
}

func TestUserDeactivationKillsSessions(t *testing.T) {
	users := newMockUserRepo()
	svc := newUserService(users)
	user := users.add(&models.User{Email: "user@acme.example", Role: models.UserRoleCustomer, IsActive: true})
	users.refreshTokens["live"] = &models.RefreshToken{
		UserID:    user.ID,
		Token:     "live",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	inactive := false
	updated, err := svc.Update(nil, staffClaims(models.UserRoleEcRepManager), user.ID, &dto.UpdateUserRequest{
		IsActive: &inactive,
	}, testMeta())
	require.NoError(t, err)

	assert.False(t, updated.IsActive)
	assert.Empty(t, users.refreshTokens)
}

func TestChangePassword(t *testing.T) {
	users := newMockUserRepo()
	svc := newUserService(users)

	hash, err := auth.HashPassword("old-password")
	require.NoError(t, err)
	user := users.add(&models.User{Email: "user@acme.example", PasswordHash: hash, Role: models.UserRoleCustomer})
	users.refreshTokens["live"] = &models.RefreshToken{
		UserID:    user.ID,
		Token:     "live",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	claims := &auth.Claims{UserID: user.ID, Role: models.UserRoleCustomer}

	err = svc.ChangePassword(nil, claims, &dto.ChangePasswordRequest{
		CurrentPassword: "wrong-password",
		NewPassword:     "new-password-1",
	})
	assertUnauthorized(t, err)

	err = svc.ChangePassword(nil, claims, &dto.ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "new-password-1",
	})
	require.NoError(t, err)

	assert.True(t, auth.CheckPassword(users.users[user.ID].PasswordHash, "new-password-1"))
	assert.Empty(t, users.refreshTokens)
}
