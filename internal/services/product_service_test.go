package services

import (
	"testing"

	"arportal/internal/auth"
	"arportal/internal/models"
	"arportal/internal/services/dto"
	"arportal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customerClaims(manufacturerID string) *auth.Claims {
	return &auth.Claims{UserID: "customer-1", Role: models.UserRoleCustomer, ManufacturerID: manufacturerID}
}

func staffClaims(role models.UserRole) *auth.Claims {
	return &auth.Claims{UserID: "staff-1", Role: role}
}

func testMeta() RequestMeta {
	return RequestMeta{UserID: "staff-1", IPAddress: "127.0.0.1", UserAgent: "go-test"}
}

func newProductFixture(repo *mockProductRepo, manufacturerID string, status models.ProductStatus) *models.Product {
	return repo.add(&models.Product{
		ManufacturerID: manufacturerID,
		Name:           "Infusion Pump X1",
		Status:         status,
	})
}

func TestProductCreateForcesDraft(t *testing.T) {
	repo := newMockProductRepo()
	audit := &mockAuditService{}
	svc := NewProductService(repo, audit)

	p, err := svc.Create(nil, customerClaims("mfr-1"), &dto.CreateProductRequest{
		Name:       "Infusion Pump X1",
		DeviceType: "MD",
	}, testMeta())
	require.NoError(t, err)

	assert.Equal(t, models.ProductStatusDraft, p.Status)
	assert.Equal(t, "mfr-1", p.ManufacturerID)
	require.NotNil(t, audit.last())
	assert.Equal(t, models.AuditActionCreate, audit.last().Action)
	assert.Equal(t, "product", audit.last().EntityType)
}

func TestProductCreateCustomerCrossTenantRejected(t *testing.T) {
	svc := NewProductService(newMockProductRepo(), &mockAuditService{})

	_, err := svc.Create(nil, customerClaims("mfr-1"), &dto.CreateProductRequest{
		ManufacturerID: "mfr-2",
		Name:           "Infusion Pump X1",
	}, testMeta())
	assert.ErrorIs(t, err, apperrors.ErrOtherManufacturer)
}

func TestProductCreateStaffNeedsManufacturer(t *testing.T) {
	svc := NewProductService(newMockProductRepo(), &mockAuditService{})

	_, err := svc.Create(nil, staffClaims(models.UserRoleEcRepAssistant), &dto.CreateProductRequest{
		Name: "Infusion Pump X1",
	}, testMeta())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestProductUpdateArchivedRejected(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewProductService(repo, &mockAuditService{})
	p := newProductFixture(repo, "mfr-1", models.ProductStatusDiscontinued)

	name := "Renamed"
	_, err := svc.Update(nil, staffClaims(models.UserRoleEcRepManager), p.ID, &dto.UpdateProductRequest{Name: &name}, testMeta())
	assert.ErrorIs(t, err, apperrors.ErrProductArchived)
}

func TestProductUpdateCannotDiscontinue(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewProductService(repo, &mockAuditService{})
	p := newProductFixture(repo, "mfr-1", models.ProductStatusDraft)

	status := string(models.ProductStatusDiscontinued)
	_, err := svc.Update(nil, staffClaims(models.UserRoleEcRepManager), p.ID, &dto.UpdateProductRequest{Status: &status}, testMeta())
	assert.ErrorIs(t, err, apperrors.ErrArchiveViaUpdate)
}

func TestProductUpdateStatusChangeAudited(t *testing.T) {
	repo := newMockProductRepo()
	audit := &mockAuditService{}
	svc := NewProductService(repo, audit)
	p := newProductFixture(repo, "mfr-1", models.ProductStatusDraft)

	status := string(models.ProductStatusUnderReview)
	updated, err := svc.Update(nil, staffClaims(models.UserRoleEcRepManager), p.ID, &dto.UpdateProductRequest{Status: &status}, testMeta())
	require.NoError(t, err)

	assert.Equal(t, models.ProductStatusUnderReview, updated.Status)
	require.NotNil(t, audit.last())
	assert.Equal(t, models.AuditActionStatusChange, audit.last().Action)
}

func TestProductArchive(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewProductService(repo, &mockAuditService{})
	p := newProductFixture(repo, "mfr-1", models.ProductStatusRegistered)

	archived, err := svc.Archive(nil, staffClaims(models.UserRoleEcRepExpert), p.ID, testMeta())
	require.NoError(t, err)
	assert.Equal(t, models.ProductStatusDiscontinued, archived.Status)

	// Terminal state: a second archive is rejected.
	_, err = svc.Archive(nil, staffClaims(models.UserRoleEcRepExpert), p.ID, testMeta())
	assert.ErrorIs(t, err, apperrors.ErrProductArchived)
}

func TestProductArchiveRequiresExpertTier(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewProductService(repo, &mockAuditService{})
	p := newProductFixture(repo, "mfr-1", models.ProductStatusDraft)

	_, err := svc.Archive(nil, staffClaims(models.UserRoleEcRepAssistant), p.ID, testMeta())
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	_, err = svc.Archive(nil, customerClaims("mfr-1"), p.ID, testMeta())
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestProductGetCrossTenantRejected(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewProductService(repo, &mockAuditService{})
	p := newProductFixture(repo, "mfr-2", models.ProductStatusDraft)

	_, err := svc.GetByID(nil, customerClaims("mfr-1"), p.ID)
	assert.ErrorIs(t, err, apperrors.ErrOtherManufacturer)
}

func TestProductGetNotFound(t *testing.T) {
	svc := NewProductService(newMockProductRepo(), &mockAuditService{})

	_, err := svc.GetByID(nil, staffClaims(models.UserRoleAdmin), "no-such-id")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}
