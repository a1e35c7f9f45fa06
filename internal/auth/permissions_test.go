package auth

import (
	"testing"

	"arportal/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name       string
		role       models.UserRole
		permission string
		want       bool
	}{
		{"admin has wildcard", models.UserRoleAdmin, "documents:review", true},
		{"manager has wildcard", models.UserRoleEcRepManager, "manufacturers:write", true},
		{"expert can review documents", models.UserRoleEcRepExpert, "documents:review", true},
		{"assistant cannot review documents", models.UserRoleEcRepAssistant, "documents:review", false},
		{"assistant can write documents", models.UserRoleEcRepAssistant, "documents:write", true},
		{"customer can read products", models.UserRoleCustomer, "products:read", true},
		{"customer cannot write products", models.UserRoleCustomer, "products:write", false},
		{"customer cannot write submissions", models.UserRoleCustomer, "submissions:write", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.role, tt.permission))
		})
	}
}

func TestHasPermissionUnknownRoleFailsClosed(t *testing.T) {
	assert.False(t, HasPermission(models.UserRole("superuser"), "products:read"))
	assert.False(t, HasPermission(models.UserRole(""), "products:read"))
}

func TestRolePredicates(t *testing.T) {
	assert.True(t, IsStaffRole(models.UserRoleEcRepAssistant))
	assert.True(t, IsStaffRole(models.UserRoleAdmin))
	assert.False(t, IsStaffRole(models.UserRoleCustomer))

	assert.True(t, CanReviewDocuments(models.UserRoleEcRepExpert))
	assert.False(t, CanReviewDocuments(models.UserRoleEcRepAssistant))
	assert.False(t, CanReviewDocuments(models.UserRoleCustomer))

	assert.True(t, CanArchiveProducts(models.UserRoleEcRepExpert))
	assert.False(t, CanArchiveProducts(models.UserRoleEcRepAssistant))

	assert.True(t, CanManageManufacturers(models.UserRoleEcRepManager))
	assert.False(t, CanManageManufacturers(models.UserRoleEcRepExpert))
}
