package auth

import "arportal/internal/models"

// Wildcard grants every permission.
const PermissionWildcard = "*"

// rolePermissions is the static role -> allowed-actions table. Built once;
// never mutated at runtime.
var rolePermissions = map[models.UserRole][]string{
	models.UserRoleAdmin: {
		PermissionWildcard,
	},
	models.UserRoleEcRepManager: {
		PermissionWildcard,
	},
	models.UserRoleEcRepExpert: {
		"manufacturers:read",
		"products:read",
		"products:write",
		"documents:read",
		"documents:write",
		"documents:review",
		"certificates:read",
		"certificates:write",
		"submissions:read",
		"submissions:write",
	},
	models.UserRoleEcRepAssistant: {
		"manufacturers:read",
		"products:read",
		"documents:read",
		"documents:write",
		"certificates:read",
		"submissions:read",
	},
	models.UserRoleCustomer: {
		"profile:read",
		"profile:write",
		"products:read",
		"documents:read",
		"documents:write",
		"certificates:read",
		"submissions:read",
	},
}

// HasPermission reports whether the role may perform the action. An
// unrecognized role has no permissions (fail closed).
func HasPermission(role models.UserRole, permission string) bool {
	permissions, exists := rolePermissions[role]
	if !exists {
		return false
	}
	for _, p := range permissions {
		if p == PermissionWildcard || p == permission {
			return true
		}
	}
	return false
}

// IsStaffRole reports whether the role belongs to EC-Rep staff or admin.
// Staff roles have global visibility across tenants.
func IsStaffRole(role models.UserRole) bool {
	switch role {
	case models.UserRoleEcRepAssistant, models.UserRoleEcRepExpert,
		models.UserRoleEcRepManager, models.UserRoleAdmin:
		return true
	}
	return false
}

func IsAdmin(role models.UserRole) bool {
	return role == models.UserRoleAdmin
}

// CanReviewDocuments - document review (approve/reject/revise) is restricted
// to expert tier and above; uploaders may never self-approve.
func CanReviewDocuments(role models.UserRole) bool {
	switch role {
	case models.UserRoleEcRepExpert, models.UserRoleEcRepManager, models.UserRoleAdmin:
		return true
	}
	return false
}

// CanArchiveProducts - archival (one-way discontinue) requires expert or above.
func CanArchiveProducts(role models.UserRole) bool {
	return CanReviewDocuments(role)
}

// CanManageManufacturers - manufacturer and user administration requires
// manager or admin.
func CanManageManufacturers(role models.UserRole) bool {
	return role == models.UserRoleEcRepManager || role == models.UserRoleAdmin
}
