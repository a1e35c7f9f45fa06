// Package scope derives tenant-isolation query predicates from the caller's
// claims. Every list, read, update and archive path for tenant-owned data
// must go through one of these scopes or through CheckManufacturerAccess;
// a path that skips them is a tenant-isolation bug.
package scope

import (
	"arportal/internal/auth"
	"arportal/internal/models"
	"arportal/pkg/apperrors"

	"gorm.io/gorm"
)

// GormScope is a query predicate applied via db.Scopes(...).
type GormScope func(*gorm.DB) *gorm.DB

func identity(db *gorm.DB) *gorm.DB { return db }

// resolve decides the effective manufacturer restriction for the caller.
// Customers are forced onto their own manufacturer; staff roles are
// unrestricted but may opt into a narrowing filter.
func resolve(claims *auth.Claims, filter string) (string, error) {
	if claims.Role == models.UserRoleCustomer {
		if claims.ManufacturerID == "" {
			return "", apperrors.ErrNoManufacturer
		}
		if filter != "" && filter != claims.ManufacturerID {
			return "", apperrors.ErrOtherManufacturer
		}
		return claims.ManufacturerID, nil
	}
	return filter, nil
}

// ForManufacturers scopes a Manufacturer query.
func ForManufacturers(claims *auth.Claims, filter string) (GormScope, error) {
	id, err := resolve(claims, filter)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return identity, nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("manufacturers.id = ?", id)
	}, nil
}

// ForProducts scopes a Product query (direct column).
func ForProducts(claims *auth.Claims, filter string) (GormScope, error) {
	id, err := resolve(claims, filter)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return identity, nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("products.manufacturer_id = ?", id)
	}, nil
}

// ForCertificates scopes a Certificate query (direct column).
func ForCertificates(claims *auth.Claims, filter string) (GormScope, error) {
	id, err := resolve(claims, filter)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return identity, nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("certificates.manufacturer_id = ?", id)
	}, nil
}

// ForDocuments scopes a Document query through its product.
func ForDocuments(claims *auth.Claims, filter string) (GormScope, error) {
	id, err := resolve(claims, filter)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return identity, nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN products ON products.id = documents.product_id").
			Where("products.manufacturer_id = ?", id)
	}, nil
}

// ForSubmissions scopes a Submission query through its product.
func ForSubmissions(claims *auth.Claims, filter string) (GormScope, error) {
	id, err := resolve(claims, filter)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return identity, nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN products ON products.id = submissions.product_id").
			Where("products.manufacturer_id = ?", id)
	}, nil
}

// CheckManufacturerAccess verifies that the caller may touch an entity owned
// by targetManufacturerID. Staff roles always pass; customers pass only for
// their own manufacturer.
func CheckManufacturerAccess(claims *auth.Claims, targetManufacturerID string) error {
	if claims.Role != models.UserRoleCustomer {
		return nil
	}
	if claims.ManufacturerID == "" {
		return apperrors.ErrNoManufacturer
	}
	if claims.ManufacturerID != targetManufacturerID {
		return apperrors.ErrOtherManufacturer
	}
	return nil
}
