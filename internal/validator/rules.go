package validator

import (
	"log"

	"arportal/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules registers the portal's custom validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Startup-time misconfiguration; refuse to run.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-product-status", validateProductStatus)
	mustRegister("is-document-status", validateDocumentStatus)
	mustRegister("is-document-type", validateDocumentType)
	mustRegister("is-authority", validateAuthority)
	mustRegister("udi_di", validateUdiDi)
}

// validateUdiDi accepts GS1-style device identifiers: 8 to 14 digits.
func validateUdiDi(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) < 8 || len(value) > 14 {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func validateUserRole(fl validator.FieldLevel) bool {
	return models.UserRole(fl.Field().String()).Valid()
}

func validateProductStatus(fl validator.FieldLevel) bool {
	return models.ProductStatus(fl.Field().String()).Valid()
}

func validateDocumentStatus(fl validator.FieldLevel) bool {
	return models.DocumentStatus(fl.Field().String()).Valid()
}

func validateDocumentType(fl validator.FieldLevel) bool {
	return models.DocumentType(fl.Field().String()).Valid()
}

func validateAuthority(fl validator.FieldLevel) bool {
	return models.Authority(fl.Field().String()).Valid()
}
