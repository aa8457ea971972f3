package validator

import (
	"log"

	"agencyportal/internal/models"

	"github.com/go-playground/validator/v10"
)

// RegisterRules installs the custom rules on an external validator
// instance, such as gin's binding engine.
func RegisterRules(v *validator.Validate) {
	registerCustomRules(v)
}

// registerCustomRules installs the closed-enum status rules. Registration
// failure is a startup defect, not a runtime condition.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-model-status", validateModelStatus)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-booking-status", validateBookingStatus)
	mustRegister("is-blog-status", validateBlogStatus)
	mustRegister("is-blog-category", validateBlogCategory)
}

func validateModelStatus(fl validator.FieldLevel) bool {
	return models.ModelStatus(fl.Field().String()).IsValid()
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	return models.ApplicationStatus(fl.Field().String()).IsValid()
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	return models.BookingStatus(fl.Field().String()).IsValid()
}

func validateBlogStatus(fl validator.FieldLevel) bool {
	return models.BlogStatus(fl.Field().String()).IsValid()
}

func validateBlogCategory(fl validator.FieldLevel) bool {
	return models.BlogCategory(fl.Field().String()).IsValid()
}
