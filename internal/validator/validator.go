package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// categoryRegex matches valid category slugs: lowercase alphanumeric with
// hyphens, no leading/trailing/consecutive hyphens (e.g. "skincare",
// "hair-care").
var categoryRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// validateCategory validates that a string is a valid category slug
func validateCategory(fl validator.FieldLevel) bool {
	return categoryRegex.MatchString(fl.Field().String())
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("category", validateCategory)
	}
}
