// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"costmanager/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("cost_category", validateCostCategory)
	}
}

// validateCostCategory accepts only the fixed report categories. It is bound
// to read-side filters; the write path intentionally accepts any category.
func validateCostCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).Known()
}
