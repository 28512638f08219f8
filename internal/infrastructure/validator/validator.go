package validator

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("notblank", notBlankFL)
	}
}

// notBlank reports whether s has any non-space character.
func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
func notBlankFL(fl validator.FieldLevel) bool {
	return notBlank(fl.Field().String())
}
