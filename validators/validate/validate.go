package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var instance = validator.New()

// Struct runs struct tag validation and returns a field -> message map,
// or nil when the value passes.
func Struct(s interface{}) map[string]string {
	err := instance.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request body!"
		return errors
	}

	for _, fieldErr := range validationErrors {
		field := strings.ToLower(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			errors[field] = fmt.Sprintf("%s is required!", strings.Title(field))
		case "email":
			errors[field] = "Invalid email!"
		case "min":
			errors[field] = fmt.Sprintf("%s must be at least %s characters long!", strings.Title(field), fieldErr.Param())
		case "gt":
			errors[field] = fmt.Sprintf("%s must be greater than %s!", strings.Title(field), fieldErr.Param())
		default:
			errors[field] = fmt.Sprintf("%s is invalid!", strings.Title(field))
		}
	}

	return errors
}
