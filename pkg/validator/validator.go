package validator

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors maps each failing field to a readable message. Nested
// fields are keyed by their dotted path below the top-level struct.
func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	messages := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return messages
	}

	for _, e := range validationErrors {
		field := fieldPath(e.Namespace())
		switch e.Tag() {
		case "required":
			messages[field] = field + " is required"
		case "url":
			messages[field] = field + " must be a valid URL"
		case "numeric":
			messages[field] = field + " must be numeric"
		case "oneof":
			messages[field] = field + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
		case "max":
			if e.Kind().String() == "slice" {
				messages[field] = field + " must have at most " + e.Param() + " items"
			} else {
				messages[field] = field + " must be at most " + e.Param() + " characters"
			}
		case "gt":
			messages[field] = field + " must be greater than " + e.Param()
		case "gte":
			messages[field] = field + " must be greater than or equal to " + e.Param()
		default:
			messages[field] = field + " is invalid"
		}
	}

	return messages
}

func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
