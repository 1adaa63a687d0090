package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// recipient_phone -> Recipient Phone
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

func RequiredField(field string) *AppError {
	return NewField(CodeValidation, field, fmt.Sprintf("%s is required", formatFieldName(field)), http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return NewField(CodeValidation, field, fmt.Sprintf("%s is invalid", formatFieldName(field)), http.StatusBadRequest)
}

func fieldMessage(e validator.FieldError) string {
	name := formatFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return name + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", name, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", name, e.Param())
	case "ymd":
		return name + " must be a date in YYYY-MM-DD format"
	case "email":
		return name + " must be a valid email address"
	default:
		return name + " is invalid"
	}
}

// MapValidationError turns binding errors into a VALIDATION_ERROR keyed by json field.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fields := make(map[string]string, len(errs))
		for _, e := range errs {
			if _, seen := fields[e.Field()]; !seen {
				fields[e.Field()] = fieldMessage(e)
			}
		}
		return &AppError{
			Code:       CodeValidation,
			Message:    fieldMessage(errs[0]),
			HTTPStatus: http.StatusBadRequest,
			Fields:     fields,
		}
	}

	return New(
		CodeValidation,
		"Invalid input",
		http.StatusBadRequest,
	)
}
