// Package validation holds the per-entity request validators. Each validator
// collects every field violation into a FieldErrors value instead of
// short-circuiting; an empty result means the request is valid.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a request field to its violation message.
type FieldErrors map[string]string

// Details converts the errors to the shape carried by DomainError.
func (fe FieldErrors) Details() map[string]any {
	details := make(map[string]any, len(fe))
	for field, message := range fe {
		details[field] = message
	}
	return details
}

// nilRequestErrors is the single top-level error for an absent request body.
func nilRequestErrors() FieldErrors {
	return FieldErrors{"request": "request body is required"}
}

func newValidate() *validator.Validate {
	v := validator.New()

	// Report fields by their json names so error maps match the wire shape.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// notblank rejects empty and whitespace-only strings.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// collect translates validator violations into FieldErrors.
func collect(err error) FieldErrors {
	fieldErrors := FieldErrors{}
	if err == nil {
		return fieldErrors
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		fieldErrors["request"] = err.Error()
		return fieldErrors
	}

	for _, violation := range violations {
		fieldErrors[violation.Field()] = message(violation)
	}
	return fieldErrors
}

func message(violation validator.FieldError) string {
	field := violation.Field()
	switch violation.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s cannot be empty", field)
	case "gt":
		if violation.Param() == "0" {
			return fmt.Sprintf("%s cannot be zero or negative", field)
		}
		return fmt.Sprintf("%s must be greater than %s", field, violation.Param())
	case "gte":
		if violation.Param() == "0" {
			return fmt.Sprintf("%s cannot be negative", field)
		}
		return fmt.Sprintf("%s must be at least %s", field, violation.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, violation.Tag())
	}
}
