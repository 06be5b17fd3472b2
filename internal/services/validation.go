package services

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"alfredoptarigan/spec-scribe/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct checks validate tags and reports the first violation as a
// *models.ValidationError named after the JSON field.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return models.NewValidationError("invalid request: %v", err)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return models.NewValidationError("%s is required", fe.Field())
	case "oneof":
		return models.NewValidationError("%s must be one of: %s", fe.Field(), fe.Param())
	case "min":
		return models.NewValidationError("%s must contain at least %s item(s)", fe.Field(), fe.Param())
	default:
		return models.NewValidationError("%s is invalid", fe.Field())
	}
}
