package services

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct checks validate tags and reports the first failing field as ErrValidation.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return validationError("%v", err)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return validationError("%s is required", fe.Field())
	case "email":
		return validationError("%s must be a valid email address", fe.Field())
	case "uuid":
		return validationError("%s must be a valid uuid", fe.Field())
	case "min":
		return validationError("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return validationError("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return validationError("%s is invalid", fe.Field())
	}
}
