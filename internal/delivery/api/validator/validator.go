// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"storefront/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a validator that reports fields by their JSON names
func New() echo.Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validator: v}
}

// Validate validates a request struct
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// FieldErrors flattens validation errors into messages keyed by field path, e.g. "members.0.age".
// It returns nil when err carries no field errors.
func FieldErrors(err error) map[string]string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		path := fieldPath(fe.Namespace())
		if _, exists := out[path]; !exists {
			out[path] = message(fe)
		}
	}

	return out
}

// fieldPath drops the root struct name and rewrites "members[0].age" as "members.0.age".
func fieldPath(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		rest = namespace
	}

	return strings.NewReplacer("[", ".", "]", "").Replace(rest)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	case "e164":
		return "must be a phone number in E.164 format"
	case "startswith":
		return "must start with " + fe.Param()
	case "numeric":
		return "must contain only digits"
	default:
		return "is invalid"
	}
}
