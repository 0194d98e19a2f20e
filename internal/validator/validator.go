package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired   = "is required"
	ErrIdentifier = "must contain 1 to 64 letters, digits, hyphens or underscores"
	ErrOneOf      = "must be one of: %s"
	ErrMinLength  = "must be at least %s characters long"
	ErrMaxLength  = "must be at most %s characters long"
	ErrMinValue   = "must be greater than or equal to %s"
	ErrMaxValue   = "must be less than or equal to %s"
	ErrCurrency   = "must be an ISO 4217 currency code"
	ErrInvalid    = "is invalid"
)

var identifierRgx = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterTagNameFunc(jsonFieldName)
	validator.RegisterValidation("identifier", validateIdentifier)

	return validator
}

// IsIdentifier reports whether s is a valid cinema, room, movie or screening id.
func IsIdentifier(s string) bool {
	return identifierRgx.MatchString(s)
}

func validateIdentifier(fl validator.FieldLevel) bool {
	return IsIdentifier(fl.Field().String())
}

func jsonFieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}

	return f.Name
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "identifier":
		return ErrIdentifier
	case "oneof":
		return fmt.Sprintf(ErrOneOf, err.Param())
	case "min":
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max":
		if isNumeric(err.Kind()) {
			return fmt.Sprintf(ErrMaxValue, err.Param())
		}
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "gte":
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "lte":
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "iso4217":
		return ErrCurrency
	default:
		return ErrInvalid
	}
}

func isNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
