package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

type GoPlaygroundValidator struct {
	v *validator.Validate
}

var _ Validator = (*GoPlaygroundValidator)(nil)

func NewGoPlaygroundValidator() *GoPlaygroundValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their json names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation(tagMaxBytes, maxBytes); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tagMaxBytes, err))
	}

	return &GoPlaygroundValidator{
		v: v,
	}
}

// tagMaxBytes limits the UTF-8 encoded length of a string, unlike max which counts runes.
const tagMaxBytes = "maxbytes"

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// ValidateStruct returns a field name to message map, or nil when s is valid.
func (va *GoPlaygroundValidator) ValidateStruct(s any) map[string]string {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return map[string]string{"payload": err.Error()}
	}

	errMap := make(map[string]string, len(valErrs))
	for _, e := range valErrs {
		errMap[e.Field()] = validationMessage(e)
	}

	return errMap
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", e.Field(), e.Param())
	case tagMaxBytes:
		return fmt.Sprintf("%s must be at most %s bytes long", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), strings.ReplaceAll(e.Param(), " ", ", "))
	case "eqfield":
		return fmt.Sprintf("%s should match %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
