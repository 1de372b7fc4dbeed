package pkg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("view", func(fl validator.FieldLevel) bool {
		return View(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("paintype", func(fl validator.FieldLevel) bool {
		return PainType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("sensation", func(fl validator.FieldLevel) bool {
		return Sensation(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		return Duration(fl.Field().String()).Valid()
	})
	return v
}

// ValidationError lists the fields that failed validation.
type ValidationError struct {
	Fields   []string
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// Validate checks a pain point against its field rules.
func (p PainPoint) Validate() error { return validateStruct(p) }

// Validate checks the demographic fields.
func (d Demographics) Validate() error { return validateStruct(d) }

func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, fe.Field())
		out.Messages = append(out.Messages, formatFieldError(fe))
	}
	return out
}

func formatFieldError(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "numeric":
		return fmt.Sprintf("%s must be a number", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is not a recognised value", field)
	}
}
