package quote

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/quotebank/internal/models"
)

// FieldError describes a single field that failed validation
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationErrors is returned when a request fails validation.
// It matches ErrValidation with errors.Is, and models.ErrEmptyQuote when the
// quote text was missing.
type ValidationErrors []FieldError

// Error implements the error interface
func (v ValidationErrors) Error() string {
	messages := make([]string, len(v))
	for i, fe := range v {
		messages[i] = fe.Message
	}
	return strings.Join(messages, "; ")
}

// Unwrap exposes the sentinel errors this value stands for
func (v ValidationErrors) Unwrap() []error {
	errs := []error{ErrValidation}
	for _, fe := range v {
		if fe.Field == "quote" && fe.Tag == "required" {
			errs = append(errs, models.ErrEmptyQuote)
			break
		}
	}
	return errs
}

// newValidator builds a validator that reports fields by their json names
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct validates s and converts failures into ValidationErrors
func validateStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: msgForTag(fe),
		})
	}
	return out
}

// msgForTag returns a human-readable message for a validation failure
func msgForTag(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		if field == "quote" {
			return models.ErrEmptyQuote.Error()
		}
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
