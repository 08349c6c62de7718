// Package validator adapts go-playground/validator to echo's Validator
// interface and converts violations into the domain's structured
// ValidationError with JSON field paths.
package validator

import (
	"reflect"
	"strings"

	domainerrors "vde/internal/domain/errors"
	"vde/internal/errors"
	"vde/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the echo.Validator used by the HTTP server.
func New() echo.Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report field paths with JSON names so error payloads match the wire
	// format, e.g. "subscriber.address.street".
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	validate.RegisterStructValidation(validateOperatorRequirement, usecase.SubmitApplicationInput{})

	return &echoValidator{validate: validate}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if errors.As(err, &violations) {
		return domainerrors.NewValidationError(fieldMap(violations))
	}

	return err
}

// validateOperatorRequirement enforces the conditional rule of the intake
// form: when the operator is not the same party as the subscriber, the
// operator names and a complete operator address are required. The violation
// is reported once, at the "operator" field path.
func validateOperatorRequirement(sl validator.StructLevel) {
	input, ok := sl.Current().Interface().(usecase.SubmitApplicationInput)
	if !ok || input.OperatorSameAsSubscriber {
		return
	}

	if input.Operator == nil ||
		input.Operator.FirstName == "" ||
		input.Operator.LastName == "" ||
		!input.Operator.Address.Complete() {
		sl.ReportError(input.Operator, "operator", "Operator", "operator_required", "")
	}
}

func fieldMap(violations validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(violations))
	for _, violation := range violations {
		// Strip the root struct name from the namespace.
		path := violation.Namespace()
		if idx := strings.Index(path, "."); idx >= 0 {
			path = path[idx+1:]
		}
		fields[path] = messageFor(violation)
	}

	return fields
}

func messageFor(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "oneof":
		return "Must be one of: " + violation.Param()
	case "datetime":
		return "Must be a date in YYYY-MM-DD format"
	case "operator_required":
		return "Operator details are required when operator is different from subscriber"
	default:
		return "Invalid value"
	}
}
