package finanflow

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ValidationError is a user input rejected at the boundary. Nothing has been
// mutated when it is returned.
type ValidationError struct {
	Problems []string
	cause    error
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error { return e.cause }

// rejected returns a ValidationError for a sentinel error.
func rejected(err error) *ValidationError {
	return &ValidationError{Problems: []string{err.Error()}, cause: err}
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// amounts and rates are validated as numbers.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	// report json names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fromValidator converts validator errors into a ValidationError.
func fromValidator(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}
	v := &ValidationError{}
	for _, fe := range errs {
		switch fe.Tag() {
		case "required":
			v.Problems = append(v.Problems, fmt.Sprintf("%s is required", fe.Field()))
		case "gte":
			v.Problems = append(v.Problems, fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param()))
		case "oneof":
			v.Problems = append(v.Problems, fmt.Sprintf("%s must be one of %s, got %q", fe.Field(), fe.Param(), fe.Value()))
		default:
			v.Problems = append(v.Problems, fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag()))
		}
	}
	return v
}

// ValidateTransaction checks the fields a form requires before a transaction
// is created or updated.
func ValidateTransaction(tx Transaction) error {
	var problems []string
	if err := validate.Struct(tx); err != nil {
		verr := fromValidator(err)
		v, ok := verr.(*ValidationError)
		if !ok {
			return verr
		}
		problems = append(problems, v.Problems...)
	}
	if tx.Date.IsZero() {
		problems = append(problems, "date is required")
	}
	if tx.DueDate.IsZero() {
		problems = append(problems, "dueDate is required")
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// ValidateReceiver checks a receiver before it is registered.
func ValidateReceiver(r Receiver) error {
	if err := validate.Struct(r); err != nil {
		return fromValidator(err)
	}
	return nil
}
