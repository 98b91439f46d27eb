package hotel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Check-out must fall after check-in
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		req := sl.Current().Interface().(BookingRequest)
		in, errIn := time.Parse(dateLayout, req.CheckIn)
		out, errOut := time.Parse(dateLayout, req.CheckOut)
		if errIn != nil || errOut != nil {
			return
		}
		if !out.After(in) {
			sl.ReportError(req.CheckOut, "CheckOut", "check_out", "after_check_in", "")
		}
	}, BookingRequest{})

	return v
}

// ValidationError lists the fields of a payload that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s", strings.Join(e.Fields, ", "))
}

// Validate checks a form payload before it is sent.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return &ValidationError{Fields: fields}
}
