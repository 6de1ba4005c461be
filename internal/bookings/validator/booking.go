package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"rechargetravels/pkg/logger"
	"rechargetravels/pkg/model"
)

const dateLayout = "2006-01-02"

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	return &BookingValidator{
		validate: validator.New(),
		logger:   log,
	}
}

func (v *BookingValidator) Validate(booking *model.Booking) error {
	if err := v.validate.Struct(booking); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}

	return v.validateDateRange(booking.CheckInDate, booking.CheckOutDate)
}

func (v *BookingValidator) ValidateUpdate(update *model.BookingUpdate) error {
	if err := v.validate.Struct(update); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}

	return v.validateDateRange(update.CheckInDate, update.CheckOutDate)
}

// validateDateRange checks optional YYYY-MM-DD stay dates. Either bound
// may be absent; when both are set the range must not be inverted.
func (v *BookingValidator) validateDateRange(checkIn, checkOut string) error {
	var in, out time.Time
	var err error

	if checkIn != "" {
		if in, err = time.Parse(dateLayout, checkIn); err != nil {
			return ValidationErrors{{
				Field:   "CheckInDate",
				Message: "check_in_date must be in YYYY-MM-DD format",
			}}
		}
	}
	if checkOut != "" {
		if out, err = time.Parse(dateLayout, checkOut); err != nil {
			return ValidationErrors{{
				Field:   "CheckOutDate",
				Message: "check_out_date must be in YYYY-MM-DD format",
			}}
		}
	}
	if checkIn != "" && checkOut != "" && out.Before(in) {
		return ValidationErrors{{
			Field:   "CheckOutDate",
			Message: "check_out_date cannot be before check_in_date",
		}}
	}
	return nil
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "gte":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "url":
			message = fmt.Sprintf("%s must be a valid URL", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
