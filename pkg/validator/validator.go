package validator

import (
	"clinic-booking/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// time_slot restricts a field to the fixed bookable slot set.
	v.RegisterValidation("time_slot", func(fl validator.FieldLevel) bool {
		return entity.IsValidSlot(fl.Field().String())
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "datetime":
				errors[field] = field + " must be a valid date"
			case "time_slot":
				errors[field] = field + " must be one of the available time slots"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
