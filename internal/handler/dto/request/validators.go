package request

import (
	"room-reservation/internal/domain/reservation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding rules used by the request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("krphone", validateKRPhone); err != nil {
		return err
	}
	return v.RegisterValidation("digits", validateDigits)
}

func validateKRPhone(fl validator.FieldLevel) bool {
	return reservation.IsValidPhone(fl.Field().String())
}

func validateDigits(fl validator.FieldLevel) bool {
	return reservation.IsDigits(fl.Field().String())
}
