package dto

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// RegisterValidations adds the custom binding tags used by the request DTOs.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("currency_code", func(fl validator.FieldLevel) bool {
		return currencyCodePattern.MatchString(fl.Field().String())
	})
}

// IsCurrencyCode reports whether code is three upper-case letters.
func IsCurrencyCode(code string) bool {
	return currencyCodePattern.MatchString(code)
}
