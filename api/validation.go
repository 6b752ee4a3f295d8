// Package api is the HTTP transport layer: gin handlers, request binding and
// middleware. It shapes requests and responses only; every business rule
// lives in the service package.
package api

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"go-bankwebapp/models"
)

// RegisterValidations installs the "city" and "currency" rules on gin's
// binding engine so that request bodies carrying values outside the closed
// enum sets are rejected at bind time.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("city", validCity); err != nil {
		return fmt.Errorf("failed to register city validation: %w", err)
	}
	if err := v.RegisterValidation("currency", validCurrency); err != nil {
		return fmt.Errorf("failed to register currency validation: %w", err)
	}
	return nil
}

func validCity(fl validator.FieldLevel) bool {
	return models.City(fl.Field().String()).Valid()
}

func validCurrency(fl validator.FieldLevel) bool {
	return models.Currency(fl.Field().String()).Valid()
}
