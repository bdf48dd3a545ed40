// Package validator wires go-playground/validator into echo's binding flow.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	domainerrors "bazaar/internal/domain/errors"
)

// echoValidator adapts validator.Validate to echo.Validator.
type echoValidator struct {
	validate *playground.Validate
}

// New constructs the validator used by the echo server.
func New() echo.Validator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and translates failures to the validation
// error of the domain taxonomy.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
