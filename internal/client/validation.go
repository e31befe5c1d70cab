package client

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validatePayload checks struct tags before any request is issued.
func validatePayload(op string, payload any) error {
	if err := validate.Struct(payload); err != nil {
		return fmt.Errorf("%s: invalid payload: %w", op, err)
	}
	return nil
}
