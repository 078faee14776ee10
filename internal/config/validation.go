package config

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and the cross-field rules validator tags
// cannot express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Dialogue.Backend == "gemini" && c.Gemini.APIKey == "" {
		return errors.New("gemini.api_key is required when dialogue.backend is gemini")
	}
	return nil
}
