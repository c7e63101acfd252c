package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AuthSettings configures bearer token verification and the admin allow-list
type AuthSettings struct {
	// AppKey signs and verifies HS256 bearer tokens
	AppKey   string        `mapstructure:"app_key" validate:"required,min=16"`
	Issuer   string        `mapstructure:"issuer" validate:"required"`
	TokenTTL time.Duration `mapstructure:"token_ttl" validate:"gt=0"`
	// Admins is read once at startup and never reloaded
	Admins []int64 `mapstructure:"admins" validate:"dive,gt=0"`
}

// Validate checks the token settings and admin identifiers
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	return nil
}
