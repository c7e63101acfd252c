package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Supported database types
const (
	SqliteDbType   = "sqlite"
	PostgresDbType = "postgres"
	MysqlDbType    = "mysql"
)

// DatabaseSettings holds the connection settings for the article store
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=sqlite postgres mysql"`
	DSN  string `mapstructure:"dsn"`
	// Name is created on demand for postgres when set
	Name string `mapstructure:"name" validate:"omitempty,alphanum"`
}

// Validate checks that the database settings are usable for the selected type
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	// sqlite falls back to an in-memory database
	if s.Type != SqliteDbType && s.DSN == "" {
		return fmt.Errorf("dsn is required for %s databases", s.Type)
	}

	return nil
}
