package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PostgresDbType represents the PostgreSQL database type
const PostgresDbType = "postgres"

// SqliteDbType represents the SQLite database type
const SqliteDbType = "sqlite"

// DatabaseSettings holds configuration settings for the database connection
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN  string `mapstructure:"dsn" validate:"required"`
	Name string `mapstructure:"name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.Type == PostgresDbType && s.Name == "" {
		return fmt.Errorf("database name is required for postgres")
	}

	return nil
}
