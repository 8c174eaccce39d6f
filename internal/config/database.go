package config

import (
	"fmt"
	"strings"
)

// Database drivers supported by the service.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DatabaseConfig holds database connection configuration.
// The default store is an embedded SQLite file; PostgreSQL can be
// selected for deployments that already run one.
type DatabaseConfig struct {
	// Driver selects the store backend (sqlite or postgres).
	Driver string
	// Path is the SQLite database file path.
	Path string
	// SeedPath is the JSON data file used for seeding and bulk reload.
	SeedPath string

	// PostgreSQL connection settings, used only when Driver is postgres.
	Host     string
	User     string
	Password string
	DBName   string
	Port     string
	SSLMode  string
	TimeZone string
}

// LoadDatabaseConfigFromEnv loads database configuration from environment variables.
func LoadDatabaseConfigFromEnv() DatabaseConfig {
	return DatabaseConfig{
		Driver:   GetEnv("DB_DRIVER", DriverSQLite),
		Path:     GetEnv("DB_PATH", "masters.db"),
		SeedPath: GetEnv("SEED_DATA_PATH", "masters_data.json"),
		Host:     GetEnv("DB_HOST", "localhost"),
		User:     GetEnv("DB_USER", "postgres"),
		Password: GetEnv("DB_PASSWORD", "postgres"),
		DBName:   GetEnv("DB_NAME", "masters"),
		Port:     GetEnv("DB_PORT", "5432"),
		SSLMode:  GetEnv("DB_SSLMODE", "disable"),
		TimeZone: GetEnv("DB_TIMEZONE", "UTC"),
	}
}

// BuildDSN constructs the PostgreSQL DSN string from configuration.
func (c DatabaseConfig) BuildDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.Host, c.User, c.Password, c.DBName, c.Port, c.SSLMode, c.TimeZone)
}

// SanitizeError removes the password from connection error messages.
func (c DatabaseConfig) SanitizeError(err error) error {
	if err == nil {
		return nil
	}
	errMsg := strings.ReplaceAll(err.Error(), c.Password, "***")
	return fmt.Errorf("failed to connect to database: %s", errMsg)
}

// Validate validates database configuration.
func (c DatabaseConfig) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.Path == "" {
			return fmt.Errorf("DB_PATH must not be empty")
		}
	case DriverPostgres:
		if c.Host == "" || c.Port == "" || c.DBName == "" {
			return fmt.Errorf("DB_HOST, DB_PORT and DB_NAME must be set for postgres")
		}
	default:
		return fmt.Errorf("invalid DB_DRIVER: %s (must be: sqlite, postgres)", c.Driver)
	}
	if c.SeedPath == "" {
		return fmt.Errorf("SEED_DATA_PATH must not be empty")
	}
	return nil
}
