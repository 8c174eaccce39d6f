package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// AdminConfig holds the single configured admin identity.
type AdminConfig struct {
	// Username is the admin account name.
	Username string
	// Password is the admin password in plain text, as supplied via environment.
	Password string
}

// LoadAdminConfigFromEnv loads the admin identity from environment variables.
func LoadAdminConfigFromEnv() AdminConfig {
	return AdminConfig{
		Username: GetEnv("ADMIN_USERNAME", "admin"),
		Password: GetEnv("ADMIN_PASSWORD", "masters2024!"),
	}
}

// PasswordHash returns the hex-encoded SHA-256 digest of the configured password.
// Credential checks compare digests rather than plain passwords.
func (c AdminConfig) PasswordHash() string {
	sum := sha256.Sum256([]byte(c.Password))
	return hex.EncodeToString(sum[:])
}

// Validate validates admin configuration.
func (c AdminConfig) Validate() error {
	if c.Username == "" {
		return fmt.Errorf("ADMIN_USERNAME must not be empty")
	}
	if c.Password == "" {
		return fmt.Errorf("ADMIN_PASSWORD must not be empty")
	}
	return nil
}
