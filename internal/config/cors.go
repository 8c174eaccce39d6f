package config

// CORSConfig holds cross-origin configuration for the frontend.
type CORSConfig struct {
	// FrontendURL is the allowed frontend origin, or "*" to allow all origins.
	FrontendURL string
}

// LoadCORSConfigFromEnv loads CORS configuration from environment variables.
func LoadCORSConfigFromEnv() CORSConfig {
	return CORSConfig{
		FrontendURL: GetEnv("FRONTEND_URL", "*"),
	}
}

// AllowAllOrigins reports whether every origin is allowed.
func (c CORSConfig) AllowAllOrigins() bool {
	return c.FrontendURL == "*"
}

// AllowedOrigins returns the origin whitelist used when not allowing all.
// Local development on port 3000 is always permitted alongside the
// configured frontend.
func (c CORSConfig) AllowedOrigins() []string {
	return []string{c.FrontendURL, "http://localhost:3000"}
}
