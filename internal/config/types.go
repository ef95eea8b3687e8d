package config

// Config holds all runtime configuration for the hairswap server
type Config struct {
	DatabaseConnString string
	GeminiAPIKey       string
	JWTSecret          string
	BaseURL            string
	Environment        string
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
