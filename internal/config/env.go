package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	geminiKey := os.Getenv("GEMINI_API_KEY")
	connStr := os.Getenv("DATABASE_CONNECTION_STRING")
	jwtSecret := os.Getenv("JWT_SECRET")
	baseURL := os.Getenv("BASE_URL")
	environment := os.Getenv("ENVIRONMENT")

	if geminiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	if connStr == "" {
		return nil, fmt.Errorf("DATABASE_CONNECTION_STRING environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	if environment == "" {
		environment = "development"
	}

	return &Config{
		DatabaseConnString: connStr,
		GeminiAPIKey:       geminiKey,
		JWTSecret:          jwtSecret,
		BaseURL:            baseURL,
		Environment:        environment,
	}, nil
}
