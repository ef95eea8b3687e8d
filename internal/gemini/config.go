package gemini

import (
	"fmt"
	"os"
)

const defaultModel = "gemini-2.5-flash-image"

// loadConfig loads Gemini configuration from environment variables
func loadConfig() (*Config, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &Config{
		APIKey: apiKey,
		Model:  model,
	}, nil
}
