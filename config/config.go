package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	APIKey            string
	OrgID             string
	ProjectID         string
	Model             string
	Langs             string
	EnableFileLogging bool
}

const (
	DefaultModel = "gpt-3.5-turbo"
	DefaultLangs = "eng+ara"
)

// Load reads configuration from the environment, after loading a .env file
// found in the current directory or next to the executable.
func Load() (*Config, error) {
	envPaths := []string{".env"}

	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		envPaths = append(envPaths, filepath.Join(execDir, ".env"))
	}

	// Try to load .env file (ignore errors if file doesn't exist)
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			godotenv.Load(envPath)
			break
		}
	}

	cfg := &Config{
		APIKey:            os.Getenv("OPENAI_API_KEY"),
		OrgID:             os.Getenv("OPENAI_ORG_ID"),
		ProjectID:         os.Getenv("OPENAI_PROJECT_ID"),
		Model:             getEnvWithDefault("MODEL", DefaultModel),
		Langs:             getEnvWithDefault("OCR_LANGS", DefaultLangs),
		EnableFileLogging: strings.ToLower(os.Getenv("ENABLE_FILE_LOGGING")) == "true",
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
