// Package config provides configuration management for the converter.
// It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the application configuration. CLI flags take precedence
// and are applied on top by the cmd layer.
type Config struct {
	// InputDir is the folder scanned for monthly statement CSV files
	InputDir string
	// OutputDir is the folder QIF files are written to
	OutputDir string
	// AccountsFile is the YAML account configuration path
	AccountsFile string
	// DBPath is the SQLite export history path (empty means resolver default)
	DBPath string
	Debug  bool
}

// Load loads configuration from environment variables.
// It automatically loads .env file from the current directory if available.
// You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	config := &Config{
		InputDir:     os.Getenv("WSQIF_INPUT_DIR"),
		OutputDir:    getEnvOrDefault("WSQIF_OUTPUT_DIR", "./qif"),
		AccountsFile: getEnvOrDefault("WSQIF_ACCOUNTS_FILE", "accounts.yaml"),
		DBPath:       os.Getenv("WSQIF_DB_PATH"),
		Debug:        os.Getenv("DEBUG") == "true",
	}

	return config, nil
}

// Validate checks that the named fields are set.
func (c *Config) Validate(required ...string) error {
	var missing []string

	for _, field := range required {
		var value string
		switch field {
		case "inputDir":
			value = c.InputDir
		case "outputDir":
			value = c.OutputDir
		case "accountsFile":
			value = c.AccountsFile
		case "dbPath":
			value = c.DBPath
		}
		if value == "" {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %v\nPlease check your .env file, environment variables or flags", missing)
	}

	return nil
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
