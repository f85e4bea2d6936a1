package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Collaborator API
	APIBaseURL         string `mapstructure:"API_BASE_URL"`
	HTTPTimeoutSeconds int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`

	// Session
	CredentialsPath string `mapstructure:"CREDENTIALS_PATH"`

	// Export
	ExportDir string `mapstructure:"EXPORT_DIR"`

	Env string `mapstructure:"APP_ENV"` // development | production
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("API_BASE_URL", "http://localhost:5000")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 30)
	viper.SetDefault("CREDENTIALS_PATH", defaultCredentialsPath())
	viper.SetDefault("EXPORT_DIR", ".")
	viper.SetDefault("APP_ENV", "development")

	// Optional .env file for local development, does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultCredentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".empdesk/credentials.json"
	}
	return filepath.Join(home, ".empdesk", "credentials.json")
}
