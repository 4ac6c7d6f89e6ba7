package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Kavita server connection details
	Server ServerConfig

	// Suppress per-series skip messages by default
	HideSkipped bool
}

// ServerConfig holds Kavita server specific configuration
type ServerConfig struct {
	URL      string
	Username string
	APIKey   string
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	configDir := getConfigDir()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("hide_skipped", false)

	// Read config file (optional - don't fail if missing)
	_ = v.ReadInConfig()

	// Read from environment variables
	v.SetEnvPrefix("KAVALOCK")
	v.AutomaticEnv()

	// Map config to struct
	cfg := &Config{
		HideSkipped: v.GetBool("hide_skipped"),
		Server: ServerConfig{
			URL:      v.GetString("server.url"),
			Username: v.GetString("server.username"),
			APIKey:   v.GetString("server.api_key"),
		},
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "kavalock")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// GetDataDir returns the data directory used for the run-history
// database, creating it if needed.
func GetDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	dataDir := filepath.Join(homeDir, ".local", "share", "kavalock")
	_ = os.MkdirAll(dataDir, 0755)

	return dataDir
}

// Save writes configuration to file
func (c *Config) Save() error {
	v := viper.New()

	// Set config file path
	configDir := getConfigDir()
	configFile := filepath.Join(configDir, "config.yaml")

	// Set values in viper
	v.Set("hide_skipped", c.HideSkipped)
	v.Set("server.url", c.Server.URL)
	v.Set("server.username", c.Server.Username)
	v.Set("server.api_key", c.Server.APIKey)

	// Write to file
	return v.WriteConfigAs(configFile)
}
