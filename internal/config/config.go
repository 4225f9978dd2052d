package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Config represents the application configuration
type Config struct {
	CardsPath  string `toml:"cards_path" env:"WT_CARDS_PATH"`
	RosterPath string `toml:"roster_path" env:"WT_ROSTER_PATH"`
	Seed       uint64 `toml:"seed" env:"WT_SEED"`
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetCardLibraryPath returns the path to the card library
func GetCardLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "wt", "cards")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "wt", "config.toml")
}

// LoadConfig loads the config file and applies WT_* environment overrides
func LoadConfig() (*Config, error) {
	config, err := readConfigFile()
	if err != nil {
		return nil, err
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return config, nil
}

// readConfigFile reads the config file as written, creating it if needed
func readConfigFile() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	return &config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := &Config{
		CardsPath: GetCardLibraryPath(),
	}

	if err := writeConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error opening config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// ResolveCardsPath returns the path to a card source, either an entry in the
// card library or a path relative to the working directory
func ResolveCardsPath(name string) (string, error) {
	// First, try to find the source in the card library
	libraryPath := filepath.Join(GetCardLibraryPath(), name)
	if _, err := os.Stat(libraryPath); err == nil {
		return libraryPath, nil
	}

	// If not found in the library, treat as a relative path
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	return "", fmt.Errorf("card source not found: %s", name)
}

// SetCardsPath sets the default card source in the config file
func SetCardsPath(path string) error {
	config, err := readConfigFile()
	if err != nil {
		return err
	}

	config.CardsPath = path
	return writeConfig(config)
}
