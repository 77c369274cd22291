package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type Config struct {
	DarkTheme bool `json:"calculator_dark_theme"`
	path      string
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads the config at configPath, creating a default one if
// the file does not exist yet.
func LoadConfigFrom(configPath string) (*Config, error) {
	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Load existing config or create default
	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	config.path = configPath
	return config, nil
}

func (c *Config) Theme() string {
	if c.DarkTheme {
		return ThemeDark
	}
	return ThemeLight
}

// SetTheme accepts "light" or "dark"
func (c *Config) SetTheme(theme string) error {
	switch theme {
	case ThemeLight:
		c.DarkTheme = false
	case ThemeDark:
		c.DarkTheme = true
	default:
		return fmt.Errorf("unknown theme %q (want %q or %q)", theme, ThemeLight, ThemeDark)
	}
	return nil
}

// ToggleTheme flips the theme and saves it
func (c *Config) ToggleTheme() error {
	c.DarkTheme = !c.DarkTheme
	return c.Save()
}

func (c *Config) Path() string {
	return c.path
}

func getConfigPath() (string, error) {
	var configDir string

	// Use RORICALC_HOME if set, otherwise use user's home directory
	if home := os.Getenv("RORICALC_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".roricalc", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	// If config file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{DarkTheme: false}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	if c.path == "" {
		configPath, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		c.path = configPath
	}

	return saveConfig(c, c.path)
}
