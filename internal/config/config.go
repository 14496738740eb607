package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/thenoetrevino/quotebank/internal/config/colors"
	"github.com/thenoetrevino/quotebank/internal/models"
	"gopkg.in/yaml.v3"
)

// AppName names the config directory and default data directory
const AppName = "quotebank"

// ThemeFileEnv points at a yaml file whose theme section is merged over the config
const ThemeFileEnv = "QUOTEBANK_THEME_FILE"

// Log levels accepted by log_level
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// ColorScheme is the configurable theme
type ColorScheme = colors.ColorScheme

// Config represents the application configuration
type Config struct {
	// DatabasePath is the SQLite file. Empty means ~/.quotebank/quotes.db.
	DatabasePath string `yaml:"database_path" env:"QUOTEBANK_DB_PATH"`
	// ExportDir is where the export form suggests writing CSV files
	ExportDir     string `yaml:"export_dir" env:"QUOTEBANK_EXPORT_DIR"`
	PreviewLength int    `yaml:"preview_length" env:"QUOTEBANK_PREVIEW_LENGTH"`
	LogLevel      string `yaml:"log_level" env:"QUOTEBANK_LOG_LEVEL"`

	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
}

// Default returns a config with every value set to its default
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return *colors.Monochrome()
}

// loadThemeFile loads and merges theme from QUOTEBANK_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(ThemeFileEnv)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// loadEnv applies QUOTEBANK_* environment overrides
func loadEnv(config *Config) error {
	if err := env.Parse(config); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist. Environment
// variables override file values.
func Load() (*Config, error) {
	var config Config

	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !os.IsNotExist(readErr):
			return nil, readErr
		}
	}

	if err := loadEnv(&config); err != nil {
		return nil, err
	}

	// Load theme from QUOTEBANK_THEME_FILE if set
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the location Load reads from
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", AppName, "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.PreviewLength <= 0 {
		c.PreviewLength = models.DefaultPreviewLength
	}
	switch c.LogLevel {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		c.LogLevel = LogLevelInfo
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

// ExportDirectory returns ExportDir, or the current working directory when unset.
// The fallback is resolved on each call and never written back to the config.
func (c *Config) ExportDirectory() string {
	if c.ExportDir != "" {
		return c.ExportDir
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// DefaultExportPath suggests a CSV file name inside ExportDirectory
func (c *Config) DefaultExportPath() string {
	return filepath.Join(c.ExportDirectory(), "quotes_export.csv")
}
