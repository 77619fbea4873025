package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/thenoetrevino/kanban/internal/config/colors"
	"github.com/thenoetrevino/kanban/internal/storage"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig      `yaml:"storage"`
	Log         LogConfig          `yaml:"log"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// StorageConfig selects where the board snapshot is kept
type StorageConfig struct {
	Backend     string `yaml:"backend" env:"KANBAN_STORAGE"` // sqlite, file, redis or memory
	DataDir     string `yaml:"data_dir" env:"KANBAN_DATA_DIR"`
	Key         string `yaml:"key" env:"KANBAN_STORAGE_KEY"`
	RedisAddr   string `yaml:"redis_addr" env:"KANBAN_REDIS_ADDR"`
	RedisPrefix string `yaml:"redis_prefix" env:"KANBAN_REDIS_PREFIX"`
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `yaml:"level" env:"KANBAN_LOG_LEVEL"` // debug, info, warn, error
	Dir   string `yaml:"dir" env:"KANBAN_LOG_DIR"`     // defaults to the data dir
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	cfg.applyDefaults()
	return cfg
}

// StorageOptions converts the storage section into backend options
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend:     c.Storage.Backend,
		DataDir:     c.Storage.DataDir,
		RedisAddr:   c.Storage.RedisAddr,
		RedisPrefix: c.Storage.RedisPrefix,
	}
}

// loadThemeFile loads and merges theme from KANBAN_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("KANBAN_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}
	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme = themeConfig.Theme
	}
}

// Load loads config from the user's config directory, then applies
// environment overrides. Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	var config Config

	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case os.IsNotExist(err):
			// defaults below
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		}
	}

	loadThemeFile(&config)

	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

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

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the config file location Load and Save use
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if explicit := os.Getenv("KANBAN_CONFIG"); explicit != "" {
		return explicit, nil
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "kanban", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "kanban", "config.yaml"), nil
}

// defaultDataDir is ~/.kanban, or ./.kanban when there is no home directory
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".kanban"
	}
	return filepath.Join(home, ".kanban")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.Storage.Backend = strings.ToLower(c.Storage.Backend)
	if c.Storage.Backend == "" {
		c.Storage.Backend = storage.BackendSQLite
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = defaultDataDir()
	}
	if c.Storage.Key == "" {
		c.Storage.Key = storage.DefaultKey
	}
	if c.Storage.RedisAddr == "" {
		c.Storage.RedisAddr = "localhost:6379"
	}
	if c.Storage.RedisPrefix == "" {
		c.Storage.RedisPrefix = storage.DefaultRedisPrefix
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Dir == "" {
		c.Log.Dir = c.Storage.DataDir
	}

	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
