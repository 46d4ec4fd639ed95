package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Default config file path.
const DefaultConfigPath = "~/.config/cochrono/config.yaml"

// Config holds all cochrono configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Locale  LocaleConfig  `yaml:"locale"`
	Display DisplayConfig `yaml:"display"`
	Logging LoggingConfig `yaml:"logging"`
}

type StorageConfig struct {
	Path        string `yaml:"path"         env:"COCHRONO_STORAGE_PATH"`
	SQLiteFile  string `yaml:"sqlite_file"  env:"COCHRONO_SQLITE_FILE"`
	JournalMode string `yaml:"journal_mode" env:"COCHRONO_JOURNAL_MODE"`
}

type LocaleConfig struct {
	Language string `yaml:"language" env:"COCHRONO_LANG"`
}

type DisplayConfig struct {
	MaxEventsPerBlock int  `yaml:"max_events_per_block" env:"COCHRONO_MAX_EVENTS_PER_BLOCK"`
	Color             bool `yaml:"color"                env:"COCHRONO_COLOR"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"  env:"COCHRONO_LOG_LEVEL"`
	Format string `yaml:"format" env:"COCHRONO_LOG_FORMAT"`
}

// DBPath returns the absolute path of the SQLite database file.
func (c *Config) DBPath() (string, error) {
	dir, err := ExpandPath(c.Storage.Path)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, c.Storage.SQLiteFile), nil
}

// Load reads a YAML config file at path and merges it with defaults.
// COCHRONO_* environment variables override file values.
// Returns an error if the file cannot be read or contains invalid YAML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the rest of the program cannot recover from.
func (c *Config) Validate() error {
	if c.Storage.SQLiteFile == "" {
		return fmt.Errorf("storage.sqlite_file must not be empty")
	}
	if c.Display.MaxEventsPerBlock < 1 {
		return fmt.Errorf("display.max_events_per_block must be at least 1, got %d", c.Display.MaxEventsPerBlock)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	return nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// LoadOrCreate loads the config from the default path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreate() (*Config, error) {
	path, err := ExpandPath(DefaultConfigPath)
	if err != nil {
		return nil, err
	}
	return LoadOrCreateAt(path)
}

// LoadOrCreateAt loads the config from the given path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreateAt(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()

		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating config directory: %w", err)
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("marshaling default config: %w", err)
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}

		if err := applyEnv(cfg); err != nil {
			return nil, err
		}
		return cfg, cfg.Validate()
	}

	return Load(path)
}
