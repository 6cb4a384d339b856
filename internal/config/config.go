package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines client configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Locale  string        `yaml:"locale"`
}

type ServerConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

// Load reads configuration from an optional YAML file and environment
// variables. Env wins over file, file over defaults.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			URL:     "http://localhost:8080",
			Timeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			Path: defaultStoragePath(),
		},
		Locale: "en",
	}

	if path := os.Getenv("KOLAB_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if url := os.Getenv("KOLAB_SERVER_URL"); url != "" {
		cfg.Server.URL = url
	}
	if timeoutStr := os.Getenv("KOLAB_SERVER_TIMEOUT"); timeoutStr != "" {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid KOLAB_SERVER_TIMEOUT: %w", err)
		}
		cfg.Server.Timeout = timeout
	}
	if path := os.Getenv("KOLAB_STORAGE_PATH"); path != "" {
		cfg.Storage.Path = path
	}
	if locale := os.Getenv("KOLAB_LOCALE"); locale != "" {
		cfg.Locale = locale
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "kolabctl.db"
	}
	return filepath.Join(home, ".kolabctl", "kolabctl.db")
}
