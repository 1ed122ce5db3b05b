package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	HTTP struct {
		Port int `yaml:"port"`
	} `yaml:"http"`
	Snapshot struct {
		// Backend is one of memory, sqlite, postgres.
		Backend     string `yaml:"backend"`
		SQLitePath  string `yaml:"sqlite_path"`
		PostgresDSN string `yaml:"postgres_dsn"`
	} `yaml:"snapshot"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is fine; defaults are filled in last.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("STOCKFOLIO_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse STOCKFOLIO_PORT: %w", err)
		}
		cfg.HTTP.Port = port
	}
	if v := os.Getenv("STOCKFOLIO_SNAPSHOT_BACKEND"); v != "" {
		cfg.Snapshot.Backend = v
	}
	if v := os.Getenv("STOCKFOLIO_SQLITE_PATH"); v != "" {
		cfg.Snapshot.SQLitePath = v
	}
	if v := os.Getenv("STOCKFOLIO_POSTGRES_DSN"); v != "" {
		cfg.Snapshot.PostgresDSN = v
	}

	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if cfg.Snapshot.Backend == "" {
		cfg.Snapshot.Backend = "sqlite"
	}
	if cfg.Snapshot.SQLitePath == "" {
		cfg.Snapshot.SQLitePath = "stockfolio.db"
	}

	return cfg, nil
}
