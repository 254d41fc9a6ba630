package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the API server and the client.
type Config struct {
	Port           int      `yaml:"port" validate:"gt=0"`
	Language       string   `yaml:"language"`
	BaseURL        string   `yaml:"baseURL" validate:"omitempty,url"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// Load builds the configuration from defaults, an optional config.yml and
// environment variable overrides, in that order, then validates the result.
func Load() (*Config, error) {
	return load("config.yml")
}

func load(path string) (*Config, error) {
	cfg := &Config{
		Port:           5000,
		Language:       "cs",
		AllowedOrigins: []string{"*"},
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if v, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v, ok := os.LookupEnv("REGIOJET_LANGUAGE"); ok {
		cfg.Language = v
	}
	if v, ok := os.LookupEnv("REGIOJET_BASE_URL"); ok {
		cfg.BaseURL = v
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
