package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	HasherMaphash = "maphash"
	HasherXXHash  = "xxhash"
)

// Config represents the command line tool's defaults, read from
// STABLEBIMAP_* environment variables and an optional .env file
type Config struct {
	// Hasher selects the hash function of both sides: maphash or xxhash
	Hasher string `default:"maphash"`

	// Capacity is the initial number of slots per index, 0 for the default
	Capacity int `default:"0"`

	// Fixed stops maps from growing past Capacity
	Fixed bool `default:"false"`

	LogLevel string `split_words:"true" default:"info"`

	// Pretty switches from JSON log lines to human readable console output
	Pretty bool `default:"true"`
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists, without overriding the environment
	_ = godotenv.Load()

	config := new(Config)
	if err := envconfig.Process("stablebimap", config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values envconfig cannot check by itself
func (config *Config) Validate() error {
	switch config.Hasher {
	case HasherMaphash, HasherXXHash:
	default:
		return fmt.Errorf("invalid hasher %q: expected %s or %s", config.Hasher, HasherMaphash, HasherXXHash)
	}
	if config.Capacity < 0 {
		return fmt.Errorf("invalid capacity %d: must not be negative", config.Capacity)
	}
	return nil
}
