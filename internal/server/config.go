package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadConfig
const (
	EnvAddr  = "GORSD_ADDR"
	EnvRate  = "GORSD_RATE"
	EnvBurst = "GORSD_BURST"
)

// Config of the HTTP service
type Config struct {
	Addr  string  // listen address
	Rate  float64 // requests per second allowed per client
	Burst int     // bucket size per client
}

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() Config {
	return Config{
		Addr:  ":8080",
		Rate:  5,
		Burst: 10,
	}
}

// LoadConfig reads the configuration from the environment, loading a
// .env file from the working directory first when there is one.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	cfg := DefaultConfig()
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv(EnvRate); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r <= 0 {
			return Config{}, fmt.Errorf("%s must be a positive number, got %q", EnvRate, v)
		}
		cfg.Rate = r
	}
	if v := os.Getenv(EnvBurst); v != "" {
		b, err := strconv.Atoi(v)
		if err != nil || b <= 0 {
			return Config{}, fmt.Errorf("%s must be a positive integer, got %q", EnvBurst, v)
		}
		cfg.Burst = b
	}

	return cfg, nil
}
