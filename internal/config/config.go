package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	AppName = "Ballistics Calculator API"
	Version = "1.0.0"
)

// Bounds are the configurable calculation limits the validator and the
// sampler estimate both work from.
type Bounds struct {
	MaxRangeYards float64
	MinRangeYards float64
	MaxStepSize   float64
	MinStepSize   float64
}

// DefaultBounds returns the deployment defaults.
func DefaultBounds() Bounds {
	return Bounds{
		MaxRangeYards: 3000,
		MinRangeYards: 25,
		MaxStepSize:   100,
		MinStepSize:   1,
	}
}

// Config holds runtime settings, loaded from the environment with
// sensible defaults for local development.
type Config struct {
	Environment    string
	Port           string
	APIPrefix      string
	AllowedOrigins []string
	LogLevel       string
	LogDir         string
	Bounds         Bounds
}

// Load reads configuration from environment variables.
func Load() Config {
	cfg := Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8000"),
		APIPrefix:   getEnv("API_PREFIX", "/api"),
		AllowedOrigins: splitCSV(getEnv("ALLOWED_ORIGINS",
			"http://localhost:3000,http://127.0.0.1:3000")),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogDir:   getEnv("LOG_DIR", ""),
		Bounds: Bounds{
			MaxRangeYards: getEnvFloat("MAX_RANGE_YARDS", 3000),
			MinRangeYards: getEnvFloat("MIN_RANGE_YARDS", 25),
			MaxStepSize:   getEnvFloat("MAX_STEP_SIZE", 100),
			MinStepSize:   getEnvFloat("MIN_STEP_SIZE", 1),
		},
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
