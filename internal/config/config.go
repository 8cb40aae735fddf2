// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the storefront process.
type Config struct {
	Port              string
	CatalogSource     string
	CatalogCollection string
	CatalogTable      string
	LogLevel          string
	LogFormat         string
	OTLPEndpoint      string
	ActionRate        float64
	ActionBurst       int
	SessionTTL        time.Duration
}

// Load reads the optional env files (".env" when none are given) and then the environment.
// Variables already present in the environment win over file values.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read env file: %w", err)
	}

	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		CatalogSource:     getEnv("CATALOG_SOURCE", "data/shoes.json"),
		CatalogCollection: getEnv("CATALOG_COLLECTION", "shoes"),
		CatalogTable:      getEnv("CATALOG_TABLE", ""),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
		OTLPEndpoint:      getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}

	var err error
	if cfg.ActionRate, err = strconv.ParseFloat(getEnv("ACTION_RATE", "20"), 64); err != nil {
		return Config{}, fmt.Errorf("invalid ACTION_RATE: %w", err)
	}
	if cfg.ActionBurst, err = strconv.Atoi(getEnv("ACTION_BURST", "40")); err != nil {
		return Config{}, fmt.Errorf("invalid ACTION_BURST: %w", err)
	}
	if cfg.SessionTTL, err = time.ParseDuration(getEnv("SESSION_TTL", "30m")); err != nil {
		return Config{}, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
