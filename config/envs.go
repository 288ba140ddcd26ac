package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP            string // Host IP for the server
	RESTPort          int    // Port for the REST API
	GinMode           string // Mode for the Gin framework (e.g., release, debug, test)
	RedisAddr         string // Address of the Redis archive; empty selects the in-memory archive
	RedisPassword     string // Password for Redis
	RedisDB           int    // Redis database index
	ArchiveTTLSeconds int    // Lifetime of an archived maze
	MaxMazeDimension  int    // Largest accepted maze width or height
}

// Load reads an optional .env file and builds the configuration from the
// environment, applying defaults for unset variables.
func Load() (Config, error) {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	var err error
	cfg := Config{
		HostIP:        getEnvWithDefault("HOST_IP", "0.0.0.0"),
		GinMode:       getEnvWithDefault("GIN_MODE", "release"),
		RedisAddr:     getEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword: getEnvWithDefault("REDIS_PASSWORD", ""),
	}

	if cfg.RESTPort, err = getEnvAsIntWithDefault("REST_PORT", 8080); err != nil {
		return Config{}, err
	}
	if cfg.RedisDB, err = getEnvAsIntWithDefault("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.ArchiveTTLSeconds, err = getEnvAsIntWithDefault("ARCHIVE_TTL_SECONDS", 3600); err != nil {
		return Config{}, err
	}
	if cfg.MaxMazeDimension, err = getEnvAsIntWithDefault("MAX_MAZE_DIMENSION", 64); err != nil {
		return Config{}, err
	}
	if cfg.MaxMazeDimension < 1 {
		return Config{}, fmt.Errorf("environment variable MAX_MAZE_DIMENSION must be positive, got %d", cfg.MaxMazeDimension)
	}

	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an environment variable as an integer, or the default if not set.
func getEnvAsIntWithDefault(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}
