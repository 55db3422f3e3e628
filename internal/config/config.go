package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the client configuration
type Config struct {
	AuthorityURL string // Base URL of the market authority
	UserID       string // Local player identity, assigned by the authority
	UserName     string

	ItemsConfig       string // Path to the item catalog JSON
	InventoryCapacity int    // Slot capacity of the inventory grid; 0 = unbounded
	RequestTimeout    time.Duration

	Port        int // Stub authority listen port
	LogLevel    string
	LogFormat   string
	Environment string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AuthorityURL: getEnv(EnvAuthorityURL, DefaultAuthorityURL),
		UserID:       getEnv(EnvUserID, ""),
		UserName:     getEnv(EnvUserName, ""),
		ItemsConfig:  getEnv(EnvItemsConfig, DefaultItemsConfig),
		LogLevel:     getEnv(EnvLogLevel, "info"),
		LogFormat:    getEnv(EnvLogFormat, "text"),
		Environment:  getEnv(EnvEnvironment, "dev"),
	}

	capacity, err := getEnvInt(EnvInventoryCapacity, DefaultInventoryCapacity)
	if err != nil {
		return nil, err
	}
	if capacity < 0 {
		return nil, fmt.Errorf("invalid %s value: must be >= 0, got %d", EnvInventoryCapacity, capacity)
	}
	cfg.InventoryCapacity = capacity

	timeoutSecs, err := getEnvInt(EnvRequestTimeout, DefaultRequestTimeoutSecs)
	if err != nil {
		return nil, err
	}
	if timeoutSecs <= 0 {
		return nil, fmt.Errorf("invalid %s value: must be > 0, got %d", EnvRequestTimeout, timeoutSecs)
	}
	cfg.RequestTimeout = time.Duration(timeoutSecs) * time.Second

	port, err := getEnvInt(EnvPort, DefaultPort)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}
