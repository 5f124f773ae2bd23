package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Planner  PlannerConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// PlannerConfig holds allocation and rebalancing defaults.
type PlannerConfig struct {
	// InternationalShare is the percentage of the equity allocation carved into
	// the "international" category when a plan requests international exposure.
	InternationalShare float64

	// DriftThreshold is the default drift threshold in percentage points.
	DriftThreshold float64

	// DriftScanSchedule is the cron spec for the background drift scan over
	// saved plans with recorded holdings.
	DriftScanSchedule string

	// StrategyFile optionally points to a YAML file with additional strategies
	// registered on top of the built-in presets.
	StrategyFile string

	// ProfileKey is the base64-encoded fernet key used to encrypt stored
	// investor profiles. When empty, an ephemeral key is generated at startup
	// and saved profiles do not survive a restart.
	ProfileKey string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/allocation_planner.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Planner: PlannerConfig{
			InternationalShare: getEnvFloat("PLANNER_INTERNATIONAL_SHARE", 10),
			DriftThreshold:     getEnvFloat("PLANNER_DRIFT_THRESHOLD", 5.0),
			DriftScanSchedule:  getEnv("PLANNER_DRIFT_SCAN_SCHEDULE", "0 6 * * *"),
			StrategyFile:       getEnv("PLANNER_STRATEGY_FILE", ""),
			ProfileKey:         getEnv("PLANNER_PROFILE_KEY", ""),
		},
	}

	if config.Planner.InternationalShare < 0 || config.Planner.InternationalShare > 100 {
		return nil, fmt.Errorf("PLANNER_INTERNATIONAL_SHARE must be between 0 and 100")
	}
	if config.Planner.DriftThreshold <= 0 {
		return nil, fmt.Errorf("PLANNER_DRIFT_THRESHOLD must be positive")
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvFloat gets a numeric environment variable or returns a default value.
// Unparseable values fall back to the default.
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}
