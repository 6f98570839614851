package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Trading   TradingConfig
	Snapshots SnapshotConfig
	Quotes    QuoteConfig
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

// TradingConfig holds the market fee/tax rates and the simulated
// portfolio's starting capital. The rates are the single source of
// truth for both the real ledger and the simulation path.
type TradingConfig struct {
	FeeRate           float64
	SellTaxRate       float64
	SimInitialCapital int64
}

// SnapshotConfig controls the recommendation-history snapshot store.
type SnapshotConfig struct {
	RetentionDays int
	MaxRecords    int
}

// QuoteConfig holds the external market-data feed settings.
type QuoteConfig struct {
	BaseURL     string
	RefreshCron string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	feeRate, err := getEnvFloat("FEE_RATE", 0.001425)
	if err != nil {
		return nil, err
	}
	sellTaxRate, err := getEnvFloat("SELL_TAX_RATE", 0.003)
	if err != nil {
		return nil, err
	}
	initialCapital, err := getEnvInt("SIM_INITIAL_CAPITAL", 1000000)
	if err != nil {
		return nil, err
	}
	retention, err := getEnvInt("SNAPSHOT_RETENTION_DAYS", 10)
	if err != nil {
		return nil, err
	}
	maxRecords, err := getEnvInt("SNAPSHOT_MAX_RECORDS", 50)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/stock_dashboard.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Trading: TradingConfig{
			FeeRate:           feeRate,
			SellTaxRate:       sellTaxRate,
			SimInitialCapital: initialCapital,
		},
		Snapshots: SnapshotConfig{
			RetentionDays: int(retention),
			MaxRecords:    int(maxRecords),
		},
		Quotes: QuoteConfig{
			BaseURL: getEnv("QUOTE_API_URL", ""),
			// Every 15 minutes during Taiwan trading hours, weekdays.
			RefreshCron: getEnv("QUOTE_REFRESH_CRON", "*/15 9-13 * * 1-5"),
		},
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

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvInt(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return parsed, nil
}
