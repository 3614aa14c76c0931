package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	LogLevel string

	// Historical dataset locations. All four are required at startup; a
	// missing or malformed file is fatal.
	FeesDataPath     string
	FxDataPath       string
	InterestDataPath string
	MarketDataDir    string // one <SYMBOL>.csv per priced asset

	ScenarioCacheTTL time.Duration

	RateLimitInterval time.Duration
	RateLimitBurst    int

	CORSAllowedOrigin string
}

var Cfg *AppConfig

func LoadConfig() {
	errEnv := godotenv.Load()
	if errEnv != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any):", errEnv)
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	Cfg = &AppConfig{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		FeesDataPath:     getEnv("FEES_DATA_PATH", "data/uk_university_fees.csv"),
		FxDataPath:       getEnv("FX_DATA_PATH", "data/gbp_inr_rates.csv"),
		InterestDataPath: getEnv("INTEREST_DATA_PATH", "data/uk_interest_rates.csv"),
		MarketDataDir:    getEnv("MARKET_DATA_DIR", "data/market"),

		ScenarioCacheTTL: getEnvAsDuration("SCENARIO_CACHE_TTL", 15*time.Minute),

		RateLimitInterval: getEnvAsDuration("RATE_LIMIT_INTERVAL", 100*time.Millisecond),
		RateLimitBurst:    getEnvAsInt("RATE_LIMIT_BURST", 30),

		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),
	}

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, FeesData=%s, MarketDataDir=%s",
		Cfg.Port, Cfg.LogLevel, Cfg.FeesDataPath, Cfg.MarketDataDir)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		log.Printf("Integer value for %s not set or empty, using default: %d", key, fallback)
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid integer value for %s ('%s'), using default: %d", key, valueStr, fallback)
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		log.Printf("Duration value for %s not set or empty, using default: %s", key, fallback.String())
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}
