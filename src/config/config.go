package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Port              string
	GinMode           string
	DBDriver          string
	DatabaseURL       string
	SQLitePath        string
	LogLevel          string
	DBLogLevel        string
	SeedSampleData    bool
	LowStockThreshold int

	// CORSAllowedOrigins empty means every origin is allowed.
	CORSAllowedOrigins []string
}

// Load reads .env when present, then the environment.
func Load() Config {
	// .env is optional
	_ = godotenv.Load()

	return Config{
		Port:              getEnv("PORT", "8080"),
		GinMode:           getEnv("GIN_MODE", "debug"),
		DBDriver:          strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		SQLitePath:        getEnv("SQLITE_PATH", "manajemen-toko.db"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DBLogLevel:        getEnv("DB_LOG_LEVEL", "warn"),
		SeedSampleData:    getBool("SEED_SAMPLE_DATA", true),
		LowStockThreshold: getInt("LOW_STOCK_THRESHOLD", 5),

		CORSAllowedOrigins: splitAndTrim(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
