package configs

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	DBDriver  string
	DBSource  string
	Port      string
	APIPrefix string

	JWTSecret string
	JWTTTL    time.Duration

	// single fixed account accepted by POST /auth/login
	AdminUsername string
	AdminPassword string

	TaxRatePercent decimal.Decimal

	LogLevel    string
	LogFormat   string
	GinMode     string
	CORSOrigins []string
	SeedDemo    bool
}

// LoadConfig reads .env when present and falls back to defaults for anything unset.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		DBDriver:       getEnv("DB_DRIVER", "sqlite"),
		DBSource:       getEnv("DB_SOURCE", "pos.db"),
		Port:           getEnv("PORT", "8000"),
		APIPrefix:      getEnv("API_PREFIX", "/api"),
		JWTSecret:      getEnv("JWT_SECRET", "changeme"),
		JWTTTL:         getDuration("JWT_TTL", 24*time.Hour),
		AdminUsername:  getEnv("ADMIN_USERNAME", "admin@pos"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "changeme"),
		TaxRatePercent: getDecimal("TAX_RATE_PERCENT", decimal.NewFromInt(14)),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		GinMode:        getEnv("GIN_MODE", "release"),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "*")),
		SeedDemo:       getEnv("SEED_DEMO", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return d
}

func getDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	d, err := decimal.NewFromString(getEnv(key, ""))
	if err != nil || d.IsNegative() {
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
