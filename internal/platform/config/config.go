package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	RunMigrations bool
	JWTSecret     string
	JWTIssuer     string

	// Event publishing. No brokers means events are only logged.
	KafkaBrokers []string
	KafkaTopic   string

	// ChartOfAccountsFile optionally extends the built-in chart (YAML).
	ChartOfAccountsFile string

	// RateLimit uses the limiter format, e.g. "100-M". Empty disables limiting.
	RateLimit          string
	CORSAllowedOrigins []string

	// RedisAddr, when set, moves rate limit counters into Redis so replicas
	// share them.
	RedisAddr string

	// ReportingCurrency is the display currency for report amounts.
	ReportingCurrency string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "journal.entries.posted")
	v.SetDefault("CHART_OF_ACCOUNTS_FILE", "")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REPORTING_CURRENCY", "USD")

	// Actual environment variables override .env values and defaults.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:         v.GetString("PGSQL_URL"),
		Port:                v.GetString("PORT"),
		IsProduction:        v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:       v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:       v.GetBool("RUN_MIGRATIONS"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		JWTIssuer:           v.GetString("JWT_ISSUER"),
		KafkaBrokers:        splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:          v.GetString("KAFKA_TOPIC"),
		ChartOfAccountsFile: v.GetString("CHART_OF_ACCOUNTS_FILE"),
		RateLimit:           v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RedisAddr:           v.GetString("REDIS_ADDR"),
		ReportingCurrency:   strings.ToUpper(v.GetString("REPORTING_CURRENCY")),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Using in-memory storage.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.ReportingCurrency == "" {
		cfg.ReportingCurrency = "USD"
	}

	return cfg, nil
}

// splitList parses a comma separated value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
