package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LedgerScope decides whether all users share one ledger or see only their own records.
type LedgerScope string

const (
	LedgerScopeShared LedgerScope = "shared"
	LedgerScopeUser   LedgerScope = "user"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Planning
	LedgerScope        LedgerScope
	DefaultHorizonDays int

	// Import
	ImportRulesFile         string
	ImportOverdueToTomorrow bool
	ImportRateLimit         string
	MaxUploadBytes          int64

	// Outer surface
	CORSAllowedOrigins []string
	PosthogAPIKey      string
	AllowReset         bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "liq-planning-app")
	viper.SetDefault("LEDGER_SCOPE", string(LedgerScopeShared))
	viper.SetDefault("DEFAULT_HORIZON_DAYS", 270)
	viper.SetDefault("IMPORT_RULES_FILE", "config/import_rules.yaml")
	viper.SetDefault("IMPORT_OVERDUE_TO_TOMORROW", true)
	viper.SetDefault("IMPORT_RATE_LIMIT", "20-M")
	viper.SetDefault("MAX_UPLOAD_BYTES", 10<<20)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("ALLOW_RESET", false)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	scope := LedgerScope(strings.ToLower(viper.GetString("LEDGER_SCOPE")))
	switch scope {
	case LedgerScopeShared, LedgerScopeUser:
	default:
		log.Printf("Warning: Invalid value for LEDGER_SCOPE ('%s'). Defaulting to %s.\n", scope, LedgerScopeShared)
		scope = LedgerScopeShared
	}
	cfg.LedgerScope = scope

	cfg.DefaultHorizonDays = viper.GetInt("DEFAULT_HORIZON_DAYS")
	if cfg.DefaultHorizonDays <= 0 {
		cfg.DefaultHorizonDays = 270
		log.Printf("Warning: DEFAULT_HORIZON_DAYS must be positive. Defaulting to %d.\n", cfg.DefaultHorizonDays)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.ImportRulesFile = viper.GetString("IMPORT_RULES_FILE")
	cfg.ImportOverdueToTomorrow = viper.GetBool("IMPORT_OVERDUE_TO_TOMORROW")
	cfg.ImportRateLimit = viper.GetString("IMPORT_RATE_LIMIT")
	cfg.MaxUploadBytes = viper.GetInt64("MAX_UPLOAD_BYTES")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.AllowReset = viper.GetBool("ALLOW_RESET")

	return cfg, nil
}

// ScopeOwner returns the owner filter for reads: the user id in per-user
// mode, empty in shared mode.
func (c *Config) ScopeOwner(userID string) string {
	if c.LedgerScope == LedgerScopeUser {
		return userID
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
