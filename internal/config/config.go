package config

import (
	"errors"
	"os"
	"strconv"
)

const (
	DefaultGeminiModel      = "gemini-2.5-flash"
	DefaultGeminiEmbedModel = "gemini-embedding-001"
)

var ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")

// Config is loaded once at startup and passed to every component that needs it.
type Config struct {
	AppEnv             string `json:"app_env"`
	ServerPort         int    `json:"server_port"`
	DatabaseURL        string `json:"-"`
	RunMigrations      bool   `json:"run_migrations"`
	GeminiAPIKey       string `json:"-"`
	GeminiModel        string `json:"gemini_model"`
	GeminiEmbedModel   string `json:"gemini_embed_model"`
	JWTSecretKey       string `json:"-"`
	JWTExpirationHours int    `json:"jwt_expiration_hours"`
	DefaultRateLimit   int    `json:"default_rate_limit"`
	GlobalRateLimit    int    `json:"global_rate_limit"`
}

func Load() (*Config, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}

	runMigrations, _ := strconv.ParseBool(os.Getenv("RUN_MIGRATIONS"))

	return &Config{
		AppEnv:             getEnvWithDefault("APP_ENV", "development"),
		ServerPort:         getEnvIntWithDefault("SERVER_PORT", 10000),
		DatabaseURL:        databaseURL,
		RunMigrations:      runMigrations,
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getEnvWithDefault("GEMINI_MODEL", DefaultGeminiModel),
		GeminiEmbedModel:   getEnvWithDefault("GEMINI_EMBED_MODEL", DefaultGeminiEmbedModel),
		JWTSecretKey:       os.Getenv("JWT_SECRET_KEY"),
		JWTExpirationHours: getEnvIntWithDefault("JWT_EXPIRATION_HOURS", 24),
		DefaultRateLimit:   getEnvIntWithDefault("DEFAULT_RATE_LIMIT", 1000), // per tenant per minute
		GlobalRateLimit:    getEnvIntWithDefault("GLOBAL_RATE_LIMIT", 10000), // per IP per minute
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
