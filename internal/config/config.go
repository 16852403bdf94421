package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	OTP      OTPConfig
	Tenant   TenantConfig
}

type DatabaseConfig struct {
	Endpoint  string // host:port/dbname or a full postgres:// URL
	AccessKey string // database password / service key
	User      string
	SSLMode   string
	MaxConns  int
	MinConns  int
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

type OTPConfig struct {
	CodeTTL        string
	MaxAttempts    int
	ResendCooldown string
}

type TenantConfig struct {
	DefaultID string
}

// DefaultTenantID is the well-known tenant for unauthenticated/demo
// requests when DEFAULT_TENANT_ID is not supplied.
const DefaultTenantID = "00000000-0000-0000-0000-000000000001"

func Load() (*Config, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration. Endpoint and access key are OPTIONAL:
	// when either is absent the data layer runs in fallback mode
	// (empty reads, erroring writes) instead of refusing to start.
	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	dbMinConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Endpoint:  getEnv("DB_ENDPOINT", ""),
		AccessKey: getEnv("DB_ACCESS_KEY", ""),
		User:      getEnv("DB_USER", "postgres"),
		SSLMode:   getEnv("DB_SSL_MODE", "disable"),
		MaxConns:  dbMaxConns,
		MinConns:  dbMinConns,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// OTP configuration
	otpMaxAttempts, err := strconv.Atoi(getEnv("OTP_MAX_ATTEMPTS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid OTP_MAX_ATTEMPTS: %w", err)
	}
	config.OTP = OTPConfig{
		CodeTTL:        getEnv("OTP_CODE_TTL", "5m"),
		MaxAttempts:    otpMaxAttempts,
		ResendCooldown: getEnv("OTP_RESEND_COOLDOWN", "30s"),
	}

	config.Tenant = TenantConfig{
		DefaultID: getEnv("DEFAULT_TENANT_ID", DefaultTenantID),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Tenant.DefaultID == "" {
		return fmt.Errorf("DEFAULT_TENANT_ID must not be empty")
	}
	return nil
}

// DatabaseConfigured reports whether both required backend values are
// present. When false the data layer binds to the fallback client.
func (c *Config) DatabaseConfigured() bool {
	return c.Database.Endpoint != "" && c.Database.AccessKey != ""
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	if strings.HasPrefix(c.Database.Endpoint, "postgres://") {
		return c.Database.Endpoint
	}
	return fmt.Sprintf("postgres://%s:%s@%s?sslmode=%s",
		c.Database.User,
		c.Database.AccessKey,
		c.Database.Endpoint,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
