package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Payment  PaymentConfig
	Email    EmailConfig
	OAuth    OAuthConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port        string
	Env         string
	FrontendURL string
	BackendURL  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// PaymentConfig holds checkout gateway configuration
type PaymentConfig struct {
	PublicKey  string
	PrivateKey string
	GatewayURL string
	Sandbox    bool
	// SignHMAC switches the request signature to HMAC-SHA256. Leave off
	// while the gateway only accepts the legacy SHA-1 scheme.
	SignHMAC   bool
	CodeExpiry time.Duration
	OrderTTL   time.Duration
}

// EmailConfig holds outbound email configuration
type EmailConfig struct {
	SendGridAPIKey string
	FromName       string
	FromEmail      string
}

// OAuthConfig holds identity provider configuration
type OAuthConfig struct {
	FacebookAppID     string
	FacebookAppSecret string
	RequestTimeout    time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			Env:         getEnv("SERVER_ENV", "development"),
			FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
			BackendURL:  getEnv("BACKEND_URL", "http://localhost:8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "muzalife"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "change-this-in-production"),
			Expiry: getEnvAsDuration("JWT_EXPIRY", 7*24*time.Hour),
		},
		Payment: PaymentConfig{
			PublicKey:  getEnv("LIQPAY_PUBLIC_KEY", ""),
			PrivateKey: getEnv("LIQPAY_PRIVATE_KEY", ""),
			GatewayURL: getEnv("LIQPAY_CHECKOUT_URL", "https://www.liqpay.ua/api/3/checkout"),
			Sandbox:    getEnvAsBool("LIQPAY_SANDBOX", true),
			SignHMAC:   getEnvAsBool("LIQPAY_SIGN_HMAC", false),
			CodeExpiry: getEnvAsDuration("PAYMENT_CODE_EXPIRY", 10*time.Minute),
			OrderTTL:   getEnvAsDuration("PAYMENT_ORDER_TTL", 24*time.Hour),
		},
		Email: EmailConfig{
			SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
			FromName:       getEnv("EMAIL_FROM_NAME", "Muza Life"),
			FromEmail:      getEnv("EMAIL_FROM_ADDRESS", "no-reply@muzalife.store"),
		},
		OAuth: OAuthConfig{
			FacebookAppID:     getEnv("FACEBOOK_APP_ID", ""),
			FacebookAppSecret: getEnv("FACEBOOK_APP_SECRET", ""),
			RequestTimeout:    getEnvAsDuration("OAUTH_REQUEST_TIMEOUT", 10*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
