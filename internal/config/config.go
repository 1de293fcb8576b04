package config

import (
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Security SecurityConfig
	Telegram TelegramConfig
	Policy   PolicyConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
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
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode + "&prepare_threshold=0"
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	PASSWORD string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// SecurityConfig holds security encryption keys
type SecurityConfig struct {
	SessionEncryptionKey string
}

// TelegramConfig holds the operator notification channel
type TelegramConfig struct {
	BotToken string
	ChatID   string
}

// CurrencyBounds holds the allowed withdrawal range for one currency
type CurrencyBounds struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// PolicyConfig holds withdrawal and refresh policy values. Bounds are
// configuration, not code: each currency carries its own range.
type PolicyConfig struct {
	WithdrawalBounds       map[string]CurrencyBounds
	RefreshReward          decimal.Decimal
	RefreshInterval        time.Duration
	PurchaseExpiryInterval time.Duration
	PurchaseMaxPendingAge  time.Duration
}

// Bounds returns the bounds for a currency, and whether it is supported
func (p PolicyConfig) Bounds(currency string) (CurrencyBounds, bool) {
	b, ok := p.WithdrawalBounds[currency]
	return b, ok
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "denance"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "change-this-in-production"),
			AccessExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		Security: SecurityConfig{
			SessionEncryptionKey: getEnv("SESSION_ENCRYPTION_KEY", "0000000000000000000000000000000000000000000000000000000000000000"), // 32-bytes hex string
		},
		Telegram: TelegramConfig{
			BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
			ChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
		},
		Policy: PolicyConfig{
			WithdrawalBounds: map[string]CurrencyBounds{
				"NGN": {
					Min: getEnvAsDecimal("WITHDRAW_MIN_NGN", "100000"),
					Max: getEnvAsDecimal("WITHDRAW_MAX_NGN", "500000"),
				},
				"USD": {
					Min: getEnvAsDecimal("WITHDRAW_MIN_USD", "10"),
					Max: getEnvAsDecimal("WITHDRAW_MAX_USD", "10000"),
				},
			},
			RefreshReward:          getEnvAsDecimal("REFRESH_REWARD", "5000"),
			RefreshInterval:        getEnvAsDuration("REFRESH_INTERVAL", 24*time.Hour),
			PurchaseExpiryInterval: getEnvAsDuration("PURCHASE_EXPIRY_INTERVAL", time.Hour),
			PurchaseMaxPendingAge:  getEnvAsDuration("PURCHASE_MAX_PENDING_AGE", 7*24*time.Hour),
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

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsDecimal(key, defaultValue string) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	d, _ := decimal.NewFromString(defaultValue)
	return d
}
