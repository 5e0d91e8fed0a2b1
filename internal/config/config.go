package config

import (
	"os"
	"strconv"
	"time"

	"tvusm/internal/cache"
	"tvusm/internal/database"
	"tvusm/internal/external"
	"tvusm/internal/messaging"
	"tvusm/internal/search"
)

type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	LogFormat      string
	JWTSecret      string
	RequestTimeout time.Duration

	Database database.Config
	Redis    cache.Config
	NATS     messaging.Config
	Search   search.Config
	Payment  external.PaymentConfig
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SEC", 30)) * time.Second,

		Database: database.Config{
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnvInt("DB_PORT", 5432),
			User:               getEnv("DB_USER", "tvusm"),
			Password:           getEnv("DB_PASSWORD", "tvusm123"),
			DBName:             getEnv("DB_NAME", "tvusm"),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 50),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetimeMin: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 5),
			ConnMaxIdleTimeMin: getEnvInt("DB_CONN_MAX_IDLE_TIME_MIN", 1),
		},

		Redis: cache.Config{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			ViewTTL:  time.Duration(getEnvInt("NEWS_VIEW_TTL_MIN", 30)) * time.Minute,
		},

		NATS: messaging.Config{
			URL:       getEnv("NATS_URL", "nats://localhost:4222"),
			ClusterID: getEnv("NATS_CLUSTER_ID", "tvusm"),
			ClientID:  getEnv("NATS_CLIENT_ID", "tvusm-api"),
		},

		Search: search.Config{
			URL:        getEnv("ELASTICSEARCH_URL", ""),
			Username:   getEnv("ELASTICSEARCH_USERNAME", ""),
			Password:   getEnv("ELASTICSEARCH_PASSWORD", ""),
			Index:      getEnv("ELASTICSEARCH_NEWS_INDEX", "tvusm-news"),
			MaxRetries: getEnvInt("ELASTICSEARCH_MAX_RETRIES", 3),
		},

		Payment: external.PaymentConfig{
			BaseURL:    getEnv("PAYMENT_GATEWAY_URL", "https://sandbox.gateway.example.com"),
			MerchantID: getEnv("PAYMENT_MERCHANT_ID", ""),
			SecretKey:  getEnv("PAYMENT_SECRET_KEY", ""),
			ReturnURL:  getEnv("PAYMENT_RETURN_URL", "http://localhost:8080/api/payments/success"),
			Timeout:    time.Duration(getEnvInt("PAYMENT_TIMEOUT_SEC", 30)) * time.Second,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
