package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Backend API (RemoteGateway)
	BackendBaseURL string        `env:"BACKEND_BASE_URL"`
	BackendToken   string        `env:"BACKEND_TOKEN"`
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"15s"`

	// Redis Config (кэш поиска городов)
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass     string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// Notification Sync Config
	NotificationPollInterval time.Duration `env:"NOTIFICATION_POLL_INTERVAL" envDefault:"30s"`

	// Location Resolver Config
	SearchDebounce     time.Duration `env:"SEARCH_DEBOUNCE" envDefault:"300ms"`
	GeolocationTimeout time.Duration `env:"GEOLOCATION_TIMEOUT" envDefault:"10s"`
	GeolocationMaxAge  time.Duration `env:"GEOLOCATION_MAX_AGE" envDefault:"5m"`

	// Geo Search Config (ключ хранится только на сервере, клиентам не выдаётся)
	GeoSearchURL      string        `env:"GEO_SEARCH_URL"`
	GeoSearchAPIKey   string        `env:"GEO_SEARCH_API_KEY"`
	GeoSearchCacheTTL time.Duration `env:"GEO_SEARCH_CACHE_TTL" envDefault:"10m"`

	// Pagination Config
	DefaultPageSize int `env:"DEFAULT_PAGE_SIZE" envDefault:"12"`
	StatsPageSize   int `env:"STATS_PAGE_SIZE" envDefault:"10000"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:                 getEnv("HTTP_PORT", "8080"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		BackendBaseURL:           os.Getenv("BACKEND_BASE_URL"),
		BackendToken:             os.Getenv("BACKEND_TOKEN"),
		BackendTimeout:           getEnvAsDuration("BACKEND_TIMEOUT", 15*time.Second),
		RedisAddr:                getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:                os.Getenv("REDIS_PASSWORD"),
		RedisDB:                  getEnvAsInt("REDIS_DB", 0),
		RedisPoolSize:            getEnvAsInt("REDIS_POOL_SIZE", 10),
		NotificationPollInterval: getEnvAsDuration("NOTIFICATION_POLL_INTERVAL", 30*time.Second),
		SearchDebounce:           getEnvAsDuration("SEARCH_DEBOUNCE", 300*time.Millisecond),
		GeolocationTimeout:       getEnvAsDuration("GEOLOCATION_TIMEOUT", 10*time.Second),
		GeolocationMaxAge:        getEnvAsDuration("GEOLOCATION_MAX_AGE", 5*time.Minute),
		GeoSearchURL:             os.Getenv("GEO_SEARCH_URL"),
		GeoSearchAPIKey:          os.Getenv("GEO_SEARCH_API_KEY"),
		GeoSearchCacheTTL:        getEnvAsDuration("GEO_SEARCH_CACHE_TTL", 10*time.Minute),
		DefaultPageSize:          getEnvAsInt("DEFAULT_PAGE_SIZE", 12),
		StatsPageSize:            getEnvAsInt("STATS_PAGE_SIZE", 10000),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.BackendBaseURL == "" {
		return nil, fmt.Errorf("BACKEND_BASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
