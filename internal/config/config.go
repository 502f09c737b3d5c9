package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Бэкенды хранения профиля оператора
const (
	ProfileStoreMemory   = "memory"
	ProfileStoreRedis    = "redis"
	ProfileStorePostgres = "postgres"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Profile storage
	ProfileStore string `env:"PROFILE_STORE" envDefault:"memory"`
	DatabaseURL  string `env:"DATABASE_URL"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// UI state
	ModalClearDelay   time.Duration `env:"MODAL_CLEAR_DELAY" envDefault:"300ms"`
	IncidentsPageSize int           `env:"INCIDENTS_PAGE_SIZE" envDefault:"5"`
	SeedMockData      bool          `env:"SEED_MOCK_DATA" envDefault:"true"`

	// Map tiles
	MapTileURL     string `env:"MAP_TILE_URL"`
	MapAttribution string `env:"MAP_ATTRIBUTION"`

	// API Keys for authentication, пустой список отключает проверку
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		ProfileStore:      strings.ToLower(getEnv("PROFILE_STORE", ProfileStoreMemory)),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		ModalClearDelay:   getEnvAsDuration("MODAL_CLEAR_DELAY", 300*time.Millisecond),
		IncidentsPageSize: getEnvAsInt("INCIDENTS_PAGE_SIZE", 5),
		SeedMockData:      getEnvAsBool("SEED_MOCK_DATA", true),
		MapTileURL:        getEnv("MAP_TILE_URL", "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"),
		MapAttribution:    getEnv("MAP_ATTRIBUTION", "© OpenStreetMap contributors"),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.ProfileStore == "" {
		cfg.ProfileStore = ProfileStoreMemory
	}
	switch cfg.ProfileStore {
	case ProfileStoreMemory, ProfileStoreRedis:
	case ProfileStorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required for PROFILE_STORE=postgres")
		}
	default:
		return nil, fmt.Errorf("unknown PROFILE_STORE %q", cfg.ProfileStore)
	}

	return cfg, nil
}

// NeedsRedis true, если Redis нужен хранилищу профиля или очереди вебхуков
func (c *Config) NeedsRedis() bool {
	return c.ProfileStore == ProfileStoreRedis || c.WebhookURL != ""
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
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
