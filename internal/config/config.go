package config

import (
	"os"
	"strconv"
	"time"
)

// Session backends selectable via SESSION_BACKEND.
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

type Config struct {
	Port        string
	DatabaseDSN string

	SessionTTL     time.Duration
	SessionBackend string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	StaticDir string
}

func LoadConfig() (*Config, error) {
	config := &Config{
		Port:        getEnvString("PORT", "8080"),
		DatabaseDSN: getEnvString("DATABASE_DSN", "host=localhost user=postgres password=password dbname=pathstarter port=5432 sslmode=disable"),

		SessionTTL:     getEnvDuration("SESSION_TTL", 24*time.Hour),
		SessionBackend: getEnvString("SESSION_BACKEND", SessionBackendMemory),

		RedisAddr:     getEnvString("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnvString("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		StaticDir: getEnvString("STATIC_DIR", "frontend"),
	}

	return config, nil
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
