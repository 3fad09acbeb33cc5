package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort      string
	StorageType     string // sqlite, postgres, mysql, redis or memory
	DatabasePath    string
	DatabaseURL     string
	RedisAddr       string
	JWTSecret       string
	SessionDuration time.Duration
	AIReplyDelay    time.Duration
	CapsuleInterval time.Duration
	SESRegion       string
	SESFromEmail    string
	SESFromName     string
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:      getEnv("PORT", "8080"),
		StorageType:     getEnv("STORAGE_TYPE", "sqlite"),
		DatabasePath:    getEnv("DB_PATH", "./otbasy.db"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		JWTSecret:       getEnv("JWT_SECRET", "otbasy-dev-secret"),
		SessionDuration: getDuration("SESSION_DURATION", 24*time.Hour),
		AIReplyDelay:    getDuration("AI_REPLY_DELAY", time.Second),
		CapsuleInterval: getDuration("CAPSULE_INTERVAL", time.Minute),
		SESRegion:       getEnv("SES_REGION", "eu-west-1"),
		SESFromEmail:    getEnv("SES_FROM_EMAIL", ""),
		SESFromName:     getEnv("SES_FROM_NAME", "Otbasy"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration reads a duration environment variable or returns a default value
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
