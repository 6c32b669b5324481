package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr          string
	DataPath      string
	JWTSecret     string
	AdminUsername string
	AdminPassword string
	AdminName     string
	Environment   string
	LogLevel      string
	LogFormat     string
	MaxBodyBytes  int64
	TokenTTL      time.Duration
}

func Load() Config {
	return Config{
		Addr:          getEnv("APP_ADDR", ":8080"),
		DataPath:      getEnv("DATA_PATH", "simgaji.db"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		AdminName:     getEnv("ADMIN_NAME", "Administrator"),
		Environment:   getEnv("APP_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		MaxBodyBytes:  int64(getEnvInt("MAX_BODY_BYTES", 10485760)),
		TokenTTL:      getEnvDuration("TOKEN_TTL", 7*24*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DataPath) == "" {
		return fmt.Errorf("DATA_PATH is required")
	}
	if c.Environment == "production" {
		if strings.TrimSpace(c.JWTSecret) == "" {
			return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
		}
		if c.AdminPassword == "admin123" {
			return fmt.Errorf("ADMIN_PASSWORD must be changed from the default in production")
		}
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	return nil
}
