package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Database struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type Admin struct {
	Name     string
	Email    string
	Password string
}

type Config struct {
	Port          string
	DB            Database
	JWTSecret     string
	TokenTTL      time.Duration
	EncryptionKey string
	Admin         Admin
}

// Load reads configuration from the environment. JWT_SECRET and
// CREDENTIAL_ENCRYPTION_KEY have no defaults: a process without them cannot
// issue tokens or read stored credentials, so startup fails instead.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnv("PORT", "8000"),
		DB: Database{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "ca_clients"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      time.Duration(getEnvInt("TOKEN_TTL_HOURS", 12)) * time.Hour,
		EncryptionKey: os.Getenv("CREDENTIAL_ENCRYPTION_KEY"),
		Admin: Admin{
			Name:     getEnv("ADMIN_NAME", "Admin"),
			Email:    getEnv("ADMIN_EMAIL", "admin@ca.com"),
			Password: getEnv("ADMIN_PASS", "admin@123"),
		},
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if cfg.EncryptionKey == "" {
		return nil, fmt.Errorf("CREDENTIAL_ENCRYPTION_KEY is not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
