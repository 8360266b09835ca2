package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	Port            string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	RedisURL        string
	RedisAddr       string
	RedisPassword   string
	JWTSecret       string
	JWTExpiry       time.Duration
	FreightURL      string
	ExternalTimeout time.Duration
	CORSOrigins     []string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	jwtExpiry, err := time.ParseDuration(getEnv("JWT_EXPIRY", "24h"))
	if err != nil {
		jwtExpiry = 24 * time.Hour
	}

	timeoutSeconds, _ := strconv.Atoi(getEnv("EXTERNAL_TIMEOUT_SECONDS", "5"))
	if timeoutSeconds <= 0 {
		timeoutSeconds = 5
	}

	cfg := &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("APP_PORT", getEnv("PORT", "8080")),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "fast_ecommerce"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		RedisURL:        os.Getenv("REDIS_URL"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		JWTSecret:       getEnv("JWT_SECRET", "secret"),
		JWTExpiry:       jwtExpiry,
		FreightURL:      os.Getenv("FREIGHT_URL"),
		ExternalTimeout: time.Duration(timeoutSeconds) * time.Second,
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", cfg.AppEnv)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
