package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the server
type Config struct {
	Port      string
	ClientURL string

	AWSRegion string
	S3Bucket  string

	JWTSecret string
	JWTIssuer string
	JWTExpiry time.Duration

	LogLevel string
	LogFile  string // optional; when set, logs rotate via lumberjack
}

// Load reads configuration from the environment (.env is loaded when present)
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		ClientURL: getEnv("CLIENT_URL", "http://localhost:3000"),
		AWSRegion: getEnv("AWS_REGION", "us-east-1"),
		S3Bucket:  os.Getenv("S3_BUCKET_NAME"),
		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTIssuer: getEnv("JWT_ISSUER", "skillswap"),
		JWTExpiry: getDurationEnv("JWT_EXPIRY", 7*24*time.Hour),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFile:   os.Getenv("LOG_FILE"),
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using default %s", key, fallback)
	}
	return fallback
}
