package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	StoragePath        string
	JWTSecret          string
	SaveDelayMs        int
	PollIntervalMs     int
	TrackingRefreshSec int
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		StoragePath:        getEnv("STORAGE_PATH", "portal.db"),
		JWTSecret:          getEnv("JWT_SECRET", "secret"),
		SaveDelayMs:        getEnvInt("SAVE_DELAY_MS", 800),
		PollIntervalMs:     getEnvInt("POLL_INTERVAL_MS", 1000),
		TrackingRefreshSec: getEnvInt("TRACKING_REFRESH_SEC", 30),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
