package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Println("Error loading .env file")
	}
	return os.Getenv(key)
}

func ConfigOr(key string, fallback string) string {
	if value := Config(key); value != "" {
		return value
	}
	return fallback
}
