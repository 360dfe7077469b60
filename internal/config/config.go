package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DatabaseURL       string
	RazorpayKeyID     string
	RazorpayKeySecret string
	Currency          string
	MigrationsDir     string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	if fallback != "" {
		log.Printf("Warning: Environment variable %s not set, using default value: %s\n", key, fallback)
	} else {
		log.Printf("Warning: Environment variable %s not set and no default value provided\n", key)
	}
	return fallback
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		if os.IsNotExist(err) {
			log.Println("Warning: .env file not found, using environment variables or defaults.")
		} else {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		RazorpayKeyID:     getEnv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getEnv("RAZORPAY_KEY_SECRET", ""),
		Currency:          getEnv("CURRENCY", "INR"),
		MigrationsDir:     getEnv("MIGRATIONS_DIR", "migrations"),
	}
}
