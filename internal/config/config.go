package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	// Heure locale (0-23) à laquelle le job quotidien se déclenche.
	// Fin de journée par défaut : le job compte les tâches cochées du jour
	// courant, un déclenchement à minuit verrait un jour tout juste commencé
	// et pénaliserait tout le monde.
	JobHour int
	// Fuseau du jour calendaire canonique du job (IANA), UTC par défaut
	JobTimezone string
	// Nombre max d'utilisateurs traités en parallèle par le job
	JobConcurrency int
}

// LoadConfig charge la configuration depuis .env puis les variables d'environnement
func LoadConfig() (*Config, error) {
	// .env absent en production : on ignore l'erreur
	_ = godotenv.Load()

	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              getEnv("DB_NAME", "habitquest"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		JobHour:             getEnvInt("JOB_HOUR", 23),
		JobTimezone:         getEnv("JOB_TIMEZONE", "UTC"),
		JobConcurrency:      getEnvInt("JOB_CONCURRENCY", 0),
	}

	if cfg.DBPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	if cfg.JobHour < 0 || cfg.JobHour > 23 {
		return nil, fmt.Errorf("JOB_HOUR must be between 0 and 23, got %d", cfg.JobHour)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
