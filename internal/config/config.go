package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Environment     string
	StorageBackend  string // "memory", "mongo" or "postgres"
	MongoURI        string
	DBName          string
	DatabaseURL     string // Postgres connection string
	AllowedOrigins  string
	ArchiveSchedule string // cron expression for the retention sweep, empty disables it
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:            getEnv("PORT", "3000"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		StorageBackend:  getEnv("STORAGE_BACKEND", "memory"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:          getEnv("DB_NAME", "ews-reports"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		AllowedOrigins:  getEnv("ALLOWED_ORIGINS", "*"),
		ArchiveSchedule: getEnv("ARCHIVE_SCHEDULE", ""),
	}, nil
}

// IsDevelopment reports whether error details may be echoed to clients.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
