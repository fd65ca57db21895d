package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Repository     string // "memory" or "mongodb"
	MongoURI       string
	MongoDatabase  string
	NATSURL        string
	RedisAddress   string
	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool
	SMTPHost       string
	SMTPPort       int
	SMTPEmail      string
	SMTPPassword   string
	AuditEmail     string // recipient of property-created mails, disabled when empty
	CSVPath        string // seed CSV, random generation when empty
	SeedCount      int
	Neighborhood   string
	NominatimURL   string
	NominatimDelay time.Duration
	ExportPath     string
}

func Load() (*Config, error) {
	// Load .env if present; environment variables remain the primary source.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env, relying on environment variables")
	}

	minioUseSSLStr := getEnv("MINIO_USE_SSL", "false")
	minioUseSSL, err := strconv.ParseBool(minioUseSSLStr)
	if err != nil {
		log.Printf("Warning: Invalid MINIO_USE_SSL value '%s', defaulting to false. Error: %v", minioUseSSLStr, err)
		minioUseSSL = false
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		log.Printf("Warning: Invalid SMTP_PORT, defaulting to 587. Error: %v", err)
		smtpPort = 587
	}

	seedCount, err := strconv.Atoi(getEnv("SEED_COUNT", "20"))
	if err != nil || seedCount < 1 {
		seedCount = 20
	}

	nominatimDelayMs, err := strconv.Atoi(getEnv("NOMINATIM_DELAY_MS", "1000"))
	if err != nil || nominatimDelayMs < 0 {
		// Nominatim usage policy asks for at most one request per second
		nominatimDelayMs = 1000
	}

	cfg := &Config{
		Repository:     getEnv("REPOSITORY", "memory"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnv("MONGO_DATABASE", "property_catalog"),
		NATSURL:        getEnv("NATS_URL", "nats://localhost:4222"),
		RedisAddress:   getEnv("REDIS_ADDRESS", "localhost:6379"),
		MinIOEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinIOAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinIOSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinIOBucket:    getEnv("MINIO_BUCKET", "catalog-exports"),
		MinIOUseSSL:    minioUseSSL,
		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       smtpPort,
		SMTPEmail:      getEnv("SMTP_EMAIL", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		AuditEmail:     getEnv("AUDIT_EMAIL", ""),
		CSVPath:        getEnv("CSV_PATH", ""),
		SeedCount:      seedCount,
		Neighborhood:   getEnv("NEIGHBORHOOD", "Ipiranga"),
		NominatimURL:   getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		NominatimDelay: time.Duration(nominatimDelayMs) * time.Millisecond,
		ExportPath:     getEnv("EXPORT_PATH", "properties.txt"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using fallback: %s", key, fallback)
	return fallback
}
