package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port        string
	Environment string

	// "postgres" or "file"
	StorageDriver string
	PortfolioFile string

	// "minio" or "disk"
	MediaDriver string
	UploadsDir  string

	DatabaseURL string

	RedisURL string

	AdminPassword string
	AllowedEmails []string
	JWTSecret     string
	JWTExpiry     time.Duration

	MinIOEndpoint       string
	MinIOPublicEndpoint string
	MinIOAccessKey      string
	MinIOSecretKey      string
	MinIOBucket         string
	MinIOUseSSL         bool
	MinIOPublicUseSSL   bool

	CORSOrigins string

	GooglePlacesAPIKey string
	GooglePlaceID      string

	ResendAPIKey     string
	FromEmail        string
	ContactRecipient string

	MaxUploadSize int64
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		StorageDriver: getEnv("STORAGE_DRIVER", "file"),
		PortfolioFile: getEnv("PORTFOLIO_FILE", "portfolio.json"),

		MediaDriver: getEnv("MEDIA_DRIVER", "disk"),
		UploadsDir:  getEnv("UPLOADS_DIR", "uploads"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		// Empty disables the listing/reviews cache.
		RedisURL: getEnv("REDIS_URL", ""),

		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		AllowedEmails: getListEnv("ALLOWED_EMAILS"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		JWTExpiry:     getDurationEnv("JWT_EXPIRY", 7*24*time.Hour),

		MinIOEndpoint:       getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinIOPublicEndpoint: getEnv("MINIO_PUBLIC_ENDPOINT", getEnv("MINIO_ENDPOINT", "localhost:9000")),
		MinIOAccessKey:      getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinIOSecretKey:      getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinIOBucket:         getEnv("MINIO_BUCKET", "stumpworks-portfolio"),
		MinIOUseSSL:         getBoolEnv("MINIO_USE_SSL", false),
		MinIOPublicUseSSL:   getBoolEnv("MINIO_PUBLIC_USE_SSL", true),

		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),

		GooglePlacesAPIKey: getEnv("GOOGLE_PLACES_API_KEY", ""),
		GooglePlaceID:      getEnv("GOOGLE_PLACE_ID", ""),

		ResendAPIKey:     getEnv("RESEND_API_KEY", ""),
		FromEmail:        getEnv("FROM_EMAIL", "noreply@example.com"),
		ContactRecipient: getEnv("CONTACT_RECIPIENT", ""),

		MaxUploadSize: getInt64Env("MAX_UPLOAD_SIZE", 50*1024*1024),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getListEnv(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
