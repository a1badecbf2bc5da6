package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	ServerPort string

	JwtSecret   string
	Issuer      string
	JwtTTLHours int

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbSSLMode  string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
	MinioPublicURL string
	MaxUploadMB    int64

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	AuditRetentionDays int
	CORSAllowedOrigins []string
	SeedFile           string

	// Seed is populated by LoadConfig when SeedFile exists.
	Seed = &SeedCatalog{}
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ServerPort = getEnv("SERVER_PORT", "8080")

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("JWT_ISSUER", "fyp-portal")
	JwtTTLHours = getEnvInt("JWT_TTL_HOURS", 24)

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "fyp_portal")
	DbSSLMode = getEnv("DB_SSLMODE", "disable")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "fyp-artifacts")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
	MinioPublicURL = strings.TrimRight(getEnv("MINIO_PUBLIC_URL", "http://localhost:9000"), "/")
	MaxUploadMB = int64(getEnvInt("MAX_UPLOAD_MB", 20))

	SMTPHost = getEnv("SMTP_HOST", "")
	SMTPPort = getEnvInt("SMTP_PORT", 587)
	SMTPUser = getEnv("SMTP_USER", "")
	SMTPPass = getEnv("SMTP_PASS", "")
	SMTPFrom = getEnv("SMTP_FROM", "")

	AuditRetentionDays = getEnvInt("AUDIT_RETENTION_DAYS", 365)
	CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"))
	SeedFile = getEnv("SEED_FILE", "config/seed.yaml")

	if _, err := os.Stat(SeedFile); err == nil {
		seed, err := LoadSeed(SeedFile)
		if err != nil {
			log.Fatalf("Failed to load seed file %s: %v", SeedFile, err)
		}
		Seed = seed
	} else {
		log.Printf("Seed file %s not found, starting without catalog", SeedFile)
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		log.Printf("Invalid integer for %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
