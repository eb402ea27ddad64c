package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

const (
	ProfileAnalysisUpload = "analysis-upload"
	ProfileExtractOnly    = "extract-only"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Storage   StorageConfig
	LLM       LLMConfig
	Qdrant    QdrantConfig
	Worker    WorkerConfig
	RateLimit RateLimitConfig
	Records   RecordsConfig
}

type ServerConfig struct {
	Port        string
	Env         string
	CORSOrigins string
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// UploadProfile is the size and type policy of one upload entry point.
type UploadProfile struct {
	Name              string
	MaxBytes          int64
	AllowedExtensions []string
}

// Allows reports whether ext (with leading dot, any case) is on the allow-list.
func (p UploadProfile) Allows(ext string) bool {
	ext = strings.ToLower(ext)
	for _, allowed := range p.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

type StorageConfig struct {
	UploadPath     string
	AnalysisUpload UploadProfile
	ExtractOnly    UploadProfile
}

type LLMConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

type QdrantConfig struct {
	URL        string
	APIKey     string
	Collection string

	// EmbedAPIKey is the Gemini key used for chunk embeddings, whatever
	// the completion provider.
	EmbedAPIKey string
	EmbedModel  string
}

// Enabled reports whether the résumé index should be started.
func (q QdrantConfig) Enabled() bool {
	return q.URL != ""
}

type WorkerConfig struct {
	Concurrency int
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

type RecordsConfig struct {
	DeleteRemovesFile bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found. Using environment and default values.")
	}

	provider := strings.ToLower(getEnv("LLM_PROVIDER", "gemini"))

	return &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "5000"),
			Env:         getEnv("ENV", "development"),
			CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", "postgres")),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "resumewise"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Storage: StorageConfig{
			UploadPath: getEnv("UPLOAD_PATH", "./uploads"),
			AnalysisUpload: UploadProfile{
				Name:              ProfileAnalysisUpload,
				MaxBytes:          getEnvAsInt64("UPLOAD_MAX_BYTES", 5*1024*1024),
				AllowedExtensions: []string{".pdf"},
			},
			ExtractOnly: UploadProfile{
				Name:              ProfileExtractOnly,
				MaxBytes:          getEnvAsInt64("EXTRACT_MAX_BYTES", 10*1024*1024),
				AllowedExtensions: []string{".pdf", ".doc", ".docx"},
			},
		},
		LLM: LLMConfig{
			Provider: provider,
			APIKey:   getEnv("LLM_API_KEY", defaultAPIKey(provider)),
			Model:    getEnv("LLM_MODEL", defaultModel(provider)),
			BaseURL:  getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
			Timeout:  getEnvAsDuration("LLM_TIMEOUT", "60s"),
		},
		Qdrant: QdrantConfig{
			URL:         getEnv("QDRANT_URL", ""),
			APIKey:      getEnv("QDRANT_API_KEY", ""),
			Collection:  getEnv("QDRANT_COLLECTION", "resume_chunks"),
			EmbedAPIKey: getEnv("EMBED_API_KEY", os.Getenv("GEMINI_API_KEY")),
			EmbedModel:  getEnv("EMBED_MODEL", "text-embedding-004"),
		},
		Worker: WorkerConfig{
			Concurrency: getEnvAsInt("WORKER_CONCURRENCY", 2),
		},
		RateLimit: RateLimitConfig{
			Max:    getEnvAsInt("RATE_LIMIT_MAX", 50),
			Window: getEnvAsDuration("RATE_LIMIT_WINDOW", "1m"),
		},
		Records: RecordsConfig{
			DeleteRemovesFile: getEnvAsBool("DELETE_REMOVES_FILE", false),
		},
	}
}

// MaxUploadBytes is the largest body any upload profile accepts.
func (c *Config) MaxUploadBytes() int64 {
	if c.Storage.ExtractOnly.MaxBytes > c.Storage.AnalysisUpload.MaxBytes {
		return c.Storage.ExtractOnly.MaxBytes
	}
	return c.Storage.AnalysisUpload.MaxBytes
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func defaultAPIKey(provider string) string {
	if provider == "openai" {
		return os.Getenv("OPENAI_API_KEY")
	}
	return os.Getenv("GEMINI_API_KEY")
}

func defaultModel(provider string) string {
	if provider == "openai" {
		return "gpt-4-turbo"
	}
	return "gemini-2.5-flash"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
