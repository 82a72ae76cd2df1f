package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingAPIKey = errors.New("MISTRAL_API_KEY is required")

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Mistral   MistralConfig
	Upload    UploadConfig
	MongoDB   MongoDBConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	LogLevel  string
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MistralConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// UploadConfig.Dir is the raw-upload archive directory; empty disables it.
type UploadConfig struct {
	Dir         string
	MaxMemoryMB int64
}

// MongoDBConfig enables the exchange log when URI is set.
type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Enabled       bool
	RPS           float64
	Burst         int
	WindowSeconds int
	UseRedis      bool
}

// Addr is the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// LoadConfig loads configuration from environment variables and a .env file
// in the working directory. Environment variables win over .env entries.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8000")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MISTRAL_MODEL", "mistral-small-latest")
	v.SetDefault("MISTRAL_BASE_URL", "https://api.mistral.ai/v1")
	v.SetDefault("MISTRAL_TIMEOUT", 60)
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("MAX_UPLOAD_MB", 32)
	v.SetDefault("MONGODB_DATABASE", "docqa")
	v.SetDefault("MONGODB_TIMEOUT", 10)
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("RATE_LIMIT_ENABLED", false)
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)
	v.SetDefault("RATE_LIMIT_USE_REDIS", false)

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("SERVER_PORT"),
			Host:         v.GetString("SERVER_HOST"),
			Environment:  v.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 120 * time.Second,
		},
		Mistral: MistralConfig{
			APIKey:  v.GetString("MISTRAL_API_KEY"),
			Model:   v.GetString("MISTRAL_MODEL"),
			BaseURL: v.GetString("MISTRAL_BASE_URL"),
			Timeout: time.Duration(v.GetInt("MISTRAL_TIMEOUT")) * time.Second,
		},
		Upload: UploadConfig{
			Dir:         v.GetString("UPLOAD_DIR"),
			MaxMemoryMB: v.GetInt64("MAX_UPLOAD_MB"),
		},
		MongoDB: MongoDBConfig{
			URI:      v.GetString("MONGODB_URI"),
			Database: v.GetString("MONGODB_DATABASE"),
			Timeout:  time.Duration(v.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Enabled:       v.GetBool("RATE_LIMIT_ENABLED"),
			RPS:           v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         v.GetInt("RATE_LIMIT_BURST"),
			WindowSeconds: v.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
			UseRedis:      v.GetBool("RATE_LIMIT_USE_REDIS"),
		},
		LogLevel: v.GetString("LOG_LEVEL"),
	}

	// viper drops empty env values, but UPLOAD_DIR="" must switch the archive off.
	if dir, ok := os.LookupEnv("UPLOAD_DIR"); ok {
		cfg.Upload.Dir = dir
	}

	if cfg.Mistral.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return cfg, nil
}
