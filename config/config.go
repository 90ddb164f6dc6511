package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server Server
	Redis  Redis
	OpenAI OpenAI
	App    App
}

type Server struct {
	Port         string
	CORSOrigins  []string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

// OpenAI holds the credential for the chat-completion calls. An empty
// APIKey is a supported mode: both LLM endpoints serve their canned
// fallback payloads instead.
type OpenAI struct {
	APIKey  string
	BaseURL string
	Model   string
}

type App struct {
	Environment string
	LogLevel    string
	Version     string
	SessionTTL  time.Duration

	// StrictCategories makes project submissions require a document in
	// every required category instead of just name, number, and file
	// sizes.
	StrictCategories bool
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: Server{
			Port:         getEnv("PORT", "8080"),
			CORSOrigins:  []string{getEnv("CORS_ORIGIN", "http://localhost:3000")},
			ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT_SEC", 15)) * time.Second,
			WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT_SEC", 120)) * time.Second,
		},
		Redis: Redis{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		OpenAI: OpenAI{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		},
		App: App{
			Environment:      getEnv("APP_ENV", "development"),
			LogLevel:         getEnv("LOG_LEVEL", "info"),
			Version:          getEnv("APP_VERSION", "1.0.0"),
			SessionTTL:       time.Duration(getEnvAsInt("SESSION_TTL_HOURS", 24)) * time.Hour,
			StrictCategories: getEnvAsBool("STRICT_CATEGORY_VALIDATION", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
