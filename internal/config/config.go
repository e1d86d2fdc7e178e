package config

import (
	"os"
	"strconv"

	"brandstudio/domain/insights"
	"brandstudio/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	AI       AIConfig
	Database DatabaseConfig
	Data     DataConfig
	Storage  StorageConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port        string
	ReportsPort string // secondary read-only reports app
	GinMode     string
}

// AIConfig holds AI/LLM related settings. The analyst is optional: with no
// key configured the dashboard simply skips narrative generation.
type AIConfig struct {
	OpenAIKey   string
	OpenAIModel string
	MaxTokens   int
	Temperature float64
}

// DatabaseConfig holds report persistence settings. Optional: with no URL the
// engine runs without saved report history.
type DatabaseConfig struct {
	URL string
}

// DataConfig holds the insight-engine policy values
type DataConfig struct {
	TopN           int
	RateFloor      float64
	SampleMaxRows  int
	SampleMaxChars int
	MaxTextBytes   int
	MaxUploadBytes int64
}

// StorageConfig holds upload storage settings
type StorageConfig struct {
	BasePath string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	defaults := insights.DefaultConfig()

	config := &Config{
		Server: ServerConfig{
			Port:        getEnvOrDefault("PORT", "8080"),
			ReportsPort: getEnvOrDefault("REPORTS_PORT", "8081"),
			GinMode:     getEnvOrDefault("GIN_MODE", "debug"),
		},
		AI: AIConfig{
			OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
			OpenAIModel: getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
			MaxTokens:   getEnvIntOrDefault("OPENAI_MAX_TOKENS", 2048),
			Temperature: getEnvFloatOrDefault("OPENAI_TEMPERATURE", 0.2),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Data: DataConfig{
			TopN:           getEnvIntOrDefault("INSIGHTS_TOP_N", defaults.TopN),
			RateFloor:      getEnvFloatOrDefault("INSIGHTS_RATE_FLOOR", defaults.RateFloor),
			SampleMaxRows:  getEnvIntOrDefault("INSIGHTS_SAMPLE_MAX_ROWS", defaults.SampleMaxRows),
			SampleMaxChars: getEnvIntOrDefault("INSIGHTS_SAMPLE_MAX_CHARS", defaults.SampleMaxChars),
			MaxTextBytes:   getEnvIntOrDefault("INSIGHTS_MAX_TEXT_BYTES", defaults.MaxTextBytes),
			MaxUploadBytes: int64(getEnvIntOrDefault("UPLOAD_MAX_BYTES", 50*1024*1024)),
		},
		Storage: StorageConfig{
			BasePath: getEnvOrDefault("UPLOAD_STORAGE_PATH", "uploads/exports"),
		},
	}

	if err := validate(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

// Engine returns the insight-engine policy derived from the environment
func (c *Config) Engine() insights.Config {
	return insights.Config{
		TopN:           c.Data.TopN,
		RateFloor:      c.Data.RateFloor,
		SampleMaxRows:  c.Data.SampleMaxRows,
		SampleMaxChars: c.Data.SampleMaxChars,
		MaxTextBytes:   c.Data.MaxTextBytes,
	}
}

func validate(c *Config) error {
	if c.Server.Port == "" {
		return errors.ConfigInvalid("PORT cannot be empty")
	}
	if c.Data.TopN <= 0 {
		return errors.ConfigInvalid("INSIGHTS_TOP_N must be positive")
	}
	if c.Data.RateFloor < 0 {
		return errors.ConfigInvalid("INSIGHTS_RATE_FLOOR cannot be negative")
	}
	if c.Data.MaxTextBytes <= 0 {
		return errors.ConfigInvalid("INSIGHTS_MAX_TEXT_BYTES must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
