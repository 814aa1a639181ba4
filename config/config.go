package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Ollama    OllamaConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Recommend RecommendConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OllamaConfig holds generative backend configuration
type OllamaConfig struct {
	BaseURL          string        `mapstructure:"base_url"`
	Model            string        `mapstructure:"model"`
	Timeout          time.Duration `mapstructure:"timeout"`
	BreakerThreshold uint32        `mapstructure:"breaker_threshold"`
	BreakerCooldown  time.Duration `mapstructure:"breaker_cooldown"`
}

// CacheConfig holds response cache configuration
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute per client IP
}

// RecommendConfig holds recommendation pipeline configuration
type RecommendConfig struct {
	TopK                  int  `mapstructure:"top_k"`
	ContextLimit          int  `mapstructure:"context_limit"`
	MaxProducts           int  `mapstructure:"max_products"`
	StrictConditionFilter bool `mapstructure:"strict_condition_filter"`
	EnableDebugLogging    bool `mapstructure:"enable_debug_logging"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/dermalens/")

	// Environment variable settings
	v.SetEnvPrefix("DERMALENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Ollama defaults
	v.SetDefault("ollama.base_url", "http://localhost:11434")
	v.SetDefault("ollama.model", "llama3.2:latest")
	v.SetDefault("ollama.timeout", "60s")
	v.SetDefault("ollama.breaker_threshold", 3)
	v.SetDefault("ollama.breaker_cooldown", "30s")

	// Cache defaults
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", "1h")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)

	// Recommendation defaults
	v.SetDefault("recommend.top_k", 10)
	v.SetDefault("recommend.context_limit", 10)
	v.SetDefault("recommend.max_products", 3)
	v.SetDefault("recommend.strict_condition_filter", false)
	v.SetDefault("recommend.enable_debug_logging", false)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Ollama.BaseURL == "" {
		return fmt.Errorf("ollama base URL is required (set DERMALENS_OLLAMA_BASE_URL)")
	}

	if config.Ollama.Model == "" {
		return fmt.Errorf("ollama model is required (set DERMALENS_OLLAMA_MODEL)")
	}

	if config.Recommend.MaxProducts > 3 {
		return fmt.Errorf("recommend.max_products must not exceed 3, got: %d", config.Recommend.MaxProducts)
	}

	return nil
}
