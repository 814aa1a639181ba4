package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)

	assert.Equal(t, "http://localhost:11434", cfg.Ollama.BaseURL)
	assert.Equal(t, "llama3.2:latest", cfg.Ollama.Model)
	assert.Equal(t, 60*time.Second, cfg.Ollama.Timeout)
	assert.Equal(t, uint32(3), cfg.Ollama.BreakerThreshold)
	assert.Equal(t, 30*time.Second, cfg.Ollama.BreakerCooldown)

	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)

	assert.Equal(t, 100, cfg.RateLimit.PerIP)

	assert.Equal(t, 10, cfg.Recommend.TopK)
	assert.Equal(t, 10, cfg.Recommend.ContextLimit)
	assert.Equal(t, 3, cfg.Recommend.MaxProducts)
	assert.False(t, cfg.Recommend.StrictConditionFilter)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DERMALENS_SERVER_PORT", "9090")
	t.Setenv("DERMALENS_OLLAMA_MODEL", "mistral:latest")
	t.Setenv("DERMALENS_RATELIMIT_PER_IP", "20")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "mistral:latest", cfg.Ollama.Model)
	assert.Equal(t, 20, cfg.RateLimit.PerIP)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Ollama: OllamaConfig{
				BaseURL: "http://localhost:11434",
				Model:   "llama3.2:latest",
			},
			Recommend: RecommendConfig{MaxProducts: 3},
		}
	}

	t.Run("accepts valid config", func(t *testing.T) {
		assert.NoError(t, validate(valid()))
	})

	t.Run("rejects missing base url", func(t *testing.T) {
		cfg := valid()
		cfg.Ollama.BaseURL = ""
		err := validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "base URL")
	})

	t.Run("rejects missing model", func(t *testing.T) {
		cfg := valid()
		cfg.Ollama.Model = ""
		err := validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "model")
	})

	t.Run("rejects oversized max products", func(t *testing.T) {
		cfg := valid()
		cfg.Recommend.MaxProducts = 4
		err := validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_products")
	})
}
