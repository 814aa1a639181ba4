package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dermalens/backend/internal/domain"
)

func testClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL: baseURL,
		Model:   "llama3.2:latest",
		Timeout: 5 * time.Second,
	})
}

func TestGenerate_Success(t *testing.T) {
	var captured generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(generateResponse{Response: "  Halo! Ada yang bisa saya bantu?  ", Done: true})
	}))
	defer server.Close()

	client := testClient(server.URL)
	text, err := client.Generate(context.Background(), "halo", domain.GenerateOptions{
		Temperature: 0.7,
		TopP:        0.9,
		MaxTokens:   250,
	})

	require.NoError(t, err)
	assert.Equal(t, "Halo! Ada yang bisa saya bantu?", text, "response should be trimmed")

	assert.Equal(t, "llama3.2:latest", captured.Model)
	assert.Equal(t, "halo", captured.Prompt)
	assert.False(t, captured.Stream)
	assert.Equal(t, 0.7, captured.Options.Temperature)
	assert.Equal(t, 0.9, captured.Options.TopP)
	assert.Equal(t, 40, captured.Options.TopK)
	assert.Equal(t, 250, captured.Options.NumPredict)
	assert.Equal(t, 1.1, captured.Options.RepeatPenalty)
}

func TestGenerate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.Generate(context.Background(), "halo", domain.GenerateOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGeneratorBadResponse)
	assert.Contains(t, err.Error(), "status 404")
}

func TestGenerate_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not json"))
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.Generate(context.Background(), "halo", domain.GenerateOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGeneratorBadResponse)
}

func TestGenerate_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := testClient(server.URL)
	_, err := client.Generate(context.Background(), "halo", domain.GenerateOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGeneratorUnavailable)
}

func TestGenerate_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(Config{
		BaseURL:          server.URL,
		Model:            "llama3.2:latest",
		Timeout:          time.Second,
		BreakerThreshold: 3,
		BreakerCooldown:  time.Minute,
	})

	for i := 0; i < 3; i++ {
		_, err := client.Generate(context.Background(), "halo", domain.GenerateOptions{})
		require.Error(t, err)
	}
	assert.Equal(t, "open", client.BreakerState())

	// Once open, requests fail fast without hitting the network.
	_, err := client.Generate(context.Background(), "halo", domain.GenerateOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGeneratorUnavailable)
	assert.Contains(t, err.Error(), "circuit open")
}

func TestGenerate_BreakerStaysClosedOnSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{Response: "ok", Done: true})
	}))
	defer server.Close()

	client := testClient(server.URL)
	for i := 0; i < 5; i++ {
		_, err := client.Generate(context.Background(), "halo", domain.GenerateOptions{})
		require.NoError(t, err)
	}
	assert.Equal(t, "closed", client.BreakerState())
}

func TestHealthy(t *testing.T) {
	t.Run("returns true when tags endpoint answers", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/tags", r.URL.Path)
			w.Write([]byte(`{"models":[]}`))
		}))
		defer server.Close()

		client := testClient(server.URL)
		assert.True(t, client.Healthy(context.Background()))
	})

	t.Run("returns false when the backend is down", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := testClient(server.URL)
		assert.False(t, client.Healthy(context.Background()))
	})

	t.Run("returns false on server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := testClient(server.URL)
		assert.False(t, client.Healthy(context.Background()))
	})
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://localhost:11434/", Model: "m"})
	assert.Equal(t, "http://localhost:11434", client.baseURL)
}
