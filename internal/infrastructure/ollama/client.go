// Package ollama implements the generative text backend client. Ollama runs
// as a local sidecar that may be entirely absent at any time; every failure
// mode here maps to a sentinel error the recommendation pipeline converts to
// a fallback response.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/dermalens/backend/internal/domain"
)

const healthTimeout = 2 * time.Second

// Config holds the Ollama client settings.
type Config struct {
	BaseURL string
	Model   string
	Timeout time.Duration
	// BreakerThreshold is the consecutive-failure count that opens the
	// circuit; BreakerCooldown is how long it stays open.
	BreakerThreshold uint32
	BreakerCooldown  time.Duration
}

// Client calls the Ollama generate API with an explicit timeout and a
// circuit breaker so a dead backend fails fast instead of burning the full
// timeout on every request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	breaker    *gobreaker.CircuitBreaker[string]
	debug      bool
}

// NewClient creates a new Ollama client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	threshold := cfg.BreakerThreshold
	if threshold == 0 {
		threshold = 3
	}
	cooldown := cfg.BreakerCooldown
	if cooldown == 0 {
		cooldown = 30 * time.Second
	}

	breaker := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:    "ollama-generate",
		Timeout: cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[OLLAMA] breaker %s: %s -> %s", name, from, to)
		},
	})

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		breaker:    breaker,
	}
}

// SetDebug enables request/response logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// generateRequest is the Ollama /api/generate payload.
type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature   float64 `json:"temperature"`
	TopP          float64 `json:"top_p"`
	TopK          int     `json:"top_k"`
	NumPredict    int     `json:"num_predict"`
	RepeatPenalty float64 `json:"repeat_penalty"`
}

// generateResponse is the non-streaming Ollama response body.
type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// Generate sends the prompt to Ollama and returns the generated text.
// Timeouts, refused connections, and an open breaker return
// domain.ErrGeneratorUnavailable; non-200 statuses and unparseable bodies
// return domain.ErrGeneratorBadResponse. There is no retry: the caller's
// fallback path handles failure within the same request.
func (c *Client) Generate(ctx context.Context, prompt string, opts domain.GenerateOptions) (string, error) {
	text, err := c.breaker.Execute(func() (string, error) {
		return c.doGenerate(ctx, prompt, opts)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", fmt.Errorf("%w: circuit open", domain.ErrGeneratorUnavailable)
	}
	return text, err
}

func (c *Client) doGenerate(ctx context.Context, prompt string, opts domain.GenerateOptions) (string, error) {
	payload := generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature:   opts.Temperature,
			TopP:          opts.TopP,
			TopK:          40,
			NumPredict:    opts.MaxTokens,
			RepeatPenalty: 1.1,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if c.debug {
		log.Printf("[OLLAMA] generate model=%s prompt=%d bytes", c.model, len(prompt))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGeneratorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: status %d, body: %s", domain.ErrGeneratorBadResponse, resp.StatusCode, string(raw))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGeneratorBadResponse, err)
	}

	return strings.TrimSpace(genResp.Response), nil
}

// Healthy reports whether Ollama answers its tags endpoint within a short
// timeout.
func (c *Client) Healthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

// BreakerState returns the current circuit breaker state for monitoring.
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}
