package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const defaultTimeout = 5 * time.Second

// ErrNotConfigured is returned when no inference endpoint was set.
var ErrNotConfigured = errors.New("inference endpoint not configured")

// Client asks an external model server for an obesity class. The server
// accepts {"features":[...]} and answers {"label":n}.
type Client struct {
	endpoint   string
	httpClient *http.Client
	log        zerolog.Logger
}

type predictRequest struct {
	Features []float64 `json:"features"`
}

type predictResponse struct {
	Label *int `json:"label"`
}

// NewClient returns a Client posting to endpoint with the given per-request
// timeout. A non-positive timeout selects the default.
func NewClient(endpoint string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Predict returns the class index the model assigns to features.
func (c *Client) Predict(ctx context.Context, features []float64) (int, error) {
	if c.endpoint == "" {
		return 0, ErrNotConfigured
	}

	body, err := json.Marshal(predictRequest{Features: features})
	if err != nil {
		return 0, fmt.Errorf("encode features: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("inference request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("inference server returned %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("decode inference response: %w", err)
	}
	if out.Label == nil {
		return 0, errors.New("inference response missing label")
	}

	c.log.Debug().
		Int("label", *out.Label).
		Dur("elapsed", time.Since(start)).
		Msg("inference completed")
	return *out.Label, nil
}
