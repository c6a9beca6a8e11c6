package discord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
	"github.com/osse101/PlayerLevels_Go/internal/handler"
)

// Retry policy for API calls
const (
	clientTimeout  = 10 * time.Second
	maxRetries     = 3
	baseRetryDelay = 500 * time.Millisecond
)

// APIClient talks to the PlayerLevels HTTP API
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	RetryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		Client:     &http.Client{Timeout: clientTimeout},
		APIKey:     apiKey,
		RetryDelay: baseRetryDelay,
	}
}

// doRequest performs a GET, retrying transport failures and 5xx answers with backoff
func (c *APIClient) doRequest(ctx context.Context, path string) (*http.Response, error) {
	target := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := c.RetryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			slog.Info(LogMsgRetrying, "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn(LogMsgRequestFailed, "error", err, "attempt", attempt)
			continue
		}
		if resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn(LogMsgServerError, "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// decode reads a JSON body into out, turning error payloads into Go errors
func decode(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrPlayerNotFound
	}
	if resp.StatusCode != http.StatusOK {
		var errResp handler.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("API error: %s", errResp.Error)
		}
		return fmt.Errorf("API returned status: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// GetPlayerByName fetches a player's progress by display name
func (c *APIClient) GetPlayerByName(ctx context.Context, name string) (*domain.PlayerProgress, error) {
	resp, err := c.doRequest(ctx, "/api/v1/players/by-name/"+url.PathEscape(name))
	if err != nil {
		return nil, err
	}
	var progress domain.PlayerProgress
	if err := decode(resp, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

// GetLeaderboard fetches the top players
func (c *APIClient) GetLeaderboard(ctx context.Context, limit int) (*handler.LeaderboardResponse, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	resp, err := c.doRequest(ctx, "/api/v1/leaderboard?"+params.Encode())
	if err != nil {
		return nil, err
	}
	var board handler.LeaderboardResponse
	if err := decode(resp, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// Healthy reports whether the API answers its liveness probe
func (c *APIClient) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/healthz", nil)
	if err != nil {
		return false
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// IsNotFound reports whether err means the player does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrPlayerNotFound)
}
