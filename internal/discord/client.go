package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/osse101/BackpackBot_Go/internal/backpack"
	"github.com/osse101/BackpackBot_Go/internal/handler"
	"github.com/osse101/BackpackBot_Go/internal/schema"
)

// apiPrefix is prepended to every API path. Health probes bypass it.
const apiPrefix = "/api/v1"

// APIClient handles communication with the BackpackBot Core API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string
}

// NewAPIClient creates a new API client. BaseURL is the server root
// without the /api/v1 prefix.
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		APIKey: apiKey,
	}
}

// doRequest performs an HTTP request with retry logic
func (c *APIClient) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	var err error

	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	requestURL := c.BaseURL + apiPrefix + path

	// Retry configuration
	maxRetries := 3
	retryDelay := 500 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := retryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			time.Sleep(delay)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequest(method, requestURL, bytes.NewBuffer(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		// Success or non-retryable error
		if resp.StatusCode < 500 {
			return resp, nil
		}

		// Server error - retry
		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// decodeError turns a non-OK API response into an error, preferring the
// server's own message when the body carries one.
func decodeError(resp *http.Response) error {
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("API error: %s", errResp.Error)
	}
	return fmt.Errorf("API returned status: %d", resp.StatusCode)
}

// languageQuery builds the optional language query suffix
func languageQuery(language string) string {
	if language == "" {
		return ""
	}
	params := url.Values{}
	params.Set("language", language)
	return "?" + params.Encode()
}

// GetBackpack retrieves a player's backpack snapshot. The identifier
// can be a SteamID64, vanity name, or profile URL.
func (c *APIClient) GetBackpack(identifier, language string) (*backpack.Snapshot, error) {
	path := "/backpack/" + url.PathEscape(identifier) + languageQuery(language)

	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var snapshot backpack.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode backpack: %w", err)
	}

	return &snapshot, nil
}

// GetItem retrieves one item definition from the schema catalog
func (c *APIClient) GetItem(defindex int, language string) (*handler.ItemDetail, error) {
	path := fmt.Sprintf("/schema/items/%d%s", defindex, languageQuery(language))

	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var detail handler.ItemDetail
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return nil, fmt.Errorf("failed to decode item: %w", err)
	}

	return &detail, nil
}

// RefreshSchema forces a fresh schema fetch for a language
func (c *APIClient) RefreshSchema(language string) (*handler.RefreshResponse, error) {
	req := struct {
		Language string `json:"language,omitempty"`
	}{Language: language}

	resp, err := c.doRequest(http.MethodPost, "/schema/refresh", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var refreshResp handler.RefreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&refreshResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &refreshResp, nil
}

// GetCacheStats retrieves the server's schema cache counters
func (c *APIClient) GetCacheStats() (*schema.CacheStats, error) {
	resp, err := c.doRequest(http.MethodGet, "/admin/cache/stats", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var stats schema.CacheStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, fmt.Errorf("failed to decode cache stats: %w", err)
	}

	return &stats, nil
}

// Ping probes the API's liveness endpoint
func (c *APIClient) Ping() error {
	resp, err := c.Client.Get(c.BaseURL + "/healthz")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned status: %d", resp.StatusCode)
	}
	return nil
}
