package webapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/BackpackBot_Go/internal/domain"
	"github.com/osse101/BackpackBot_Go/internal/logger"
	"github.com/osse101/BackpackBot_Go/internal/metrics"
)

// PayloadValidator checks raw WebAPI payloads before they are decoded.
// The client skips the check when none is installed.
type PayloadValidator interface {
	ValidateSchema(data []byte) error
	ValidateBackpack(data []byte) error
}

// Client handles communication with the Steam WebAPI for one app.
type Client struct {
	BaseURL    string
	Client     *http.Client
	MaxRetries int
	RetryDelay time.Duration

	apiKey    string
	appID     int
	validator PayloadValidator
}

// NewClient creates a WebAPI client. An empty baseURL means the public
// Steam host.
func NewClient(baseURL, apiKey string, appID int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
		MaxRetries: defaultMaxRetries,
		RetryDelay: defaultRetryDelay,
		apiKey:     apiKey,
		appID:      appID,
	}
}

// SetValidator installs strict payload validation.
func (c *Client) SetValidator(v PayloadValidator) {
	c.validator = v
}

// GetSchema downloads the item schema for a language.
func (c *Client) GetSchema(ctx context.Context, language string) (*domain.SchemaBody, error) {
	params := url.Values{}
	params.Set(paramKey, c.apiKey)
	if language != "" {
		params.Set(paramLanguage, language)
	}

	path := fmt.Sprintf(pathGetSchema, c.appID)
	data, err := c.doRequest(ctx, EndpointGetSchema, path, params)
	if err != nil {
		return nil, err
	}

	if c.validator != nil {
		if err := c.validator.ValidateSchema(data); err != nil {
			return nil, fmt.Errorf("%w: schema payload rejected: %v", domain.ErrUpstream, err)
		}
	}

	var body domain.SchemaBody
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode schema payload: %v", domain.ErrUpstream, err)
	}

	return &body, nil
}

// GetPlayerItems downloads a player's backpack. The steamID is the
// 64-bit community ID in decimal form.
func (c *Client) GetPlayerItems(ctx context.Context, steamID string) (*domain.BackpackBody, error) {
	params := url.Values{}
	params.Set(paramKey, c.apiKey)
	params.Set(paramSteamID, steamID)

	path := fmt.Sprintf(pathGetPlayerItems, c.appID)
	data, err := c.doRequest(ctx, EndpointGetPlayerItems, path, params)
	if err != nil {
		return nil, err
	}

	// Backpack payloads are the ones that carry NaN float literals
	data = bytes.ReplaceAll(data, qnanToken, qnanReplacement)

	if c.validator != nil {
		if err := c.validator.ValidateBackpack(data); err != nil {
			return nil, fmt.Errorf("%w: backpack payload rejected: %v", domain.ErrUpstream, err)
		}
	}

	var body domain.BackpackBody
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode backpack payload: %v", domain.ErrUpstream, err)
	}

	return &body, nil
}

// ResolveVanityURL turns a community vanity name into a 64-bit steam ID.
func (c *Client) ResolveVanityURL(ctx context.Context, vanity string) (string, error) {
	params := url.Values{}
	params.Set(paramKey, c.apiKey)
	params.Set(paramVanityURL, vanity)

	data, err := c.doRequest(ctx, EndpointResolveVanityURL, pathResolveVanityURL, params)
	if err != nil {
		return "", err
	}

	var body struct {
		Response struct {
			SteamID string `json:"steamid"`
			Success int    `json:"success"`
			Message string `json:"message"`
		} `json:"response"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return "", fmt.Errorf("%w: failed to decode vanity response: %v", domain.ErrUpstream, err)
	}

	switch body.Response.Success {
	case vanitySuccessOK:
		return body.Response.SteamID, nil
	case vanitySuccessNoMatch:
		return "", fmt.Errorf("%w: vanity name %q", domain.ErrNotFound, vanity)
	default:
		return "", fmt.Errorf("%w: vanity resolution returned success %d", domain.ErrUpstream, body.Response.Success)
	}
}

// doRequest performs a GET with retry logic and returns the body bytes.
// Transport failures and 5xx responses retry with exponential backoff;
// anything else returns immediately.
func (c *Client) doRequest(ctx context.Context, endpoint, path string, params url.Values) ([]byte, error) {
	log := logger.FromContext(ctx)
	requestURL := c.BaseURL + path + "?" + params.Encode()

	start := time.Now()
	defer func() {
		metrics.SteamAPIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			jitter := time.Duration(time.Now().UnixNano()%retryJitterModuloMS) * time.Millisecond
			delay := c.RetryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			log.Info("Retrying Steam API request", "attempt", attempt, "endpoint", endpoint, "delay", delay)
			select {
			case <-ctx.Done():
				metrics.SteamAPIRequestsTotal.WithLabelValues(endpoint, metrics.ResultError).Inc()
				return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, ctx.Err())
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to create request: %v", domain.ErrUpstream, err)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			log.Warn("Steam API request failed", "endpoint", endpoint, "error", err, "attempt", attempt)
			if ctx.Err() != nil {
				break
			}
			continue
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			resp.Body.Close()
			lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
			log.Warn("Steam API server error, will retry", "endpoint", endpoint, "status", resp.StatusCode, "attempt", attempt)
			continue
		}

		metrics.SteamAPIRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read response: %v", domain.ErrUpstream, err)
		}

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: %s returned status %d", domain.ErrUpstream, endpoint, resp.StatusCode)
		}

		return data, nil
	}

	metrics.SteamAPIRequestsTotal.WithLabelValues(endpoint, metrics.ResultError).Inc()
	return nil, fmt.Errorf("%w: max retries exceeded: %v", domain.ErrUpstream, lastErr)
}
