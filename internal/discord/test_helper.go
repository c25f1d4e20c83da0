package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwmarrin/discordgo"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// emptyDiscordResponse is what the mock transport hands back for any
// Discord API call a test does not care about.
func emptyDiscordResponse() (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString("{}")),
		Header:     make(http.Header),
	}, nil
}

// TestContext bundles everything a command test needs:
// a mock backend API, a Discord session whose HTTP calls are
// intercepted, and an APIClient pointed at the mock backend.
type TestContext struct {
	Server       *httptest.Server
	Mux          *http.ServeMux
	APIClient    *APIClient
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)

	client := NewAPIClient(server.URL, "test-api-key")

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create mock session: %v", err)
	}

	ctx := &TestContext{
		Server:    server,
		Mux:       mux,
		APIClient: client,
		Session:   session,
	}

	// Intercept Discord API calls with a benign default
	ctx.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			return emptyDiscordResponse()
		},
	}
	session.Client = &http.Client{Transport: ctx.DiscordMocks}

	t.Cleanup(func() {
		server.Close()
	})

	return ctx
}

// CaptureEmbed installs a Discord transport that records the last embed
// edited onto an interaction response.
func (ctx *TestContext) CaptureEmbed(target **discordgo.MessageEmbed) {
	ctx.DiscordMocks.RoundTripFunc = func(req *http.Request) (*http.Response, error) {
		if req.Method == http.MethodPatch {
			var body discordgo.WebhookEdit
			_ = json.NewDecoder(req.Body).Decode(&body)
			if body.Embeds != nil && len(*body.Embeds) > 0 {
				*target = (*body.Embeds)[0]
			}
		}
		return emptyDiscordResponse()
	}
}

// CaptureContent installs a Discord transport that records the last
// plain-text content edited onto an interaction response.
func (ctx *TestContext) CaptureContent(target *string) {
	ctx.DiscordMocks.RoundTripFunc = func(req *http.Request) (*http.Response, error) {
		if req.Method == http.MethodPatch {
			var body discordgo.WebhookEdit
			_ = json.NewDecoder(req.Body).Decode(&body)
			if body.Content != nil {
				*target = *body.Content
			}
		}
		return emptyDiscordResponse()
	}
}

// WriteJSON writes data as a JSON response
func WriteJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		_ = err
	}
}
