package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimitMiddleware(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	middleware := RateLimitMiddleware(nil, detector)

	// Create a handler that always returns OK
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	ip := "192.168.1.100"
	req := httptest.NewRequest("GET", "/api/v1/schema/items", nil)
	req.RemoteAddr = ip + ":1234"

	// Simulate requests up to the limit
	for i := 0; i < RequestsPerWindowLimit; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d failed with status %d", i, rec.Code)
		}
	}

	// Next request should be blocked
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429 Too Many Requests, got %d", rec.Code)
	}

	// Verify detector state
	detector.mu.Lock()
	count := detector.byIP[ip].requests
	detector.mu.Unlock()

	if count != RequestsPerWindowLimit+1 {
		t.Errorf("expected count %d, got %d", RequestsPerWindowLimit+1, count)
	}

	// A different client is unaffected
	otherReq := httptest.NewRequest("GET", "/api/v1/schema/items", nil)
	otherReq.RemoteAddr = "192.168.1.101:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, otherReq)

	if rec.Code != http.StatusOK {
		t.Errorf("expected other client to pass, got status %d", rec.Code)
	}
}

func TestExtractIP_TrustedProxies(t *testing.T) {
	tests := []struct {
		name           string
		remoteAddr     string
		forwardedFor   string
		trustedProxies []string
		expected       string
	}{
		{
			name:       "Direct connection",
			remoteAddr: "203.0.113.7:4455",
			expected:   "203.0.113.7",
		},
		{
			name:           "Forwarded header from untrusted peer is ignored",
			remoteAddr:     "203.0.113.7:4455",
			forwardedFor:   "198.51.100.1",
			trustedProxies: []string{"10.0.0.1"},
			expected:       "203.0.113.7",
		},
		{
			name:           "Forwarded header from trusted proxy wins",
			remoteAddr:     "10.0.0.1:4455",
			forwardedFor:   "198.51.100.1",
			trustedProxies: []string{"10.0.0.1"},
			expected:       "198.51.100.1",
		},
		{
			name:           "Rightmost forwarded entry is used",
			remoteAddr:     "10.0.0.1:4455",
			forwardedFor:   "198.51.100.1, 198.51.100.2",
			trustedProxies: []string{"10.0.0.1"},
			expected:       "198.51.100.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwardedFor != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwardedFor)
			}

			if got := extractIP(req, tt.trustedProxies); got != tt.expected {
				t.Errorf("expected IP %q, got %q", tt.expected, got)
			}
		})
	}
}
