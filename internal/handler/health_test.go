package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	handler := HandleHealthz()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Schema Available - Success", func(t *testing.T) {
		checker := HealthCheckerFunc(func(ctx context.Context) error {
			return nil
		})

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		handler := HandleReadyz(checker)
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})

	t.Run("Schema Fetch Failed", func(t *testing.T) {
		checker := HealthCheckerFunc(func(ctx context.Context) error {
			return errors.New("steam api unreachable")
		})

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		handler := HandleReadyz(checker)
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
		assert.Contains(t, w.Body.String(), `"message":"item schema unavailable"`)
	})

	t.Run("Schema Fetch Timeout", func(t *testing.T) {
		checker := HealthCheckerFunc(func(ctx context.Context) error {
			return context.DeadlineExceeded
		})

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		handler := HandleReadyz(checker)
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
	})

	t.Run("Checker Sees Request Deadline", func(t *testing.T) {
		var sawDeadline bool
		checker := HealthCheckerFunc(func(ctx context.Context) error {
			_, sawDeadline = ctx.Deadline()
			return nil
		})

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(checker).ServeHTTP(w, req)

		assert.True(t, sawDeadline, "readiness checker should run under a deadline")
	})
}
