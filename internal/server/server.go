package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/BackpackBot_Go/internal/backpack"
	"github.com/osse101/BackpackBot_Go/internal/handler"
	"github.com/osse101/BackpackBot_Go/internal/logger"
	"github.com/osse101/BackpackBot_Go/internal/metrics"
	"github.com/osse101/BackpackBot_Go/internal/schema"
)

type Server struct {
	httpServer *http.Server
	schemas    schema.Provider
	backpacks  backpack.Service
}

// NewServer creates a new Server instance. The language is the default
// catalog language for requests that do not name one.
func NewServer(port int, apiKey string, trustedProxies []string, language string, schemas schema.Provider, backpacks backpack.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned). Readiness means a catalog for
	// the default language can be served.
	readiness := handler.HealthCheckerFunc(func(ctx context.Context) error {
		_, err := schemas.Catalog(ctx, language)
		return err
	})
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(readiness))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	schemaHandler := handler.NewSchemaHandler(schemas, language)
	backpackHandler := handler.NewBackpackHandler(backpacks, language)
	adminCacheHandler := handler.NewAdminCacheHandler(schemas, language)
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/schema", func(r chi.Router) {
			r.Get("/items", schemaHandler.HandleListItems)
			r.Get("/items/{defindex}", schemaHandler.HandleGetItem)
			r.Get("/attributes/{idOrName}", schemaHandler.HandleGetAttribute)
			r.Get("/qualities", schemaHandler.HandleListQualities)
			r.Get("/origins", schemaHandler.HandleListOrigins)
			r.Post("/refresh", schemaHandler.HandleRefresh)
		})

		r.Get("/backpack/{steamID}", backpackHandler.HandleGetBackpack)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/cache/stats", adminCacheHandler.HandleGetCacheStats)
			r.Delete("/cache", adminCacheHandler.HandleInvalidateCache)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		schemas:   schemas,
		backpacks: backpacks,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health probes and metric scrapes would swamp the log
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// sanitizeHeaders replaces credential-bearing header values before
// they reach the log.
func sanitizeHeaders(headers http.Header) http.Header {
	sanitized := make(http.Header, len(headers))
	for k, v := range headers {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			sanitized[k] = []string{RedactedValue}
		} else {
			sanitized[k] = v
		}
	}
	return sanitized
}

// Start starts the server
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
