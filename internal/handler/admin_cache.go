package handler

import (
	"net/http"

	"github.com/osse101/BackpackBot_Go/internal/config"
	"github.com/osse101/BackpackBot_Go/internal/logger"
	"github.com/osse101/BackpackBot_Go/internal/schema"
)

// AdminCacheHandler serves schema cache administration
type AdminCacheHandler struct {
	schemas  schema.Provider
	language string
}

// NewAdminCacheHandler creates an admin cache handler with a default
// language for requests that do not name one
func NewAdminCacheHandler(schemas schema.Provider, defaultLanguage string) *AdminCacheHandler {
	return &AdminCacheHandler{
		schemas:  schemas,
		language: defaultLanguage,
	}
}

// InvalidateResponse reports which cached catalog was dropped
type InvalidateResponse struct {
	Message  string `json:"message"`
	Language string `json:"language"`
}

// HandleGetCacheStats returns current schema cache statistics
// @Summary Get schema cache stats
// @Description Returns catalog cache hit/miss counters for monitoring (admin only)
// @Tags admin
// @Produce json
// @Success 200 {object} schema.CacheStats
// @Router /admin/cache/stats [get]
func (h *AdminCacheHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.schemas.GetCacheStats())
}

// HandleInvalidateCache drops the cached catalog for a language. The
// next catalog request fetches fresh without blocking this one.
// @Summary Invalidate cached schema
// @Description Drops the cached catalog for the given language (admin only)
// @Tags admin
// @Produce json
// @Param language query string false "Schema language (default en)"
// @Success 200 {object} InvalidateResponse
// @Router /admin/cache [delete]
func (h *AdminCacheHandler) HandleInvalidateCache(w http.ResponseWriter, r *http.Request) {
	language := h.language
	if raw := r.URL.Query().Get("language"); raw != "" {
		language = config.NormalizeLanguage(raw)
	}

	h.schemas.Invalidate(language)
	logger.FromContext(r.Context()).Info("Schema cache invalidated", "language", language)

	respondJSON(w, http.StatusOK, InvalidateResponse{
		Message:  MsgCacheInvalidated,
		Language: language,
	})
}
