package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/BackpackBot_Go/internal/backpack"
	"github.com/osse101/BackpackBot_Go/internal/config"
)

// BackpackHandler serves player backpack lookups
type BackpackHandler struct {
	backpacks backpack.Service
	language  string
}

// NewBackpackHandler creates a backpack handler with a default language for
// requests that do not name one
func NewBackpackHandler(backpacks backpack.Service, defaultLanguage string) *BackpackHandler {
	return &BackpackHandler{
		backpacks: backpacks,
		language:  defaultLanguage,
	}
}

// HandleGetBackpack returns a player's backpack resolved against the schema
// @Summary Get player backpack
// @Description Loads a player's items and resolves each one against the item schema. The player may be named by SteamID64, vanity name, or community profile URL.
// @Tags backpack
// @Produce json
// @Param steamID path string true "SteamID64, vanity name, or profile URL"
// @Param language query string false "Schema language (default en)"
// @Success 200 {object} backpack.Snapshot
// @Failure 400 {object} ErrorResponse "Bad player identity"
// @Failure 403 {object} ErrorResponse "Backpack is private"
// @Failure 502 {object} ErrorResponse
// @Router /backpack/{steamID} [get]
func (h *BackpackHandler) HandleGetBackpack(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "steamID")
	if identifier == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingSteamID)
		return
	}

	language := h.language
	if raw := r.URL.Query().Get("language"); raw != "" {
		language = config.NormalizeLanguage(raw)
	}

	snapshot, err := h.backpacks.Snapshot(r.Context(), identifier, language)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetBackpackFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}
