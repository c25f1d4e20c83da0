package discord

import (
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BackpackBot_Go/internal/schema"
)

func TestCacheStatsCommand(t *testing.T) {
	ctx := SetupTestContext(t)

	ctx.Mux.HandleFunc("/api/v1/admin/cache/stats", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		WriteJSON(w, schema.CacheStats{Hits: 75, Misses: 25, Entries: 2})
	})

	var captured *discordgo.MessageEmbed
	ctx.CaptureEmbed(&captured)

	_, handler := CacheStatsCommand()
	handler(ctx.Session, createTestInteraction("cache-stats", nil), ctx.APIClient)

	require.NotNil(t, captured)
	assert.Equal(t, "Schema Cache", captured.Title)
	assert.Contains(t, captured.Description, "**Hit Rate:** 75.0%")
	assert.Contains(t, captured.Description, "**Hits:** 75")
	assert.Contains(t, captured.Description, "**Misses:** 25")
	assert.Contains(t, captured.Description, "**Cached Catalogs:** 2")
	require.NotNil(t, captured.Footer)
	assert.Equal(t, FooterBackpackBotAdmin, captured.Footer.Text)
}

func TestCacheStatsCommand_Empty(t *testing.T) {
	ctx := SetupTestContext(t)

	ctx.Mux.HandleFunc("/api/v1/admin/cache/stats", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, schema.CacheStats{})
	})

	var captured *discordgo.MessageEmbed
	ctx.CaptureEmbed(&captured)

	_, handler := CacheStatsCommand()
	handler(ctx.Session, createTestInteraction("cache-stats", nil), ctx.APIClient)

	require.NotNil(t, captured)
	assert.Contains(t, captured.Description, "**Hit Rate:** 0.0%")
}
