package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BackpackBot_Go/internal/backpack"
	"github.com/osse101/BackpackBot_Go/internal/domain"
)

// fakeBackpackService records the last request and replays a canned
// snapshot or error
type fakeBackpackService struct {
	snapshot       *backpack.Snapshot
	err            error
	lastIdentifier string
	lastLanguage   string
}

func (f *fakeBackpackService) Load(context.Context, string, string) (*backpack.Backpack, error) {
	return nil, f.err
}

func (f *fakeBackpackService) Snapshot(_ context.Context, identifier, language string) (*backpack.Snapshot, error) {
	f.lastIdentifier = identifier
	f.lastLanguage = language
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot, nil
}

func newBackpackTestServer(t *testing.T, service *fakeBackpackService) *chi.Mux {
	t.Helper()

	handler := NewBackpackHandler(service, "en")

	r := chi.NewRouter()
	r.Get("/backpack/{steamID}", handler.HandleGetBackpack)
	return r
}

func testSnapshot() *backpack.Snapshot {
	return &backpack.Snapshot{
		SteamID:    "76561198012345678",
		TotalCells: 100,
		Items: []backpack.DecoratedItem{
			{
				ID:       101,
				Defindex: 5,
				Name:     "The Axe",
				Quality:  "Unique",
				Level:    10,
				Quantity: 1,
				Position: 3,
				Equipped: []string{"Scout"},
				Attributes: []backpack.DecoratedAttribute{
					{Name: "damage bonus", Description: "+15% damage bonus", Value: "15", EffectType: "positive"},
				},
			},
		},
		SkippedItems: 1,
	}
}

func TestBackpackHandler_HandleGetBackpack(t *testing.T) {
	t.Run("returns the snapshot", func(t *testing.T) {
		service := &fakeBackpackService{snapshot: testSnapshot()}
		router := newBackpackTestServer(t, service)

		req := httptest.NewRequest("GET", "/backpack/76561198012345678", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "76561198012345678", service.lastIdentifier)
		assert.Equal(t, "en", service.lastLanguage)

		var snapshot backpack.Snapshot
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
		assert.Equal(t, "76561198012345678", snapshot.SteamID)
		assert.Equal(t, 100, snapshot.TotalCells)
		assert.Equal(t, 1, snapshot.SkippedItems)
		require.Len(t, snapshot.Items, 1)
		assert.Equal(t, "The Axe", snapshot.Items[0].Name)
		assert.Equal(t, "Unique", snapshot.Items[0].Quality)
		assert.Equal(t, 3, snapshot.Items[0].Position)
		assert.Equal(t, []string{"Scout"}, snapshot.Items[0].Equipped)
		require.Len(t, snapshot.Items[0].Attributes, 1)
		assert.Equal(t, "+15% damage bonus", snapshot.Items[0].Attributes[0].Description)
	})

	t.Run("passes vanity identifiers through untouched", func(t *testing.T) {
		service := &fakeBackpackService{snapshot: testSnapshot()}
		router := newBackpackTestServer(t, service)

		req := httptest.NewRequest("GET", "/backpack/robin", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "robin", service.lastIdentifier)
	})

	t.Run("normalizes the language parameter", func(t *testing.T) {
		service := &fakeBackpackService{snapshot: testSnapshot()}
		router := newBackpackTestServer(t, service)

		req := httptest.NewRequest("GET", "/backpack/robin?language=DE-at", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "de", service.lastLanguage)
	})

	t.Run("private backpack returns 403", func(t *testing.T) {
		service := &fakeBackpackService{err: &domain.BackpackStatusError{Status: domain.BackpackStatusPrivate}}
		router := newBackpackTestServer(t, service)

		req := httptest.NewRequest("GET", "/backpack/76561198012345678", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgBackpackPrivateError)
	})

	t.Run("rejected identity returns 400", func(t *testing.T) {
		service := &fakeBackpackService{err: &domain.BackpackStatusError{Status: domain.BackpackStatusBadIdentity}}
		router := newBackpackTestServer(t, service)

		req := httptest.NewRequest("GET", "/backpack/nobody-here", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgPlayerIdentityError)
	})

	t.Run("unrecognized status returns 502", func(t *testing.T) {
		service := &fakeBackpackService{err: &domain.BackpackStatusError{Status: 42}}
		router := newBackpackTestServer(t, service)

		req := httptest.NewRequest("GET", "/backpack/76561198012345678", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgBackpackStatusError)
	})

	t.Run("upstream failure returns 502", func(t *testing.T) {
		service := &fakeBackpackService{err: domain.ErrUpstream}
		router := newBackpackTestServer(t, service)

		req := httptest.NewRequest("GET", "/backpack/76561198012345678", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgUpstreamError)
	})

	t.Run("missing identifier falls through to the router", func(t *testing.T) {
		service := &fakeBackpackService{snapshot: testSnapshot()}
		router := newBackpackTestServer(t, service)

		req := httptest.NewRequest("GET", "/backpack/", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
