package backpack

import (
	"context"

	"github.com/osse101/BackpackBot_Go/internal/domain"
	"github.com/osse101/BackpackBot_Go/internal/identity"
	"github.com/osse101/BackpackBot_Go/internal/logger"
	"github.com/osse101/BackpackBot_Go/internal/metrics"
	"github.com/osse101/BackpackBot_Go/internal/schema"
)

// Fetcher pulls raw backpack payloads from the WebAPI.
type Fetcher interface {
	GetPlayerItems(ctx context.Context, steamID string) (*domain.BackpackBody, error)
}

// Service loads player backpacks bound to a ready catalog.
type Service interface {
	// Load fetches a player's backpack with the catalog for the
	// language bound. The identifier takes any form the identity
	// resolver accepts.
	Load(ctx context.Context, identifier, language string) (*Backpack, error)
	// Snapshot loads a backpack and flattens every resolvable item
	// into display DTOs.
	Snapshot(ctx context.Context, identifier, language string) (*Snapshot, error)
}

// service implements the Service interface
type service struct {
	fetcher  Fetcher
	schemas  schema.Provider
	identity identity.Resolver
}

// NewService creates a new backpack service
func NewService(fetcher Fetcher, schemas schema.Provider, resolver identity.Resolver) Service {
	return &service{
		fetcher:  fetcher,
		schemas:  schemas,
		identity: resolver,
	}
}

func (s *service) Load(ctx context.Context, identifier, language string) (*Backpack, error) {
	log := logger.FromContext(ctx)

	steamID, err := s.identity.Resolve(ctx, identifier)
	if err != nil {
		metrics.BackpackLoads.WithLabelValues(metrics.ResultError).Inc()
		return nil, err
	}

	catalog, err := s.schemas.Catalog(ctx, language)
	if err != nil {
		metrics.BackpackLoads.WithLabelValues(metrics.ResultError).Inc()
		return nil, err
	}

	body, err := s.fetcher.GetPlayerItems(ctx, steamID)
	if err != nil {
		metrics.BackpackLoads.WithLabelValues(metrics.ResultError).Inc()
		log.Error("Backpack fetch failed", "steam_id", steamID, "error", err)
		return nil, err
	}

	pack, err := New(body, steamID, catalog)
	if err != nil {
		metrics.BackpackLoads.WithLabelValues(metrics.ResultError).Inc()
		log.Warn("Backpack rejected", "steam_id", steamID, "error", err)
		return nil, err
	}

	metrics.BackpackLoads.WithLabelValues(metrics.ResultSuccess).Inc()
	metrics.BackpackSlots.Observe(float64(pack.TotalCells()))
	log.Info("Backpack loaded", "steam_id", steamID, "items", pack.Len(), "cells", pack.TotalCells())

	return pack, nil
}

func (s *service) Snapshot(ctx context.Context, identifier, language string) (*Snapshot, error) {
	pack, err := s.Load(ctx, identifier, language)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	snapshot := &Snapshot{
		SteamID:    pack.SteamID(),
		TotalCells: pack.TotalCells(),
		Items:      make([]DecoratedItem, 0, pack.Len()),
	}

	for item, err := range pack.Items() {
		if err != nil {
			snapshot.SkippedItems++
			log.Warn("Skipping unresolvable item", "steam_id", pack.SteamID(), "error", err)
			continue
		}
		decorated, err := decorateItem(item)
		if err != nil {
			log.Warn("Item attributes unresolvable", "steam_id", pack.SteamID(), "defindex", item.Defindex(), "error", err)
		}
		snapshot.Items = append(snapshot.Items, decorated)
	}

	return snapshot, nil
}
