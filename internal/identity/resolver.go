package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/BackpackBot_Go/internal/domain"
	"github.com/osse101/BackpackBot_Go/internal/logger"
)

// Community profile URL markers. Both URL shapes are accepted wherever
// a player identifier is taken.
const (
	profileURLMarker = "/profiles/"
	vanityURLMarker  = "/id/"
)

// Vanity lookups hit the WebAPI, so resolved names are cached. Names
// rarely change owners; an hour is conservative.
const (
	vanityCacheSize = 1024
	vanityCacheTTL  = time.Hour
)

// VanityResolver resolves community vanity names to steam IDs.
type VanityResolver interface {
	ResolveVanityURL(ctx context.Context, vanity string) (string, error)
}

// Resolver turns player identifiers into 64-bit steam IDs. Accepted
// forms: a decimal steam ID, a community vanity name, or a community
// profile URL in either the /profiles/ or /id/ shape.
type Resolver interface {
	Resolve(ctx context.Context, identifier string) (string, error)
}

// resolver implements the Resolver interface
type resolver struct {
	vanity VanityResolver
	cache  *expirable.LRU[string, string]
}

// NewResolver creates a new identity resolver
func NewResolver(vanity VanityResolver) Resolver {
	return &resolver{
		vanity: vanity,
		cache:  expirable.NewLRU[string, string](vanityCacheSize, nil, vanityCacheTTL),
	}
}

func (r *resolver) Resolve(ctx context.Context, identifier string) (string, error) {
	id := strings.TrimSpace(identifier)

	if marker := strings.LastIndex(id, profileURLMarker); marker >= 0 {
		id = urlSegment(id[marker+len(profileURLMarker):])
	} else if marker := strings.LastIndex(id, vanityURLMarker); marker >= 0 {
		id = urlSegment(id[marker+len(vanityURLMarker):])
	}

	if id == "" {
		return "", fmt.Errorf("%w: empty player identifier", domain.ErrInvalidInput)
	}

	// A fully numeric identifier already is a steam ID
	if isNumeric(id) {
		return id, nil
	}

	if steamID, ok := r.cache.Get(id); ok {
		return steamID, nil
	}

	steamID, err := r.vanity.ResolveVanityURL(ctx, id)
	if err != nil {
		return "", err
	}

	logger.FromContext(ctx).Debug("Resolved vanity name", "vanity", id, "steam_id", steamID)
	r.cache.Add(id, steamID)
	return steamID, nil
}

// urlSegment cuts the identifier at the next path separator and drops
// any query string.
func urlSegment(s string) string {
	if cut := strings.IndexAny(s, "/?"); cut >= 0 {
		s = s[:cut]
	}
	return s
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
