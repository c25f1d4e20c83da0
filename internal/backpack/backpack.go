package backpack

import (
	"fmt"
	"iter"

	"github.com/osse101/BackpackBot_Go/internal/domain"
	"github.com/osse101/BackpackBot_Go/internal/schema"
)

// Backpack holds one player's raw item records plus slot metadata.
// Records resolve into full items lazily through the bound catalog.
type Backpack struct {
	steamID string
	catalog *schema.Catalog
	records []*domain.ItemRecord
	cells   int
}

// New builds a backpack from a raw WebAPI payload. A non-success
// status fails with a BackpackStatusError carrying the code. Some
// payloads lead the item list with a null placeholder; those lists
// are treated as empty.
func New(body *domain.BackpackBody, steamID string, catalog *schema.Catalog) (*Backpack, error) {
	if body == nil {
		return nil, fmt.Errorf("%w: empty payload", domain.ErrBackpackStatus)
	}
	if body.Result.Status != domain.BackpackStatusOK {
		return nil, &domain.BackpackStatusError{Status: body.Result.Status}
	}

	records := body.Result.Items
	if len(records) > 0 && records[0] == nil {
		records = nil
	}

	return &Backpack{
		steamID: steamID,
		catalog: catalog,
		records: records,
		cells:   body.Result.NumBackpackSlots,
	}, nil
}

// SteamID returns the 64-bit community ID this backpack belongs to.
func (b *Backpack) SteamID() string { return b.steamID }

// TotalCells returns the backpack's slot capacity, zero when the
// payload did not report one.
func (b *Backpack) TotalCells() int { return b.cells }

// Len returns the number of raw item records.
func (b *Backpack) Len() int { return len(b.records) }

// SetCatalog rebinds which catalog resolves future items.
func (b *Backpack) SetCatalog(catalog *schema.Catalog) {
	b.catalog = catalog
}

// Items resolves each record against the bound catalog, in payload
// order. Records that fail to resolve yield a nil item with the error;
// the sequence continues, so consumers choose whether one bad record
// aborts the walk. The sequence is restartable.
func (b *Backpack) Items() iter.Seq2[*schema.Item, error] {
	return func(yield func(*schema.Item, error) bool) {
		for _, rec := range b.records {
			if b.catalog == nil {
				if !yield(nil, fmt.Errorf("%w: no catalog bound", domain.ErrItemNotResolvable)) {
					return
				}
				continue
			}
			item, err := b.catalog.CreateItem(rec)
			if err != nil {
				if !yield(nil, err) {
					return
				}
				continue
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}
