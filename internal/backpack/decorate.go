package backpack

import (
	"github.com/osse101/BackpackBot_Go/internal/schema"
)

// DecoratedItem is the display-ready projection of one resolved item.
type DecoratedItem struct {
	ID                uint64               `json:"id,omitempty"`
	Defindex          int                  `json:"defindex"`
	Name              string               `json:"name"`
	Quality           string               `json:"quality"`
	Level             int                  `json:"level,omitempty"`
	TypeName          string               `json:"type_name,omitempty"`
	Slot              string               `json:"slot,omitempty"`
	Quantity          int                  `json:"quantity"`
	Position          int                  `json:"position"`
	Equipped          []string             `json:"equipped,omitempty"`
	Untradable        bool                 `json:"untradable,omitempty"`
	Uncraftable       bool                 `json:"uncraftable,omitempty"`
	CustomName        string               `json:"custom_name,omitempty"`
	CustomDescription string               `json:"custom_description,omitempty"`
	Origin            string               `json:"origin,omitempty"`
	Style             string               `json:"style,omitempty"`
	ImageURL          string               `json:"image_url,omitempty"`
	Attributes        []DecoratedAttribute `json:"attributes,omitempty"`
}

// DecoratedAttribute is one visible attribute line, formatted the way
// an item tooltip shows it.
type DecoratedAttribute struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Value       string `json:"value,omitempty"`
	EffectType  string `json:"effect_type"`
	Account     string `json:"account,omitempty"`
}

// Snapshot flattens a loaded backpack into display DTOs.
type Snapshot struct {
	SteamID      string          `json:"steam_id"`
	TotalCells   int             `json:"total_cells"`
	Items        []DecoratedItem `json:"items"`
	SkippedItems int             `json:"skipped_items,omitempty"`
}

// decorateItem projects a resolved item. Attribute resolution errors
// leave the item without attribute lines and surface the error so the
// caller can count them.
func decorateItem(item *schema.Item) (DecoratedItem, error) {
	decorated := DecoratedItem{
		ID:                item.ID(),
		Defindex:          item.Defindex(),
		Name:              item.FullName(),
		Quality:           item.Quality().PrettyStr,
		Level:             item.Level(),
		TypeName:          item.TypeName(),
		Slot:              item.Slot(),
		Quantity:          item.Quantity(),
		Position:          item.Position(),
		Equipped:          item.EquippedClasses(),
		Untradable:        item.Untradable(),
		Uncraftable:       item.Uncraftable(),
		CustomName:        item.CustomName(),
		CustomDescription: item.CustomDescription(),
		Style:             item.StyleName(),
	}

	if origin, ok := item.Origin(); ok {
		decorated.Origin = origin
	}
	if image, err := item.Image(schema.ImageSmall); err == nil {
		decorated.ImageURL = image
	}

	attrs, err := item.Attributes()
	if err != nil {
		return decorated, err
	}
	for _, attr := range attrs {
		if attr.Hidden() {
			continue
		}
		line := DecoratedAttribute{
			Name:       attr.Name(),
			EffectType: attr.EffectType(),
			Value:      attr.FormattedValue(),
		}
		if desc, ok := attr.FormattedDescription(); ok {
			line.Description = desc
		}
		if account := attr.AccountInfo(); account != nil {
			line.Account = account.PersonaName
		}
		decorated.Attributes = append(decorated.Attributes, line)
	}

	return decorated, nil
}
