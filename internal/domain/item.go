package domain

import "encoding/json"

// ItemRecord is one raw item as the WebAPI serves it. The same shape
// covers both roles the payloads use it in: a schema entry (definition
// fields set, attribute overrides keyed by name) and an owned item
// (instance fields set, attribute overrides keyed by defindex).
//
// A record that carries its own item_name is self-describing and
// resolves without a schema entry. Quality, ItemQuality and Quantity
// are pointers because a present zero is meaningful for them.
type ItemRecord struct {
	Defindex *int `json:"defindex,omitempty"`

	// Definition fields
	ItemName        *string         `json:"item_name,omitempty"`
	ItemTypeName    string          `json:"item_type_name,omitempty"`
	ItemSlot        string          `json:"item_slot,omitempty"`
	ItemClass       string          `json:"item_class,omitempty"`
	CraftClass      string          `json:"craft_class,omitempty"`
	ItemDescription *string         `json:"item_description,omitempty"`
	ItemQuality     *int            `json:"item_quality,omitempty"`
	MinILevel       int             `json:"min_ilevel,omitempty"`
	MaxILevel       int             `json:"max_ilevel,omitempty"`
	ImageURL        string          `json:"image_url,omitempty"`
	ImageURLLarge   string          `json:"image_url_large,omitempty"`
	ProperName      bool            `json:"proper_name,omitempty"`
	UsedByClasses   []string        `json:"used_by_classes,omitempty"`
	Styles          []ItemStyle     `json:"styles,omitempty"`
	Capabilities    map[string]bool `json:"capabilities,omitempty"`
	Tool            json.RawMessage `json:"tool,omitempty"`

	// Instance fields
	ID              uint64      `json:"id,omitempty"`
	OriginalID      uint64      `json:"original_id,omitempty"`
	Level           int         `json:"level,omitempty"`
	Quality         *int        `json:"quality,omitempty"`
	Inventory       uint64      `json:"inventory,omitempty"`
	Quantity        *int        `json:"quantity,omitempty"`
	Origin          *int        `json:"origin,omitempty"`
	Style           int         `json:"style,omitempty"`
	CustomName      string      `json:"custom_name,omitempty"`
	CustomDesc      string      `json:"custom_desc,omitempty"`
	FlagCannotTrade bool        `json:"flag_cannot_trade,omitempty"`
	FlagCannotCraft bool        `json:"flag_cannot_craft,omitempty"`
	ContainedItem   *ItemRecord `json:"contained_item,omitempty"`

	Attributes []ItemAttribute `json:"attributes,omitempty"`
}

// SelfDescribing reports whether the record can resolve without a
// schema entry.
func (r *ItemRecord) SelfDescribing() bool {
	return r.ItemName != nil
}

// ItemStyle is one entry of a schema item's style list.
type ItemStyle struct {
	Name string `json:"name"`
}
