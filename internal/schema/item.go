package schema

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/osse101/BackpackBot_Go/internal/domain"
)

// ImageSize selects which image URL an item exposes.
type ImageSize string

const (
	ImageSmall ImageSize = "image_url"
	ImageLarge ImageSize = "image_url_large"
)

const (
	// equippedField masks the bits of the inventory token that store
	// equipped classes; the position lives in the low 16 bits.
	equippedField = 0x1FF0000
	positionField = 0xFFFF

	// cannotTradeAttr marks an item untradable independent of the
	// cannot-trade flag.
	cannotTradeAttr = "cannot trade"

	namePrefixThe = "The "
)

// Item is a read view over an owned item record resolved against its
// schema entry. Reads prefer the owned record and fall back to the
// definition; for a self-describing record both point at the same
// record. Views are ephemeral and recomputed, never stored.
type Item struct {
	cat  *Catalog
	inst *domain.ItemRecord
	def  *domain.ItemRecord
}

// Defindex returns the schema id the owned record claims.
func (i *Item) Defindex() int {
	if i.inst.Defindex != nil {
		return *i.inst.Defindex
	}
	return 0
}

// ID returns the item's unique serial number, zero when it has none.
func (i *Item) ID() uint64 { return i.inst.ID }

// OriginalID returns the serial the item had before renames and other
// customization, zero when it has none.
func (i *Item) OriginalID() uint64 { return i.inst.OriginalID }

// Level returns the item's level, zero when it has none.
func (i *Item) Level() int { return i.inst.Level }

// Name returns the undecorated schema name.
func (i *Item) Name() string {
	if i.def.ItemName == nil {
		return ""
	}
	return *i.def.ItemName
}

// TypeName returns the item's type line, e.g. "Kukri".
func (i *Item) TypeName() string { return i.def.ItemTypeName }

// Slot returns the equip slot, e.g. "primary" or "head".
func (i *Item) Slot() string { return i.def.ItemSlot }

// ItemClass returns the equip class used by game commands, not the
// craft class.
func (i *Item) ItemClass() string { return i.def.ItemClass }

// CraftClass returns the item's class in the crafting system, e.g.
// "hat" or "craft_bar".
func (i *Item) CraftClass() string { return i.def.CraftClass }

// Description returns the schema description, empty when there is none.
func (i *Item) Description() string {
	if i.def.ItemDescription == nil {
		return ""
	}
	return *i.def.ItemDescription
}

// CustomName returns the owner-given name, empty when unset.
func (i *Item) CustomName() string { return i.inst.CustomName }

// CustomDescription returns the owner-given description, empty when
// unset.
func (i *Item) CustomDescription() string { return i.inst.CustomDesc }

// Quantity returns the number of uses the item has. Items without a
// use counter report 1.
func (i *Item) Quantity() int {
	if i.inst.Quantity != nil {
		return *i.inst.Quantity
	}
	return 1
}

// MinLevel returns the lowest level the item rolls at; fixed-level
// items have MinLevel == MaxLevel.
func (i *Item) MinLevel() int { return i.def.MinILevel }

// MaxLevel returns the highest level the item rolls at.
func (i *Item) MaxLevel() int { return i.def.MaxILevel }

// Image returns the item's image URL for the requested size.
func (i *Item) Image(size ImageSize) (string, error) {
	switch size {
	case ImageSmall:
		return i.def.ImageURL, nil
	case ImageLarge:
		return i.def.ImageURLLarge, nil
	default:
		return "", fmt.Errorf("%w: image size %q", domain.ErrUnknownField, string(size))
	}
}

// Quality resolves the item's quality, preferring the owned record's
// quality id over the schema entry's item_quality, defaulting to 0.
// Unknown ids resolve to the broken sentinel.
func (i *Item) Quality() domain.Quality {
	qid := 0
	switch {
	case i.inst.Quality != nil:
		qid = *i.inst.Quality
	case i.def.ItemQuality != nil:
		qid = *i.def.ItemQuality
	}
	if quality, ok := i.cat.quality(qid); ok {
		return quality
	}
	return domain.BrokenQuality()
}

// InventoryToken returns the raw position/equip bitfield, zero when the
// item is not placed.
func (i *Item) InventoryToken() uint64 { return i.inst.Inventory }

// Position returns the backpack slot the item sits in, or -1 when the
// token carries no position.
func (i *Item) Position() int {
	token := i.InventoryToken()
	if token == 0 {
		return -1
	}
	return int(token & positionField)
}

// EquippedClasses decodes which classes have the item equipped from the
// inventory token, in class-bit order.
func (i *Item) EquippedClasses() []string {
	token := i.InventoryToken()
	var classes []string
	for _, cb := range domain.ClassBits {
		if (token&equippedField)>>16&cb.Bit != 0 {
			classes = append(classes, cb.Name)
		}
	}
	return classes
}

// EquippableClasses lists the classes that can use the item; a schema
// entry without used_by_classes is usable by everyone.
func (i *Item) EquippableClasses() []string {
	if i.def.UsedByClasses != nil {
		return slices.Clone(i.def.UsedByClasses)
	}
	return domain.ClassNames()
}

// ProperName reports whether the name takes a quality prefix. Items
// like "Bonk! Atomic Punch" read wrong with one and set this false.
func (i *Item) ProperName() bool { return i.def.ProperName }

// Untradable reports whether the item cannot be traded, either by flag
// or by carrying a "cannot trade" attribute. The upstream is not
// consistent about which of the two it sets.
func (i *Item) Untradable() bool {
	if i.inst.FlagCannotTrade {
		return true
	}
	return i.HasAttribute(cannotTradeAttr)
}

// Uncraftable reports whether the item is flagged out of crafting.
func (i *Item) Uncraftable() bool { return i.inst.FlagCannotCraft }

// Origin resolves the owned item's acquisition origin through the
// catalog's origin table.
func (i *Item) Origin() (string, bool) {
	if i.inst.Origin == nil {
		return "", false
	}
	name, ok := i.cat.origins[*i.inst.Origin]
	return name, ok
}

// Attributes resolves the item's attribute set. Overrides declared on
// the schema entry come first in declaration order, an owned override
// with the same defindex merging over its declared counterpart. Owned
// overrides left over after that pass resolve against their global
// definitions and append in list order.
func (i *Item) Attributes() ([]*Attribute, error) {
	declared, err := i.cat.declaredAttributesFor(i.inst)
	if err != nil {
		return nil, err
	}

	// A self-describing record's attribute list already is the
	// declared list; only distinct owned records contribute overrides.
	var owned []domain.ItemAttribute
	if i.inst != i.def {
		owned = i.inst.Attributes
	}

	merged := make([]domain.MergedAttribute, 0, len(declared)+len(owned))
	consumed := make([]bool, len(owned))
	for _, decl := range declared {
		matched := false
		for idx, override := range owned {
			if consumed[idx] || override.Defindex == nil || *override.Defindex != decl.Defindex {
				continue
			}
			merged = append(merged, decl.Apply(override))
			consumed[idx] = true
			matched = true
			break
		}
		if !matched {
			merged = append(merged, decl)
		}
	}
	for idx, override := range owned {
		if consumed[idx] || override.Defindex == nil {
			continue
		}
		def, ok := i.cat.attributes[*override.Defindex]
		if !ok {
			return nil, fmt.Errorf("%w: defindex %d", domain.ErrAttributeUnknown, *override.Defindex)
		}
		merged = append(merged, domain.MergeAttribute(*def, override))
	}

	out := make([]*Attribute, len(merged))
	for idx, rec := range merged {
		out[idx] = NewAttribute(rec)
	}
	return out, nil
}

// AttributeByID finds one resolved attribute by defindex.
func (i *Item) AttributeByID(id int) (*Attribute, error) {
	attrs, err := i.Attributes()
	if err != nil {
		return nil, err
	}
	for _, attr := range attrs {
		if attr.ID() == id {
			return attr, nil
		}
	}
	return nil, fmt.Errorf("%w: attribute %d", domain.ErrNotFound, id)
}

// AttributeByName finds one resolved attribute by name.
func (i *Item) AttributeByName(name string) (*Attribute, error) {
	attrs, err := i.Attributes()
	if err != nil {
		return nil, err
	}
	for _, attr := range attrs {
		if attr.Name() == name {
			return attr, nil
		}
	}
	return nil, fmt.Errorf("%w: attribute %q", domain.ErrNotFound, name)
}

// HasAttribute reports whether the resolved attribute set carries the
// named attribute. Unresolvable sets count as not carrying it.
func (i *Item) HasAttribute(name string) bool {
	_, err := i.AttributeByName(name)
	return err == nil
}

// FullName renders the decorated display name with standard quality
// prefixes.
func (i *Item) FullName() string {
	return i.FullNameWithPrefixes(map[string]string{})
}

// FullNameWithPrefixes renders the decorated display name. The map
// overrides the display prefix per canonical quality name, an empty
// value stripping that quality's prefix; a nil map suppresses prefixes
// entirely.
//
// The prefix defaults to the quality's localized name. It is dropped
// for custom-named items and for unprefixed unique-quality names, and
// unique/normal items never carry one outside prefixed English
// rendering. Non-English catalogs append the prefix in parentheses
// instead of prepending it.
func (i *Item) FullNameWithPrefixes(prefixes map[string]string) string {
	quality := i.Quality()
	name := i.Name()
	custom := i.CustomName()
	language := i.cat.Language()

	if strings.HasPrefix(name, namePrefixThe) && i.ProperName() {
		name = name[len(namePrefixThe):]
	}
	if custom != "" {
		name = custom
	}

	prefix := ""
	if prefixes != nil {
		prefix = quality.PrettyStr
		if override, ok := prefixes[quality.Str]; ok {
			prefix = override
		}
	}
	if prefixes == nil || custom != "" || (!i.ProperName() && quality.Str == domain.QualityUnique) {
		prefix = ""
	}
	if (prefixes == nil || language != languageEnglish) &&
		(quality.Str == domain.QualityUnique || quality.Str == domain.QualityNormal) {
		prefix = ""
	}

	if language != languageEnglish && prefix != "" {
		return name + " (" + prefix + ")"
	}
	if prefix != "" {
		return prefix + " " + name
	}
	return name
}

// Styles returns the names of every style the schema entry defines.
func (i *Item) Styles() []string {
	if len(i.def.Styles) == 0 {
		return nil
	}
	styles := make([]string, len(i.def.Styles))
	for idx, style := range i.def.Styles {
		styles[idx] = style.Name
	}
	return styles
}

// StyleIndex returns the owned item's current style index, zero when
// none is selected.
func (i *Item) StyleIndex() int { return i.inst.Style }

// StyleName returns the name of the current style. Index zero means no
// selected style; an index past the style list renders as the bare
// index.
func (i *Item) StyleName() string {
	idx := i.StyleIndex()
	if idx == 0 {
		return ""
	}
	styles := i.Styles()
	if idx < 0 || idx >= len(styles) {
		return strconv.Itoa(idx)
	}
	return styles[idx]
}

// Capabilities lists the capability flags of the schema entry, sorted.
func (i *Item) Capabilities() []string {
	if len(i.def.Capabilities) == 0 {
		return nil
	}
	capabilities := make([]string, 0, len(i.def.Capabilities))
	for capability := range i.def.Capabilities {
		capabilities = append(capabilities, capability)
	}
	slices.Sort(capabilities)
	return capabilities
}

// ToolMetadata returns the schema entry's tool block untouched; its
// shape shifts per tool kind.
func (i *Item) ToolMetadata() json.RawMessage { return i.def.Tool }

// Contents resolves the item inside this one, nil when it is not a
// container or is empty.
func (i *Item) Contents() (*Item, error) {
	if i.inst.ContainedItem == nil {
		return nil, nil
	}
	return i.cat.CreateItem(i.inst.ContainedItem)
}

// String renders the decorated display name.
func (i *Item) String() string { return i.FullName() }
