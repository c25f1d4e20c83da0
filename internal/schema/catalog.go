package schema

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/osse101/BackpackBot_Go/internal/domain"
)

// languageEnglish is the language whose naming rules keep quality
// prefixes in front of the item name.
const languageEnglish = "en"

// Catalog is an immutable index over one language's schema payload:
// item definitions by defindex, attribute definitions by defindex and
// by name, qualities by numeric id. Safe for concurrent readers once
// built.
type Catalog struct {
	language     string
	itemsGameURL string

	items      map[int]*domain.ItemRecord
	itemOrder  []int
	attributes map[int]*domain.AttributeDef
	attrNames  map[string]int
	attrOrder  []int
	qualities  map[int]domain.Quality
	origins    map[int]string
	particles  map[int]domain.Particle

	itemSets            []domain.ItemSet
	itemLevels          []domain.ItemLevelTable
	killEaterScoreTypes []domain.KillEaterScoreType
}

// Build indexes a schema payload for the given language. The payload
// must report the success status; any other status fails with the
// status code attached.
func Build(body *domain.SchemaBody, language string) (*Catalog, error) {
	if body == nil {
		return nil, fmt.Errorf("%w: empty payload", domain.ErrSchemaStatus)
	}
	if body.Result.Status != domain.SchemaStatusOK {
		return nil, &domain.SchemaStatusError{Status: body.Result.Status}
	}

	res := body.Result
	c := &Catalog{
		language:            language,
		itemsGameURL:        res.ItemsGameURL,
		items:               make(map[int]*domain.ItemRecord, len(res.Items)),
		attributes:          make(map[int]*domain.AttributeDef, len(res.Attributes)),
		attrNames:           make(map[string]int, len(res.Attributes)),
		qualities:           make(map[int]domain.Quality, len(res.Qualities)),
		origins:             make(map[int]string, len(res.OriginNames)),
		particles:           make(map[int]domain.Particle, len(res.Particles)),
		itemSets:            res.ItemSets,
		itemLevels:          res.ItemLevels,
		killEaterScoreTypes: res.KillEaterScoreTypes,
	}

	for _, attr := range res.Attributes {
		if attr == nil {
			continue
		}
		c.attributes[attr.Defindex] = attr
		c.attrNames[attr.Name] = attr.Defindex
	}
	c.attrOrder = sortedKeys(c.attributes)

	for _, item := range res.Items {
		if item == nil || item.Defindex == nil {
			continue
		}
		c.items[*item.Defindex] = item
	}
	c.itemOrder = sortedKeys(c.items)

	for str, id := range res.Qualities {
		quality := domain.Quality{ID: id, Str: str, PrettyStr: str}
		if pretty, ok := res.QualityNames[str]; ok {
			quality.PrettyStr = pretty
		}
		c.qualities[id] = quality
	}

	for _, origin := range res.OriginNames {
		c.origins[origin.Origin] = origin.Name
	}
	for _, particle := range res.Particles {
		c.particles[particle.ID] = particle
	}

	return c, nil
}

// Language returns the ISO code the catalog is localized to.
func (c *Catalog) Language() string { return c.language }

// ItemsGameURL returns the client schema URL the payload advertised.
func (c *Catalog) ItemsGameURL() string { return c.itemsGameURL }

// Len reports how many item definitions the catalog holds.
func (c *Catalog) Len() int { return len(c.items) }

// CreateItem resolves a raw record into an item view. A record that
// does not describe itself must have a schema entry for its defindex.
func (c *Catalog) CreateItem(rec *domain.ItemRecord) (*Item, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: nil record", domain.ErrItemNotResolvable)
	}
	if rec.SelfDescribing() {
		return &Item{cat: c, inst: rec, def: rec}, nil
	}
	if rec.Defindex == nil {
		return nil, fmt.Errorf("%w: record has no defindex", domain.ErrItemNotResolvable)
	}
	def, ok := c.items[*rec.Defindex]
	if !ok {
		return nil, fmt.Errorf("%w: defindex %d", domain.ErrItemNotResolvable, *rec.Defindex)
	}
	return &Item{cat: c, inst: rec, def: def}, nil
}

// Item looks an item up by defindex.
func (c *Catalog) Item(defindex int) (*Item, error) {
	def, ok := c.items[defindex]
	if !ok {
		return nil, fmt.Errorf("%w: item %d", domain.ErrNotFound, defindex)
	}
	return c.CreateItem(def)
}

// Items yields every catalog item ascending by defindex, each wrapped
// as a view with the definition standing in for the instance. The
// sequence is lazy and restartable.
func (c *Catalog) Items() iter.Seq[*Item] {
	return func(yield func(*Item) bool) {
		for _, defindex := range c.itemOrder {
			item, err := c.CreateItem(c.items[defindex])
			if err != nil {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// Attribute looks up a global attribute definition by defindex.
func (c *Catalog) Attribute(defindex int) (*domain.AttributeDef, error) {
	def, ok := c.attributes[defindex]
	if !ok {
		return nil, fmt.Errorf("%w: attribute %d", domain.ErrNotFound, defindex)
	}
	return def, nil
}

// AttributeByName looks up a global attribute definition by its
// canonical name.
func (c *Catalog) AttributeByName(name string) (*domain.AttributeDef, error) {
	defindex, ok := c.attrNames[name]
	if !ok {
		return nil, fmt.Errorf("%w: attribute %q", domain.ErrNotFound, name)
	}
	return c.attributes[defindex], nil
}

// Attributes returns a view over every attribute definition, ascending
// by defindex.
func (c *Catalog) Attributes() []*Attribute {
	out := make([]*Attribute, 0, len(c.attrOrder))
	for _, defindex := range c.attrOrder {
		out = append(out, NewAttribute(domain.MergedAttribute{AttributeDef: *c.attributes[defindex]}))
	}
	return out
}

// ItemAttributes returns the attribute overrides an item's schema entry
// declares, merged over their global definitions and wrapped as views.
func (c *Catalog) ItemAttributes(item *Item) ([]*Attribute, error) {
	if item == nil {
		return nil, nil
	}
	merged, err := c.declaredAttributesFor(item.inst)
	if err != nil {
		return nil, err
	}
	out := make([]*Attribute, len(merged))
	for idx, rec := range merged {
		out[idx] = NewAttribute(rec)
	}
	return out, nil
}

// Qualities returns every quality keyed by numeric id.
func (c *Catalog) Qualities() map[int]domain.Quality {
	out := make(map[int]domain.Quality, len(c.qualities))
	maps.Copy(out, c.qualities)
	return out
}

// Origins returns the origin-name table keyed by numeric origin.
func (c *Catalog) Origins() map[int]string {
	out := make(map[int]string, len(c.origins))
	maps.Copy(out, c.origins)
	return out
}

// Particle looks up an attached-particle definition by id.
func (c *Catalog) Particle(id int) (domain.Particle, bool) {
	particle, ok := c.particles[id]
	return particle, ok
}

// ItemSets returns the schema's item sets.
func (c *Catalog) ItemSets() []domain.ItemSet { return slices.Clone(c.itemSets) }

// ItemLevels returns the schema's level bracket tables.
func (c *Catalog) ItemLevels() []domain.ItemLevelTable { return slices.Clone(c.itemLevels) }

// KillEaterScoreTypes returns what counting attributes can count.
func (c *Catalog) KillEaterScoreTypes() []domain.KillEaterScoreType {
	return slices.Clone(c.killEaterScoreTypes)
}

func (c *Catalog) quality(id int) (domain.Quality, bool) {
	quality, ok := c.qualities[id]
	return quality, ok
}

// declaredAttributesFor resolves the attribute overrides declared on
// the schema entry matching an owned record's defindex. Records without
// a defindex, or without a schema entry, declare nothing. An override
// naming an unknown attribute marks the catalog inconsistent.
func (c *Catalog) declaredAttributesFor(rec *domain.ItemRecord) ([]domain.MergedAttribute, error) {
	if rec == nil || rec.Defindex == nil {
		return nil, nil
	}
	def, ok := c.items[*rec.Defindex]
	if !ok {
		return nil, nil
	}
	if len(def.Attributes) == 0 {
		return nil, nil
	}
	merged := make([]domain.MergedAttribute, 0, len(def.Attributes))
	for _, override := range def.Attributes {
		defindex, ok := c.attrNames[override.Name]
		if !ok {
			return nil, fmt.Errorf("%w: name %q", domain.ErrAttributeUnknown, override.Name)
		}
		merged = append(merged, domain.MergeAttribute(*c.attributes[defindex], override))
	}
	return merged, nil
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
