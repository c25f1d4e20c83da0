package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BackpackBot_Go/internal/domain"
)

func TestItemAccessors(t *testing.T) {
	catalog := testCatalog(t, "en")

	t.Run("definition fields come from the schema entry", func(t *testing.T) {
		item, err := catalog.Item(5)
		require.NoError(t, err)

		assert.Equal(t, "Axe", item.TypeName())
		assert.Equal(t, "melee", item.Slot())
		assert.Equal(t, 1, item.MinLevel())
		assert.Equal(t, 100, item.MaxLevel())
		assert.True(t, item.ProperName())
		assert.Equal(t, "", item.Description())
	})

	t.Run("instance fields come from the owned record", func(t *testing.T) {
		item, err := catalog.CreateItem(&domain.ItemRecord{
			Defindex:   intPtr(5),
			ID:         7000,
			OriginalID: 6500,
			Level:      42,
			CustomName: "Chopper",
			CustomDesc: "It chops.",
		})
		require.NoError(t, err)

		assert.Equal(t, uint64(7000), item.ID())
		assert.Equal(t, uint64(6500), item.OriginalID())
		assert.Equal(t, 42, item.Level())
		assert.Equal(t, "Chopper", item.CustomName())
		assert.Equal(t, "It chops.", item.CustomDescription())
	})

	t.Run("self-describing records carry their own description", func(t *testing.T) {
		item, err := catalog.CreateItem(&domain.ItemRecord{
			Defindex:        intPtr(999),
			ItemName:        strPtr("Soda"),
			ItemDescription: strPtr("Drink it."),
		})
		require.NoError(t, err)

		assert.Equal(t, "Drink it.", item.Description())
	})

	t.Run("quantity defaults to one", func(t *testing.T) {
		item, err := catalog.Item(5)
		require.NoError(t, err)
		assert.Equal(t, 1, item.Quantity())

		stacked, err := catalog.CreateItem(&domain.ItemRecord{Defindex: intPtr(5), Quantity: intPtr(5)})
		require.NoError(t, err)
		assert.Equal(t, 5, stacked.Quantity())
	})
}

func TestItemImage(t *testing.T) {
	catalog := testCatalog(t, "en")
	item, err := catalog.Item(5)
	require.NoError(t, err)

	t.Run("small and large sizes resolve", func(t *testing.T) {
		small, err := item.Image(ImageSmall)
		require.NoError(t, err)
		assert.Equal(t, "http://cdn.example.com/axe.png", small)

		large, err := item.Image(ImageLarge)
		require.NoError(t, err)
		assert.Equal(t, "http://cdn.example.com/axe_large.png", large)
	})

	t.Run("an unknown size names the bad field", func(t *testing.T) {
		_, err := item.Image(ImageSize("image_url_huge"))

		assert.ErrorIs(t, err, domain.ErrUnknownField)
		assert.Contains(t, err.Error(), "image_url_huge")
	})
}

// TestCatalogRoundTrip resolves every cataloged defindex back through
// CreateItem and expects the same item
func TestCatalogRoundTrip(t *testing.T) {
	catalog := testCatalog(t, "en")

	for definition := range catalog.Items() {
		owned := &domain.ItemRecord{Defindex: intPtr(definition.Defindex())}

		resolved, err := catalog.CreateItem(owned)

		require.NoError(t, err)
		assert.Equal(t, definition.Defindex(), resolved.Defindex())
		assert.Equal(t, definition.Name(), resolved.Name())
	}
}

func TestItemQuality(t *testing.T) {
	catalog := testCatalog(t, "en")

	t.Run("instance quality wins over the definition", func(t *testing.T) {
		item, err := catalog.CreateItem(&domain.ItemRecord{Defindex: intPtr(5), Quality: intPtr(3)})
		require.NoError(t, err)

		assert.Equal(t, domain.Quality{ID: 3, Str: "vintage", PrettyStr: "Vintage"}, item.Quality())
	})

	t.Run("definition quality applies when the instance has none", func(t *testing.T) {
		item, err := catalog.Item(5)
		require.NoError(t, err)

		assert.Equal(t, 6, item.Quality().ID)
		assert.Equal(t, "unique", item.Quality().Str)
	})

	t.Run("no quality anywhere means normal", func(t *testing.T) {
		item, err := catalog.CreateItem(&domain.ItemRecord{
			Defindex: intPtr(999),
			ItemName: strPtr("Plain Thing"),
		})
		require.NoError(t, err)

		assert.Equal(t, domain.Quality{ID: 0, Str: "normal", PrettyStr: "Normal"}, item.Quality())
	})

	t.Run("an id outside the quality table renders broken", func(t *testing.T) {
		item, err := catalog.CreateItem(&domain.ItemRecord{Defindex: intPtr(5), Quality: intPtr(99)})
		require.NoError(t, err)

		assert.Equal(t, domain.BrokenQuality(), item.Quality())
	})
}

func TestItemAttributeMerge(t *testing.T) {
	catalog := testCatalog(t, "en")

	t.Run("declared overrides resolve without owned overrides", func(t *testing.T) {
		item, err := catalog.Item(5)
		require.NoError(t, err)

		attrs, err := item.Attributes()

		require.NoError(t, err)
		require.Len(t, attrs, 2)
		assert.Equal(t, 1, attrs[0].ID())
		assert.Equal(t, 5, attrs[1].ID())
		crit, ok := attrs[1].Value()
		require.True(t, ok)
		assert.Equal(t, float64(1), crit)
	})

	t.Run("an owned override replaces the declared value and keeps the definition", func(t *testing.T) {
		item, err := catalog.CreateItem(&domain.ItemRecord{
			Defindex: intPtr(5),
			Attributes: []domain.ItemAttribute{
				{Defindex: intPtr(5), Value: domain.NewAttrValue(3)},
			},
		})
		require.NoError(t, err)

		attrs, err := item.Attributes()

		require.NoError(t, err)
		// one merged attribute per declared entry, never a duplicate
		require.Len(t, attrs, 2)
		crit := attrs[1]
		assert.Equal(t, 5, crit.ID())
		v, ok := crit.Value()
		require.True(t, ok)
		assert.Equal(t, float64(3), v)
		assert.Equal(t, float64(0), crit.MinValue())
		assert.Equal(t, float64(100), crit.MaxValue())
	})

	t.Run("owned overrides without a declared match append after them", func(t *testing.T) {
		item, err := catalog.CreateItem(&domain.ItemRecord{
			Defindex: intPtr(5),
			Attributes: []domain.ItemAttribute{
				{Defindex: intPtr(2), Value: domain.NewAttrValue(0.85)},
			},
		})
		require.NoError(t, err)

		attrs, err := item.Attributes()

		require.NoError(t, err)
		require.Len(t, attrs, 3)
		assert.Equal(t, 2, attrs[2].ID())
		// 0.85 rounds to 85, negative effect renders as -(100-85)
		assert.Equal(t, "-15", attrs[2].FormattedValue())
	})

	t.Run("an owned override with an unknown defindex fails", func(t *testing.T) {
		item, err := catalog.CreateItem(&domain.ItemRecord{
			Defindex: intPtr(5),
			Attributes: []domain.ItemAttribute{
				{Defindex: intPtr(999), Value: domain.NewAttrValue(1)},
			},
		})
		require.NoError(t, err)

		_, err = item.Attributes()

		assert.ErrorIs(t, err, domain.ErrAttributeUnknown)
	})

	t.Run("owned overrides without a defindex are skipped", func(t *testing.T) {
		item, err := catalog.CreateItem(&domain.ItemRecord{
			Defindex: intPtr(5),
			Attributes: []domain.ItemAttribute{
				{Name: "stray", Value: domain.NewAttrValue(1)},
			},
		})
		require.NoError(t, err)

		attrs, err := item.Attributes()

		require.NoError(t, err)
		assert.Len(t, attrs, 2)
	})
}

func TestItemAttributeLookup(t *testing.T) {
	catalog := testCatalog(t, "en")
	item, err := catalog.Item(5)
	require.NoError(t, err)

	t.Run("by id", func(t *testing.T) {
		attr, err := item.AttributeByID(1)
		require.NoError(t, err)
		assert.Equal(t, "damage bonus", attr.Name())

		_, err = item.AttributeByID(999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("by name", func(t *testing.T) {
		attr, err := item.AttributeByName("crit mod disabled")
		require.NoError(t, err)
		assert.Equal(t, 5, attr.ID())

		_, err = item.AttributeByName("cannot trade")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("presence check", func(t *testing.T) {
		assert.True(t, item.HasAttribute("damage bonus"))
		assert.False(t, item.HasAttribute("cannot trade"))
	})
}

func TestInventoryToken(t *testing.T) {
	catalog := testCatalog(t, "en")

	t.Run("a zero token means unplaced and unequipped", func(t *testing.T) {
		item, err := catalog.Item(5)
		require.NoError(t, err)

		assert.Equal(t, -1, item.Position())
		assert.Empty(t, item.EquippedClasses())
	})

	t.Run("the low word is the backpack position", func(t *testing.T) {
		// 0x10004: slot 4, Scout bit set in the equipped field
		item, err := catalog.CreateItem(&domain.ItemRecord{Defindex: intPtr(5), Inventory: 65540})
		require.NoError(t, err)

		assert.Equal(t, 4, item.Position())
		assert.Equal(t, []string{"Scout"}, item.EquippedClasses())
	})

	t.Run("multiple equipped classes come back in class order", func(t *testing.T) {
		// 6<<16 sets the Sniper and Soldier bits, low word 12 is the slot
		item, err := catalog.CreateItem(&domain.ItemRecord{Defindex: intPtr(5), Inventory: 6<<16 | 12})
		require.NoError(t, err)

		assert.Equal(t, 12, item.Position())
		assert.Equal(t, []string{"Sniper", "Soldier"}, item.EquippedClasses())
	})
}

func TestEquippableClasses(t *testing.T) {
	catalog := testCatalog(t, "en")

	t.Run("restricted items list their classes", func(t *testing.T) {
		item, err := catalog.Item(10)
		require.NoError(t, err)

		assert.Equal(t, []string{"Scout"}, item.EquippableClasses())
	})

	t.Run("unrestricted items fit every class", func(t *testing.T) {
		item, err := catalog.Item(5)
		require.NoError(t, err)

		classes := item.EquippableClasses()
		assert.Len(t, classes, 9)
		assert.Contains(t, classes, "Engineer")
	})
}

func TestUntradable(t *testing.T) {
	catalog := testCatalog(t, "en")

	t.Run("the flag marks an item untradable", func(t *testing.T) {
		item, err := catalog.CreateItem(&domain.ItemRecord{Defindex: intPtr(10), FlagCannotTrade: true})
		require.NoError(t, err)

		assert.True(t, item.Untradable())
	})

	t.Run("the cannot trade attribute marks an item untradable", func(t *testing.T) {
		item, err := catalog.CreateItem(&domain.ItemRecord{
			Defindex: intPtr(10),
			Attributes: []domain.ItemAttribute{
				{Defindex: intPtr(100), Value: domain.NewAttrValue(1)},
			},
		})
		require.NoError(t, err)

		assert.True(t, item.Untradable())
	})

	t.Run("everything else trades", func(t *testing.T) {
		item, err := catalog.Item(10)
		require.NoError(t, err)

		assert.False(t, item.Untradable())
	})
}

func TestFullName(t *testing.T) {
	t.Run("english rendering", func(t *testing.T) {
		catalog := testCatalog(t, "en")

		axe, err := catalog.Item(5)
		require.NoError(t, err)
		bonk, err := catalog.Item(10)
		require.NoError(t, err)
		hound, err := catalog.Item(30)
		require.NoError(t, err)

		t.Run("proper names drop the article and keep the quality", func(t *testing.T) {
			assert.Equal(t, "Unique Axe", axe.FullName())
		})

		t.Run("a nil prefix map suppresses every prefix", func(t *testing.T) {
			assert.Equal(t, "Axe", axe.FullNameWithPrefixes(nil))
		})

		t.Run("unprefixed unique names stay bare", func(t *testing.T) {
			assert.Equal(t, "Bonk! Atomic Punch", bonk.FullName())
		})

		t.Run("other qualities prefix their localized name", func(t *testing.T) {
			assert.Equal(t, "Vintage Hound Dog", hound.FullName())
		})

		t.Run("a custom name replaces everything", func(t *testing.T) {
			named, err := catalog.CreateItem(&domain.ItemRecord{
				Defindex:   intPtr(30),
				CustomName: "Old Faithful",
			})
			require.NoError(t, err)

			assert.Equal(t, "Old Faithful", named.FullName())
		})

		t.Run("the map overrides a quality's prefix", func(t *testing.T) {
			assert.Equal(t, "Classic Hound Dog",
				hound.FullNameWithPrefixes(map[string]string{"vintage": "Classic"}))
		})

		t.Run("an empty override strips just that prefix", func(t *testing.T) {
			assert.Equal(t, "Hound Dog",
				hound.FullNameWithPrefixes(map[string]string{"vintage": ""}))
		})
	})

	t.Run("non-english rendering", func(t *testing.T) {
		catalog := testCatalog(t, "de")

		t.Run("the prefix moves into parentheses", func(t *testing.T) {
			hound, err := catalog.Item(30)
			require.NoError(t, err)

			assert.Equal(t, "Hound Dog (Vintage)", hound.FullName())
		})

		t.Run("unique items stay bare", func(t *testing.T) {
			axe, err := catalog.Item(5)
			require.NoError(t, err)

			assert.Equal(t, "Axe", axe.FullName())
		})
	})
}

func TestStyles(t *testing.T) {
	catalog := testCatalog(t, "en")

	t.Run("the schema entry lists its styles", func(t *testing.T) {
		item, err := catalog.Item(10)
		require.NoError(t, err)

		assert.Equal(t, []string{"Original", "Retro"}, item.Styles())
	})

	t.Run("index zero means no selected style", func(t *testing.T) {
		item, err := catalog.Item(10)
		require.NoError(t, err)

		assert.Equal(t, 0, item.StyleIndex())
		assert.Equal(t, "", item.StyleName())
	})

	t.Run("a selected style resolves by index", func(t *testing.T) {
		item, err := catalog.CreateItem(&domain.ItemRecord{Defindex: intPtr(10), Style: 1})
		require.NoError(t, err)

		assert.Equal(t, "Retro", item.StyleName())
	})

	t.Run("an index past the list renders as the bare index", func(t *testing.T) {
		item, err := catalog.CreateItem(&domain.ItemRecord{Defindex: intPtr(10), Style: 5})
		require.NoError(t, err)

		assert.Equal(t, "5", item.StyleName())
	})
}

func TestCapabilities(t *testing.T) {
	catalog := testCatalog(t, "en")

	item, err := catalog.Item(10)
	require.NoError(t, err)
	assert.Equal(t, []string{"can_gift_wrap", "nameable"}, item.Capabilities())

	plain, err := catalog.Item(5)
	require.NoError(t, err)
	assert.Nil(t, plain.Capabilities())
}

func TestContents(t *testing.T) {
	catalog := testCatalog(t, "en")

	t.Run("a contained item resolves against the catalog", func(t *testing.T) {
		crate, err := catalog.CreateItem(&domain.ItemRecord{
			Defindex:      intPtr(10),
			ContainedItem: &domain.ItemRecord{Defindex: intPtr(5)},
		})
		require.NoError(t, err)

		inner, err := crate.Contents()

		require.NoError(t, err)
		require.NotNil(t, inner)
		assert.Equal(t, 5, inner.Defindex())
	})

	t.Run("no contained item means nil", func(t *testing.T) {
		item, err := catalog.Item(10)
		require.NoError(t, err)

		inner, err := item.Contents()

		require.NoError(t, err)
		assert.Nil(t, inner)
	})

	t.Run("an unresolvable contained item fails", func(t *testing.T) {
		crate, err := catalog.CreateItem(&domain.ItemRecord{
			Defindex:      intPtr(10),
			ContainedItem: &domain.ItemRecord{Defindex: intPtr(999)},
		})
		require.NoError(t, err)

		_, err = crate.Contents()

		assert.ErrorIs(t, err, domain.ErrItemNotResolvable)
	})
}

func TestItemOrigin(t *testing.T) {
	catalog := testCatalog(t, "en")

	t.Run("a known origin resolves to its name", func(t *testing.T) {
		item, err := catalog.CreateItem(&domain.ItemRecord{Defindex: intPtr(5), Origin: intPtr(2)})
		require.NoError(t, err)

		origin, ok := item.Origin()
		require.True(t, ok)
		assert.Equal(t, "Purchased", origin)
	})

	t.Run("an unknown origin reports absent", func(t *testing.T) {
		item, err := catalog.CreateItem(&domain.ItemRecord{Defindex: intPtr(5), Origin: intPtr(9)})
		require.NoError(t, err)

		_, ok := item.Origin()
		assert.False(t, ok)
	})

	t.Run("no origin reports absent", func(t *testing.T) {
		item, err := catalog.Item(5)
		require.NoError(t, err)

		_, ok := item.Origin()
		assert.False(t, ok)
	})
}
