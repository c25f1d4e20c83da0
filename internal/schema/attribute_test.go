package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BackpackBot_Go/internal/domain"
)

func strPtr(s string) *string   { return &s }
func boolPtr(b bool) *bool      { return &b }
func intPtr(v int) *int         { return &v }
func f64Ptr(v float64) *float64 { return &v }

// mergedAttr builds a merged record with a given encoding for the
// formatting tests.
func mergedAttr(format, effectType string, value float64) domain.MergedAttribute {
	return domain.MergedAttribute{
		AttributeDef: domain.AttributeDef{
			Defindex:          1,
			Name:              "test attribute",
			DescriptionFormat: strPtr(format),
			EffectType:        effectType,
		},
		Value: domain.NewAttrValue(value),
	}
}

// TestFormatValue verifies every value encoding against hand-computed
// expectations
func TestFormatValue(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		effectType string
		maxValue   float64
		value      float64
		want       string
	}{
		// round(1.15*100)=115, positive: 115-100=15
		{"percentage positive", "value_is_percentage", "positive", 0, 1.15, "15"},
		// round(0.15*100)=15, negative: -(100-15)=-85
		{"percentage negative", "value_is_percentage", "negative", 0, 0.15, "-85"},
		{"percentage exactly one", "value_is_percentage", "positive", 0, 1.0, "0"},
		{"additive percentage", "value_is_additive_percentage", "positive", 0, 0.25, "25"},
		// 100-round(0.75*100)=25
		{"inverted percentage", "value_is_inverted_percentage", "positive", 0, 0.75, "25"},
		// 100-round(1.4*100)=-40, negative with max 2: negated to 40
		{"inverted percentage negative high max", "value_is_inverted_percentage", "negative", 2, 1.4, "40"},
		// negative but max <= 1 keeps the sign
		{"inverted percentage negative low max", "value_is_inverted_percentage", "negative", 1, 0.75, "25"},
		{"additive integral", "value_is_additive", "positive", 0, 5, "5"},
		{"additive fractional", "value_is_additive", "positive", 0, 5.5, "5.5"},
		{"particle index", "value_is_particle_index", "neutral", 0, 33, "33"},
		{"account id", "value_is_account_id", "neutral", 0, 12345, "12345"},
		{"date epoch", "value_is_date", "neutral", 0, 0, "1970-01-01 00:00:00"},
		{"date known timestamp", "value_is_date", "neutral", 0, 1234567890, "2009-02-13 23:31:30"},
		{"unknown format renders raw", "value_is_mystery", "neutral", 0, 1.15, "1.15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := mergedAttr(tt.format, tt.effectType, tt.value)
			rec.MaxValue = tt.maxValue

			attr := NewAttribute(rec)
			assert.Equal(t, tt.want, attr.FormattedValue())
		})
	}
}

// TestFormatValueRoundTrip verifies that formatting an explicitly
// supplied value equal to the stored one matches the no-argument form
func TestFormatValueRoundTrip(t *testing.T) {
	formats := []string{
		"value_is_percentage",
		"value_is_inverted_percentage",
		"value_is_additive",
		"value_is_date",
		"value_is_mystery",
	}

	for _, format := range formats {
		attr := NewAttribute(mergedAttr(format, "positive", 1.15))

		v, ok := attr.Value()
		require.True(t, ok)
		assert.Equal(t, attr.FormattedValue(), attr.FormatValue(v), format)
	}
}

func TestValueType(t *testing.T) {
	t.Run("strips the fixed prefix", func(t *testing.T) {
		attr := NewAttribute(mergedAttr("value_is_percentage", "positive", 1))
		assert.Equal(t, "percentage", attr.ValueType())
	})

	t.Run("missing format means no type", func(t *testing.T) {
		attr := NewAttribute(domain.MergedAttribute{
			AttributeDef: domain.AttributeDef{Defindex: 1, Name: "bare"},
			Value:        domain.NewAttrValue(1),
		})
		assert.Equal(t, "", attr.ValueType())
	})

	t.Run("format shorter than the prefix means no type", func(t *testing.T) {
		attr := NewAttribute(domain.MergedAttribute{
			AttributeDef: domain.AttributeDef{
				Defindex:          1,
				Name:              "odd",
				DescriptionFormat: strPtr("value_is"),
			},
		})
		assert.Equal(t, "", attr.ValueType())
	})
}

func TestFormattedDescription(t *testing.T) {
	t.Run("replaces the first value token only", func(t *testing.T) {
		rec := mergedAttr("value_is_percentage", "positive", 1.15)
		rec.DescriptionString = strPtr("+%s1% damage, again %s1")

		attr := NewAttribute(rec)
		desc, ok := attr.FormattedDescription()

		require.True(t, ok)
		assert.Equal(t, "+15% damage, again %s1", desc)
	})

	t.Run("no description yields no rendering", func(t *testing.T) {
		attr := NewAttribute(mergedAttr("value_is_percentage", "positive", 1.15))

		_, ok := attr.FormattedDescription()
		assert.False(t, ok)
	})
}

func TestHidden(t *testing.T) {
	t.Run("absent hidden flag defaults to hidden", func(t *testing.T) {
		attr := NewAttribute(domain.MergedAttribute{
			AttributeDef: domain.AttributeDef{
				Defindex:          1,
				DescriptionString: strPtr("visible text"),
			},
		})
		assert.True(t, attr.Hidden())
	})

	t.Run("visible needs both the flag and a description", func(t *testing.T) {
		attr := NewAttribute(domain.MergedAttribute{
			AttributeDef: domain.AttributeDef{
				Defindex:          1,
				Hidden:            boolPtr(false),
				DescriptionString: strPtr("visible text"),
			},
		})
		assert.False(t, attr.Hidden())
	})

	t.Run("missing description hides even unhidden attributes", func(t *testing.T) {
		attr := NewAttribute(domain.MergedAttribute{
			AttributeDef: domain.AttributeDef{
				Defindex: 1,
				Hidden:   boolPtr(false),
			},
		})
		assert.True(t, attr.Hidden())
	})
}

// TestNewAttributeNormalization verifies the construction-time fixes
// for known upstream quirks
func TestNewAttributeNormalization(t *testing.T) {
	t.Run("tradable after date is forced to the date encoding", func(t *testing.T) {
		attr := NewAttribute(domain.MergedAttribute{
			AttributeDef: domain.AttributeDef{
				Defindex: 185,
				Name:     "tradable after date",
			},
			Value: domain.NewAttrValue(1234567890),
		})

		assert.Equal(t, "date", attr.ValueType())
		assert.Equal(t, "2009-02-13 23:31:30", attr.FormattedValue())
	})

	t.Run("oversized values recover through float_value", func(t *testing.T) {
		// 1077936128 is the integer bit pattern of float 3.0
		attr := NewAttribute(domain.MergedAttribute{
			AttributeDef: domain.AttributeDef{
				Defindex:          2,
				Name:              "turbo boost",
				DescriptionFormat: strPtr("value_is_additive"),
			},
			Value:      domain.NewAttrValue(1077936128),
			FloatValue: f64Ptr(3.0),
		})

		v, ok := attr.Value()
		require.True(t, ok)
		assert.Equal(t, 3.0, v)
		assert.Equal(t, "3", attr.FormattedValue())
	})

	t.Run("date values stay raw timestamps", func(t *testing.T) {
		attr := NewAttribute(domain.MergedAttribute{
			AttributeDef: domain.AttributeDef{
				Defindex:          3,
				Name:              "expiration date",
				DescriptionFormat: strPtr("value_is_date"),
			},
			Value:      domain.NewAttrValue(1234567890),
			FloatValue: f64Ptr(1.9),
		})

		v, ok := attr.Value()
		require.True(t, ok)
		assert.Equal(t, float64(1234567890), v)
	})

	t.Run("oversized value without float_value stays put", func(t *testing.T) {
		attr := NewAttribute(domain.MergedAttribute{
			AttributeDef: domain.AttributeDef{
				Defindex:          4,
				Name:              "big counter",
				DescriptionFormat: strPtr("value_is_additive"),
			},
			Value: domain.NewAttrValue(2000000000),
		})

		assert.Equal(t, "2000000000", attr.FormattedValue())
	})

	t.Run("non-numeric value skips normalization silently", func(t *testing.T) {
		attr := NewAttribute(domain.MergedAttribute{
			AttributeDef: domain.AttributeDef{
				Defindex: 185,
				Name:     "tradable after date",
			},
			Value: &domain.AttrValue{},
		})

		assert.Equal(t, "", attr.ValueType())
		assert.Equal(t, "", attr.FormattedValue())
	})
}

func TestAttributeString(t *testing.T) {
	t.Run("visible attributes render their description", func(t *testing.T) {
		rec := mergedAttr("value_is_percentage", "positive", 1.15)
		rec.DescriptionString = strPtr("+%s1% damage bonus")
		rec.Hidden = boolPtr(false)

		attr := NewAttribute(rec)
		assert.Equal(t, "+15% damage bonus", attr.String())
	})

	t.Run("hidden attributes render name and value", func(t *testing.T) {
		attr := NewAttribute(mergedAttr("value_is_additive", "neutral", 7))
		assert.Equal(t, "test attribute: 7", attr.String())
	})
}
