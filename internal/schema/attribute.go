package schema

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/osse101/BackpackBot_Go/internal/domain"
)

// valueTypePrefix is the fixed prefix of description_format; the tail
// after it names the value encoding.
const valueTypePrefix = "value_is_"

// Value encodings the formatter dispatches on.
const (
	valueTypePercentage         = "percentage"
	valueTypeAdditivePercentage = "additive_percentage"
	valueTypeInvertedPercentage = "inverted_percentage"
	valueTypeAdditive           = "additive"
	valueTypeParticleIndex      = "particle_index"
	valueTypeAccountID          = "account_id"
	valueTypeDate               = "date"
)

const (
	// effectTypeNegative marks attributes whose percentages read
	// against the player.
	effectTypeNegative = "negative"

	dateLayout = "2006-01-02 15:04:05"

	// substToken is the placeholder description strings carry for the
	// formatted value.
	substToken = "%s1"

	// tradableAfterDateName is served without a date format even
	// though its value is a timestamp.
	tradableAfterDateName = "tradable after date"

	// floatRecoveryThreshold: raw values above this on non-date
	// attributes are integer bit patterns of a float; float_value
	// carries the real one.
	floatRecoveryThreshold = 1000000000
)

// Attribute is a read view over one merged attribute record. It formats
// values per the record's declared encoding and decides tooltip
// visibility.
type Attribute struct {
	rec domain.MergedAttribute
}

// NewAttribute wraps a merged record, normalizing known upstream quirks
// once: "tradable after date" is forced to the date encoding, and
// oversized non-date values are replaced with float_value when present.
// Records without a numeric value skip normalization.
func NewAttribute(rec domain.MergedAttribute) *Attribute {
	a := &Attribute{rec: rec}
	if rec.Value == nil || !rec.Value.Valid {
		return a
	}
	if a.Name() == tradableAfterDateName {
		format := valueTypePrefix + valueTypeDate
		a.rec.DescriptionFormat = &format
	}
	if a.ValueType() != valueTypeDate && rec.Value.Num > floatRecoveryThreshold && rec.FloatValue != nil {
		a.rec.Value = domain.NewAttrValue(*rec.FloatValue)
	}
	return a
}

// ID returns the attribute defindex.
func (a *Attribute) ID() int { return a.rec.Defindex }

func (a *Attribute) Name() string { return a.rec.Name }

func (a *Attribute) Class() string { return a.rec.AttributeClass }

// EffectType is "positive", "negative" or "neutral".
func (a *Attribute) EffectType() string { return a.rec.EffectType }

// MinValue is the declared lower bound; values are not guaranteed to
// stay above it.
func (a *Attribute) MinValue() float64 { return a.rec.MinValue }

// MaxValue is the declared upper bound; values are not guaranteed to
// stay below it.
func (a *Attribute) MaxValue() float64 { return a.rec.MaxValue }

// Value returns the attribute's numeric value; ok is false when the
// record carries none.
func (a *Attribute) Value() (float64, bool) {
	if a.rec.Value == nil || !a.rec.Value.Valid {
		return 0, false
	}
	return a.rec.Value.Num, true
}

// FloatValue returns the reinterpreted float value when the record
// carries one.
func (a *Attribute) FloatValue() (float64, bool) {
	if a.rec.FloatValue == nil {
		return 0, false
	}
	return *a.rec.FloatValue, true
}

// AccountInfo names the account an account_id value points at, or nil.
func (a *Attribute) AccountInfo() *domain.AccountInfo { return a.rec.AccountInfo }

// Description returns the raw description string; ok reports presence.
// An absent description also makes the attribute hidden.
func (a *Attribute) Description() (string, bool) {
	if a.rec.DescriptionString == nil {
		return "", false
	}
	return *a.rec.DescriptionString, true
}

// ValueType is the tail of description_format after its fixed
// "value_is_" prefix, or empty when the record declares no format.
func (a *Attribute) ValueType() string {
	if a.rec.DescriptionFormat == nil {
		return ""
	}
	format := *a.rec.DescriptionFormat
	if len(format) <= len(valueTypePrefix) {
		return ""
	}
	return format[len(valueTypePrefix):]
}

// Hidden reports whether the attribute is not meant for display. An
// absent hidden flag counts as hidden, and so does a missing
// description.
func (a *Attribute) Hidden() bool {
	hidden := true
	if a.rec.Hidden != nil {
		hidden = *a.rec.Hidden
	}
	if hidden {
		return true
	}
	_, ok := a.Description()
	return !ok
}

// FormattedValue renders the record's own value per its encoding.
// Records without a numeric value render empty.
func (a *Attribute) FormattedValue() string {
	v, ok := a.Value()
	if !ok {
		return ""
	}
	return a.FormatValue(v)
}

// FormatValue renders an explicit value per the record's encoding.
//
// Percentages render as deltas against 100%: a 1.15 multiplier is
// "+15%" territory, so "15"; a negative-effect 0.15 multiplier reads
// as "-85". Inverted percentages render the remainder to 100%, negated
// for negative-effect attributes whose declared maximum exceeds 1.
func (a *Attribute) FormatValue(value float64) string {
	switch a.ValueType() {
	case valueTypePercentage:
		pct := int(math.Round(value * 100))
		if a.EffectType() == effectTypeNegative {
			pct = -(100 - pct)
		} else {
			pct -= 100
		}
		return strconv.Itoa(pct)
	case valueTypeAdditivePercentage:
		return strconv.Itoa(int(math.Round(value * 100)))
	case valueTypeInvertedPercentage:
		pct := 100 - int(math.Round(value*100))
		if a.EffectType() == effectTypeNegative && a.MaxValue() > 1 {
			pct = -pct
		}
		return strconv.Itoa(pct)
	case valueTypeDate:
		return time.Unix(int64(value), 0).UTC().Format(dateLayout)
	default:
		// additive, particle_index and account_id render like plain
		// numbers: integral values lose the decimal part.
		return formatNumber(value)
	}
}

// FormattedDescription renders the description with the first value
// token replaced by the formatted value; ok is false when the record
// has no description to render.
func (a *Attribute) FormattedDescription() (string, bool) {
	desc, ok := a.Description()
	if !ok || desc == "" {
		return "", false
	}
	return strings.Replace(desc, substToken, a.FormattedValue(), 1), true
}

// String renders the attribute the way a tooltip would: the formatted
// description for visible attributes, name and value for hidden ones.
func (a *Attribute) String() string {
	if !a.Hidden() {
		if desc, ok := a.FormattedDescription(); ok {
			return desc
		}
	}
	return a.Name() + ": " + a.FormattedValue()
}

// formatNumber renders integral values without a decimal part and
// everything else in shortest form.
func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
