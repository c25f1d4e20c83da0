package domain

import (
	"encoding/json"
	"strconv"
)

// AttributeDef is one global attribute definition from the schema.
// Hidden is a pointer because the upstream treats an absent flag as true.
type AttributeDef struct {
	Defindex          int     `json:"defindex"`
	Name              string  `json:"name"`
	AttributeClass    string  `json:"attribute_class,omitempty"`
	DescriptionString *string `json:"description_string,omitempty"`
	DescriptionFormat *string `json:"description_format,omitempty"`
	EffectType        string  `json:"effect_type,omitempty"`
	Hidden            *bool   `json:"hidden,omitempty"`
	StoredAsInteger   bool    `json:"stored_as_integer,omitempty"`
	MinValue          float64 `json:"min_value,omitempty"`
	MaxValue          float64 `json:"max_value,omitempty"`
}

// ItemAttribute is an attribute override as it appears on item records.
// Schema entries key their overrides by Name, owned items by Defindex;
// both shapes share this record.
type ItemAttribute struct {
	Defindex    *int         `json:"defindex,omitempty"`
	Name        string       `json:"name,omitempty"`
	Class       string       `json:"class,omitempty"`
	Value       *AttrValue   `json:"value,omitempty"`
	FloatValue  *float64     `json:"float_value,omitempty"`
	AccountInfo *AccountInfo `json:"account_info,omitempty"`
}

// AccountInfo names the account an account_id attribute points at
// (gifter, crafter and similar).
type AccountInfo struct {
	SteamID     uint64 `json:"steamid"`
	PersonaName string `json:"personaname"`
}

// MergedAttribute is a resolved attribute record: one attribute
// definition overlaid with the fields of an attribute override.
// Override fields win on overlap.
type MergedAttribute struct {
	AttributeDef
	Value       *AttrValue
	FloatValue  *float64
	AccountInfo *AccountInfo
}

// MergeAttribute resolves an attribute override against its definition.
// The returned record carries every definition field plus the override's
// value fields.
func MergeAttribute(def AttributeDef, override ItemAttribute) MergedAttribute {
	return MergedAttribute{AttributeDef: def}.Apply(override)
}

// Apply overlays a further override onto an already merged record and
// returns the result as a new record. Used when an owned item's own
// attribute list overrides the overrides its schema entry declares.
func (m MergedAttribute) Apply(override ItemAttribute) MergedAttribute {
	if override.Value != nil {
		v := *override.Value
		m.Value = &v
	}
	if override.FloatValue != nil {
		f := *override.FloatValue
		m.FloatValue = &f
	}
	if override.AccountInfo != nil {
		ai := *override.AccountInfo
		m.AccountInfo = &ai
	}
	return m
}

// AttrValue is a numeric attribute value. The upstream serves numbers,
// quoted numbers and occasional junk; anything non-numeric decodes to an
// invalid value instead of failing the whole payload.
type AttrValue struct {
	Num   float64
	Valid bool
}

func NewAttrValue(num float64) *AttrValue {
	return &AttrValue{Num: num, Valid: true}
}

func (v *AttrValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = AttrValue{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*v = AttrValue{}
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*v = AttrValue{}
			return nil
		}
		*v = AttrValue{Num: f, Valid: true}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*v = AttrValue{}
		return nil
	}
	*v = AttrValue{Num: f, Valid: true}
	return nil
}

func (v AttrValue) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.Num)
}
