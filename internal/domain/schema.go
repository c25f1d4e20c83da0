package domain

// SchemaStatusOK is the status a schema payload reports on success.
const SchemaStatusOK = 1

// SchemaBody is the envelope of the GetSchema payload.
type SchemaBody struct {
	Result SchemaResult `json:"result"`
}

// SchemaResult is the result block of the GetSchema payload. Qualities
// maps canonical quality names to ids; QualityNames carries their
// localized display names and may be absent.
type SchemaResult struct {
	Status              int                  `json:"status"`
	ItemsGameURL        string               `json:"items_game_url,omitempty"`
	Qualities           map[string]int       `json:"qualities,omitempty"`
	QualityNames        map[string]string    `json:"qualityNames,omitempty"`
	OriginNames         []OriginName         `json:"originNames,omitempty"`
	Items               []*ItemRecord        `json:"items,omitempty"`
	Attributes          []*AttributeDef      `json:"attributes,omitempty"`
	ItemSets            []ItemSet            `json:"item_sets,omitempty"`
	Particles           []Particle           `json:"attribute_controlled_attached_particles,omitempty"`
	ItemLevels          []ItemLevelTable     `json:"item_levels,omitempty"`
	KillEaterScoreTypes []KillEaterScoreType `json:"kill_eater_score_types,omitempty"`
}

// OriginName maps a numeric item origin to its display name.
type OriginName struct {
	Origin int    `json:"origin"`
	Name   string `json:"name"`
}

// Particle is one cosmetic attached-particle definition.
type Particle struct {
	System           string `json:"system"`
	ID               int    `json:"id"`
	AttachToRootbone bool   `json:"attach_to_rootbone,omitempty"`
	Attachment       string `json:"attachment,omitempty"`
	Name             string `json:"name"`
}

// ItemSet groups items that share set bonuses.
type ItemSet struct {
	ItemSet    string          `json:"item_set"`
	Name       string          `json:"name"`
	Items      []string        `json:"items,omitempty"`
	Attributes []ItemAttribute `json:"attributes,omitempty"`
}

// ItemLevelTable names the level brackets a counting attribute's score
// falls into.
type ItemLevelTable struct {
	Name   string      `json:"name"`
	Levels []ItemLevel `json:"levels"`
}

// ItemLevel is one bracket of an ItemLevelTable.
type ItemLevel struct {
	Level         int    `json:"level"`
	RequiredScore int    `json:"required_score"`
	Name          string `json:"name"`
}

// KillEaterScoreType names what a counting attribute counts.
type KillEaterScoreType struct {
	Type     int    `json:"type"`
	TypeName string `json:"type_name"`
}
