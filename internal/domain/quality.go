package domain

// Quality is one resolved item quality. Str is the canonical
// non-localized name (e.g. "vintage"), PrettyStr the localized display
// name (e.g. "Vintage"), falling back to Str when the payload has no
// localized table.
type Quality struct {
	ID        int    `json:"id"`
	Str       string `json:"str"`
	PrettyStr string `json:"prettystr"`
}

// Canonical quality names the item naming rules key on.
const (
	QualityUnique = "unique"
	QualityNormal = "normal"
)

// BrokenQuality is the sentinel quality for items whose quality id is
// not in the catalog.
func BrokenQuality() Quality {
	return Quality{ID: 0, Str: "ohnoes", PrettyStr: "Broken"}
}
