package handler

import (
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/BackpackBot_Go/internal/config"
	"github.com/osse101/BackpackBot_Go/internal/domain"
	"github.com/osse101/BackpackBot_Go/internal/logger"
	"github.com/osse101/BackpackBot_Go/internal/schema"
)

const (
	defaultItemPageSize = 50
	maxItemPageSize     = 500
)

// SchemaHandler serves read access to the item schema catalog
type SchemaHandler struct {
	schemas  schema.Provider
	language string
}

// NewSchemaHandler creates a schema handler with a default language for
// requests that do not name one
func NewSchemaHandler(schemas schema.Provider, defaultLanguage string) *SchemaHandler {
	return &SchemaHandler{
		schemas:  schemas,
		language: defaultLanguage,
	}
}

// languageParam resolves the language for a request, falling back to the
// configured default
func (h *SchemaHandler) languageParam(r *http.Request) string {
	raw := r.URL.Query().Get("language")
	if raw == "" {
		return h.language
	}
	return config.NormalizeLanguage(raw)
}

// AttributeLine is one formatted attribute row on an item
type AttributeLine struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	EffectType  string `json:"effect_type,omitempty"`
	Hidden      bool   `json:"hidden,omitempty"`
}

// ItemDetail is the full catalog view of a single item definition
type ItemDetail struct {
	Defindex      int             `json:"defindex"`
	Name          string          `json:"name"`
	FullName      string          `json:"full_name"`
	TypeName      string          `json:"type_name,omitempty"`
	Slot          string          `json:"slot,omitempty"`
	ItemClass     string          `json:"item_class,omitempty"`
	CraftClass    string          `json:"craft_class,omitempty"`
	Quality       string          `json:"quality"`
	Description   string          `json:"description,omitempty"`
	MinLevel      int             `json:"min_level"`
	MaxLevel      int             `json:"max_level"`
	ImageURL      string          `json:"image_url,omitempty"`
	ImageURLLarge string          `json:"image_url_large,omitempty"`
	Classes       []string        `json:"classes,omitempty"`
	Capabilities  []string        `json:"capabilities,omitempty"`
	Styles        []string        `json:"styles,omitempty"`
	Attributes    []AttributeLine `json:"attributes,omitempty"`
}

// ItemSummary is the compact listing view of an item definition
type ItemSummary struct {
	Defindex int    `json:"defindex"`
	Name     string `json:"name"`
	TypeName string `json:"type_name,omitempty"`
	Slot     string `json:"slot,omitempty"`
	Quality  string `json:"quality"`
}

// ItemsResponse is a page of item definitions
type ItemsResponse struct {
	Language  string        `json:"language"`
	Count     int           `json:"count"`
	NextStart *int          `json:"next_start,omitempty"`
	Items     []ItemSummary `json:"items"`
}

// AttributeDetail is the catalog view of a single attribute definition
type AttributeDetail struct {
	Defindex          int     `json:"defindex"`
	Name              string  `json:"name"`
	AttributeClass    string  `json:"attribute_class,omitempty"`
	DescriptionString string  `json:"description_string,omitempty"`
	DescriptionFormat string  `json:"description_format,omitempty"`
	EffectType        string  `json:"effect_type,omitempty"`
	Hidden            bool    `json:"hidden"`
	StoredAsInteger   bool    `json:"stored_as_integer"`
	MinValue          float64 `json:"min_value"`
	MaxValue          float64 `json:"max_value"`
}

// QualityEntry is one quality with its localized name
type QualityEntry struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	PrettyName string `json:"pretty_name"`
}

// OriginEntry is one item origin with its localized name
type OriginEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// RefreshRequest asks for a fresh schema fetch for one language
type RefreshRequest struct {
	Language string `json:"language" validate:"omitempty,language"`
}

// RefreshResponse reports the outcome of a schema refresh
type RefreshResponse struct {
	Message  string `json:"message"`
	Language string `json:"language"`
	Items    int    `json:"items"`
}

// HandleGetItem returns a single item definition
// @Summary Get item definition
// @Description Returns the catalog entry for one item defindex
// @Tags schema
// @Produce json
// @Param defindex path int true "Item defindex"
// @Param language query string false "Schema language (default en)"
// @Success 200 {object} ItemDetail
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /schema/items/{defindex} [get]
func (h *SchemaHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	defindexStr := chi.URLParam(r, "defindex")
	if defindexStr == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingDefindex)
		return
	}
	defindex, err := strconv.Atoi(defindexStr)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidDefindex)
		return
	}

	catalog, err := h.schemas.Catalog(r.Context(), h.languageParam(r))
	if err != nil {
		respondServiceError(w, r, ErrMsgGetItemFailed, err)
		return
	}

	item, err := catalog.Item(defindex)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetItemFailed, err)
		return
	}

	detail, err := itemDetail(item)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetItemFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

// HandleListItems returns a page of item definitions
// @Summary List item definitions
// @Description Returns item definitions ordered by defindex, paged by the start and count parameters
// @Tags schema
// @Produce json
// @Param language query string false "Schema language (default en)"
// @Param start query int false "First defindex to include (default 0)"
// @Param count query int false "Maximum entries to return (default 50, max 500)"
// @Success 200 {object} ItemsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /schema/items [get]
func (h *SchemaHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	start := 0
	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidStart)
			return
		}
		start = parsed
	}

	count := defaultItemPageSize
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidCount)
			return
		}
		count = min(parsed, maxItemPageSize)
	}

	language := h.languageParam(r)
	catalog, err := h.schemas.Catalog(r.Context(), language)
	if err != nil {
		respondServiceError(w, r, ErrMsgListItemsFailed, err)
		return
	}

	response := ItemsResponse{
		Language: catalog.Language(),
		Items:    make([]ItemSummary, 0, count),
	}
	for item := range catalog.Items() {
		if item.Defindex() < start {
			continue
		}
		if len(response.Items) == count {
			next := item.Defindex()
			response.NextStart = &next
			break
		}
		response.Items = append(response.Items, ItemSummary{
			Defindex: item.Defindex(),
			Name:     item.Name(),
			TypeName: item.TypeName(),
			Slot:     item.Slot(),
			Quality:  item.Quality().PrettyStr,
		})
	}
	response.Count = len(response.Items)

	respondJSON(w, http.StatusOK, response)
}

// HandleGetAttribute returns a single attribute definition
// @Summary Get attribute definition
// @Description Returns the catalog entry for one attribute, looked up by numeric id or name
// @Tags schema
// @Produce json
// @Param idOrName path string true "Attribute defindex or name"
// @Param language query string false "Schema language (default en)"
// @Success 200 {object} AttributeDetail
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /schema/attributes/{idOrName} [get]
func (h *SchemaHandler) HandleGetAttribute(w http.ResponseWriter, r *http.Request) {
	idOrName := chi.URLParam(r, "idOrName")
	if idOrName == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingAttribute)
		return
	}
	// Attribute names carry spaces ("damage bonus"), which arrive escaped
	if decoded, decErr := url.PathUnescape(idOrName); decErr == nil {
		idOrName = decoded
	}

	catalog, err := h.schemas.Catalog(r.Context(), h.languageParam(r))
	if err != nil {
		respondServiceError(w, r, ErrMsgGetAttributeFailed, err)
		return
	}

	var def *domain.AttributeDef
	if id, convErr := strconv.Atoi(idOrName); convErr == nil {
		def, err = catalog.Attribute(id)
	} else {
		def, err = catalog.AttributeByName(idOrName)
	}
	if err != nil {
		respondServiceError(w, r, ErrMsgGetAttributeFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, attributeDetail(def))
}

// HandleListQualities returns every item quality
// @Summary List item qualities
// @Description Returns all qualities with their localized names, ordered by id
// @Tags schema
// @Produce json
// @Param language query string false "Schema language (default en)"
// @Success 200 {array} QualityEntry
// @Failure 502 {object} ErrorResponse
// @Router /schema/qualities [get]
func (h *SchemaHandler) HandleListQualities(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.schemas.Catalog(r.Context(), h.languageParam(r))
	if err != nil {
		respondServiceError(w, r, ErrMsgListQualitiesFailed, err)
		return
	}

	qualities := catalog.Qualities()
	entries := make([]QualityEntry, 0, len(qualities))
	for _, id := range sortedKeys(qualities) {
		q := qualities[id]
		entries = append(entries, QualityEntry{
			ID:         q.ID,
			Name:       q.Str,
			PrettyName: q.PrettyStr,
		})
	}

	respondJSON(w, http.StatusOK, entries)
}

// HandleListOrigins returns every item origin
// @Summary List item origins
// @Description Returns all origins with their localized names, ordered by id
// @Tags schema
// @Produce json
// @Param language query string false "Schema language (default en)"
// @Success 200 {array} OriginEntry
// @Failure 502 {object} ErrorResponse
// @Router /schema/origins [get]
func (h *SchemaHandler) HandleListOrigins(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.schemas.Catalog(r.Context(), h.languageParam(r))
	if err != nil {
		respondServiceError(w, r, ErrMsgListOriginsFailed, err)
		return
	}

	origins := catalog.Origins()
	entries := make([]OriginEntry, 0, len(origins))
	for _, id := range sortedKeys(origins) {
		entries = append(entries, OriginEntry{ID: id, Name: origins[id]})
	}

	respondJSON(w, http.StatusOK, entries)
}

// HandleRefresh forces a fresh schema fetch
// @Summary Refresh the item schema
// @Description Bypasses the cache and fetches the schema again for the given language
// @Tags schema
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh details"
// @Success 200 {object} RefreshResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /schema/refresh [post]
func (h *SchemaHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req RefreshRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Refresh schema"); err != nil {
		return
	}

	language := h.language
	if req.Language != "" {
		language = config.NormalizeLanguage(req.Language)
	}

	catalog, err := h.schemas.Refresh(r.Context(), language)
	if err != nil {
		respondServiceError(w, r, ErrMsgRefreshFailed, err)
		return
	}

	log.Info("Schema refreshed", "language", catalog.Language(), "items", catalog.Len())

	respondJSON(w, http.StatusOK, RefreshResponse{
		Message:  MsgSchemaRefreshedSuccess,
		Language: catalog.Language(),
		Items:    catalog.Len(),
	})
}

// itemDetail converts a resolved item into its response form
func itemDetail(item *schema.Item) (ItemDetail, error) {
	detail := ItemDetail{
		Defindex:     item.Defindex(),
		Name:         item.Name(),
		FullName:     item.FullName(),
		TypeName:     item.TypeName(),
		Slot:         item.Slot(),
		ItemClass:    item.ItemClass(),
		CraftClass:   item.CraftClass(),
		Quality:      item.Quality().PrettyStr,
		Description:  item.Description(),
		MinLevel:     item.MinLevel(),
		MaxLevel:     item.MaxLevel(),
		Classes:      item.EquippableClasses(),
		Capabilities: item.Capabilities(),
		Styles:       item.Styles(),
	}

	if url, err := item.Image(schema.ImageSmall); err == nil {
		detail.ImageURL = url
	}
	if url, err := item.Image(schema.ImageLarge); err == nil {
		detail.ImageURLLarge = url
	}

	attrs, err := item.Attributes()
	if err != nil {
		return detail, err
	}
	for _, attr := range attrs {
		line := AttributeLine{
			Name:       attr.Name(),
			Value:      attr.FormattedValue(),
			EffectType: attr.EffectType(),
			Hidden:     attr.Hidden(),
		}
		if desc, ok := attr.FormattedDescription(); ok {
			line.Description = desc
		}
		detail.Attributes = append(detail.Attributes, line)
	}

	return detail, nil
}

// attributeDetail converts an attribute definition into its response form.
// The hidden flag reports the display rule, not the raw schema field.
func attributeDetail(def *domain.AttributeDef) AttributeDetail {
	view := schema.NewAttribute(domain.MergedAttribute{AttributeDef: *def})
	detail := AttributeDetail{
		Defindex:        def.Defindex,
		Name:            def.Name,
		AttributeClass:  def.AttributeClass,
		EffectType:      def.EffectType,
		Hidden:          view.Hidden(),
		StoredAsInteger: def.StoredAsInteger,
		MinValue:        def.MinValue,
		MaxValue:        def.MaxValue,
	}
	if def.DescriptionString != nil {
		detail.DescriptionString = *def.DescriptionString
	}
	if def.DescriptionFormat != nil {
		detail.DescriptionFormat = *def.DescriptionFormat
	}
	return detail
}

// sortedKeys returns the keys of an int-keyed map in ascending order
func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
