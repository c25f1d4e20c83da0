package domain

// Backpack payload status codes.
const (
	BackpackStatusOK          = 1
	BackpackStatusBadIdentity = 8
	BackpackStatusPrivate     = 15
)

// BackpackBody is the envelope of the GetPlayerItems payload.
type BackpackBody struct {
	Result BackpackResult `json:"result"`
}

// BackpackResult is the result block of the GetPlayerItems payload.
// A leading null entry in Items marks an empty backpack.
type BackpackResult struct {
	Status           int           `json:"status"`
	NumBackpackSlots int           `json:"num_backpack_slots,omitempty"`
	Items            []*ItemRecord `json:"items,omitempty"`
}
