// README: Saved trip aggregate.
package trip

import (
	"time"

	"tripgen/internal/types"
)

// Trip is an itinerary a user chose to keep. ID is a 24-char ObjectID hex string
// regardless of the storage backend.
type Trip struct {
	ID string `json:"_id"`
	types.Itinerary
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
