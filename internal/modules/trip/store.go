// README: Storage contract implemented by the Mongo, Postgres, Redis and in-memory backends.
package trip

import (
	"context"

	"tripgen/internal/types"
)

// Store persists trips. Implementations return ErrNotFound from Delete when no
// trip has the given id; List returns trips in insertion order.
type Store interface {
	Insert(ctx context.Context, t *Trip) error
	List(ctx context.Context) ([]Trip, error)
	Delete(ctx context.Context, id string) (*Trip, error)
}

// normalize gives every backend the same read shape: UTC timestamps and
// non-nil slices.
func normalize(t *Trip) {
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	if t.TopAttractions == nil {
		t.TopAttractions = []string{}
	}
	if t.SampleItinerary == nil {
		t.SampleItinerary = []types.DayPlan{}
	}
	if t.LocalTips == nil {
		t.LocalTips = []string{}
	}
}
