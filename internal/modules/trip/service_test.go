package trip

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripgen/internal/types"
)

func sampleTrip() Trip {
	return Trip{Itinerary: types.Itinerary{
		Destination:    "  Lisbon, Portugal ",
		BestTime:       "Spring, mild and sunny.",
		DurationDays:   2,
		TopAttractions: []string{"Belem Tower", "Alfama"},
		SampleItinerary: []types.DayPlan{
			{Day: 1, Plan: "Belem"},
			{Day: 2, Plan: "Alfama and Baixa"},
		},
		EstimatedBudgetINR: types.NewBudget(40000, 70000, 120000),
	}}
}

// failingStore is a test double for Store whose every call fails.
type failingStore struct{ err error }

func (s failingStore) Insert(context.Context, *Trip) error { return s.err }
func (s failingStore) List(context.Context) ([]Trip, error) { return nil, s.err }
func (s failingStore) Delete(context.Context, string) (*Trip, error) { return nil, s.err }

func TestCreate_StampsAndTrims(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store)
	fixed := time.Date(2026, 3, 1, 10, 30, 0, 123456789, time.FixedZone("IST", 19800))
	svc.now = func() time.Time { return fixed }

	got, err := svc.Create(context.Background(), sampleTrip())
	require.NoError(t, err)

	assert.Len(t, got.ID, 24)
	assert.Equal(t, "Lisbon, Portugal", got.Destination)
	assert.Equal(t, []string{}, got.LocalTips)
	assert.Equal(t, fixed.UTC().Truncate(time.Millisecond), got.CreatedAt)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
	assert.Equal(t, time.UTC, got.CreatedAt.Location())
}

func TestCreate_RoundTripThroughList(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	in := sampleTrip()
	in.LocalTips = []string{"Buy a Viva Viagem card"}
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)

	trips, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, *created, trips[0])
	assert.Equal(t, in.TopAttractions, trips[0].TopAttractions)
	assert.Equal(t, in.SampleItinerary, trips[0].SampleItinerary)
	assert.Equal(t, in.EstimatedBudgetINR, trips[0].EstimatedBudgetINR)
	assert.Equal(t, in.LocalTips, trips[0].LocalTips)
}

func TestCreate_RejectsInvalidWithoutWriting(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Trip)
	}{
		{name: "missing duration_days", mutate: func(tr *Trip) { tr.DurationDays = 0 }},
		{name: "negative duration_days", mutate: func(tr *Trip) { tr.DurationDays = -1 }},
		{name: "blank destination", mutate: func(tr *Trip) { tr.Destination = "   " }},
		{name: "missing best_time", mutate: func(tr *Trip) { tr.BestTime = "" }},
		{name: "missing top_attractions", mutate: func(tr *Trip) { tr.TopAttractions = nil }},
		{name: "missing sample_itinerary", mutate: func(tr *Trip) { tr.SampleItinerary = nil }},
		{name: "day without plan", mutate: func(tr *Trip) { tr.SampleItinerary[1].Plan = "" }},
		{name: "day without number", mutate: func(tr *Trip) { tr.SampleItinerary[0].Day = 0 }},
		{name: "missing budget", mutate: func(tr *Trip) { tr.EstimatedBudgetINR = types.Budget{} }},
		{name: "missing budget high", mutate: func(tr *Trip) { tr.EstimatedBudgetINR.High = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			svc := NewService(store)
			in := sampleTrip()
			tt.mutate(&in)

			got, err := svc.Create(context.Background(), in)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrValidation)

			trips, err := store.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, trips)
		})
	}
}

func TestCreate_AcceptsZeroBudget(t *testing.T) {
	svc := NewService(NewMemoryStore())
	in := sampleTrip()
	in.EstimatedBudgetINR = types.NewBudget(0, 0, 500)

	got, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, got.EstimatedBudgetINR.Low)
	assert.Zero(t, *got.EstimatedBudgetINR.Low)
}

func TestMemoryStore_DoesNotShareSlices(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	in := sampleTrip()
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)
	in.TopAttractions[0] = "changed by caller"
	created.TopAttractions[0] = "changed by caller"
	*created.EstimatedBudgetINR.Low = 1

	trips, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	trips[0].SampleItinerary[0].Plan = "changed by reader"

	again, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Belem Tower", again[0].TopAttractions[0])
	assert.Equal(t, "Belem", again[0].SampleItinerary[0].Plan)
	assert.Equal(t, 40000.0, *again[0].EstimatedBudgetINR.Low)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Belem Tower", deleted.TopAttractions[0])
}

func TestList_EmptyIsNotNil(t *testing.T) {
	trips, err := NewService(NewMemoryStore()).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, trips)
	assert.Empty(t, trips)
}

func TestDelete_RemovesExactlyOne(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	first, err := svc.Create(ctx, sampleTrip())
	require.NoError(t, err)
	second, err := svc.Create(ctx, sampleTrip())
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, *first, *deleted)

	trips, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, second.ID, trips[0].ID)
}

func TestDelete_NotFoundLeavesStoreUnchanged(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()
	created, err := svc.Create(ctx, sampleTrip())
	require.NoError(t, err)

	for _, id := range []string{
		"000000000000000000000000", // well-formed, absent
		"not-an-object-id",
		"",
	} {
		got, err := svc.Delete(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound, id)
		assert.Nil(t, got)
	}

	trips, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, created.ID, trips[0].ID)
}

func TestService_StorageFailures(t *testing.T) {
	cause := errors.New("connection refused")
	svc := NewService(failingStore{err: cause})
	ctx := context.Background()

	_, err := svc.Create(ctx, sampleTrip())
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, cause)

	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, ErrStorage)

	_, err = svc.Delete(ctx, "000000000000000000000000")
	assert.ErrorIs(t, err, ErrStorage)
	assert.NotErrorIs(t, err, ErrNotFound)
}
