// README: Trip service validates, stamps and persists saved itineraries.
package trip

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrValidation = errors.New("trip validation failed")
	ErrNotFound   = errors.New("trip not found")
	ErrStorage    = errors.New("trip storage failed")
)

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// Create validates t, assigns an id and timestamps and stores it. Nothing is
// written when validation fails.
func (s *Service) Create(ctx context.Context, t Trip) (*Trip, error) {
	t.Destination = strings.TrimSpace(t.Destination)
	if t.LocalTips == nil {
		t.LocalTips = []string{}
	}
	if err := t.Itinerary.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	// Millisecond precision survives every backend unchanged.
	now := s.now().UTC().Truncate(time.Millisecond)
	t.ID = primitive.NewObjectID().Hex()
	t.CreatedAt = now
	t.UpdatedAt = now

	if err := s.store.Insert(ctx, &t); err != nil {
		return nil, fmt.Errorf("%w: insert: %w", ErrStorage, err)
	}
	return &t, nil
}

// List returns every saved trip in insertion order; never nil.
func (s *Service) List(ctx context.Context) ([]Trip, error) {
	trips, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list: %w", ErrStorage, err)
	}
	if trips == nil {
		trips = []Trip{}
	}
	return trips, nil
}

// Delete removes the trip with the given id and returns it. Ids that are not
// well-formed cannot match any trip and yield ErrNotFound.
func (s *Service) Delete(ctx context.Context, id string) (*Trip, error) {
	id = strings.TrimSpace(id)
	if !primitive.IsValidObjectID(id) {
		return nil, ErrNotFound
	}
	t, err := s.store.Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: delete: %w", ErrStorage, err)
	}
	return t, nil
}
