package trip

import (
	"context"
	"sync"
)

// MemoryStore keeps trips in process memory. Used for tests and local demos.
type MemoryStore struct {
	mu    sync.Mutex
	trips []Trip
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Insert(_ context.Context, t *Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trips = append(s.trips, cloneTrip(*t))
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Trip, len(s.trips))
	for i, t := range s.trips {
		out[i] = cloneTrip(t)
	}
	return out, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) (*Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.trips {
		if s.trips[i].ID == id {
			t := s.trips[i]
			s.trips = append(s.trips[:i], s.trips[i+1:]...)
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

// cloneTrip keeps stored trips from sharing slices with callers.
func cloneTrip(t Trip) Trip {
	t.Itinerary = t.Itinerary.Clone()
	return t
}
