package registry

import (
	"sync"
)

// RouteStore is an interface that represents an immutable view over a set of
// Route records identified by their id.
type RouteStore interface {
	Store[int, Route]
}

// MutableRouteStore is an interface that represents a mutable RouteStore of
// Route records identified by their id.
type MutableRouteStore interface {
	MutableStore[int, Route]

	// Find returns the first route with the provided id, or false if no such
	// route exists. Unlike Get it never returns an error.
	Find(id int) (Route, bool)
}

// MemoryRouteStore is an in-memory implementation of the RouteStore and
// MutableRouteStore interfaces.
type MemoryRouteStore struct {
	mu      sync.RWMutex
	Records []Route
}

// MemoryRouteStore implements RouteStore interface.
var _ RouteStore = &MemoryRouteStore{}

// MemoryRouteStore implements MutableRouteStore interface.
var _ MutableRouteStore = &MemoryRouteStore{}

// NewMemoryRouteStore creates a new MemoryRouteStore instance.
func NewMemoryRouteStore() *MemoryRouteStore {
	return &MemoryRouteStore{Records: []Route{}}
}

// Get returns the Route with the provided id, or ErrRouteNotFound if no such
// record exists.
func (s *MemoryRouteStore) Get(id int) (Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return Route{}, ErrRouteNotFound
	}

	return s.Records[idx].Clone(), nil
}

// Find returns the first Route with the provided id, or false if no such
// record exists.
func (s *MemoryRouteStore) Find(id int) (Route, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return Route{}, false
	}

	return s.Records[idx].Clone(), true
}

// Fetch returns a copy of all Route records in the store, in insertion
// order.
func (s *MemoryRouteStore) Fetch() []Route {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]Route, 0, len(s.Records))
	for _, record := range s.Records {
		records = append(records, record.Clone())
	}

	return records
}

// Filter returns a copy of all Route records in the store that pass all of
// the provided filters. Filters are applied in the order they are provided.
// If no filters are provided, all records are returned.
func (s *MemoryRouteStore) Filter(filters ...FilterFunc[int, Route]) []Route {
	records := s.Fetch()
	for _, filter := range filters {
		records = filter(records)
	}

	return records
}

// indexOf returns the index of the record with the provided id, or -1 if no
// such record exists.
func (s *MemoryRouteStore) indexOf(id int) int {
	for i, record := range s.Records {
		if record.Key() == id {
			return i
		}
	}

	return -1
}

// Add inserts a new record into the store.
// If a record with the same id already exists, ErrRouteExists is returned.
func (s *MemoryRouteStore) Add(record Route) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(record.Key())
	if idx != -1 {
		return ErrRouteExists
	}
	s.Records = append(s.Records, record)

	return nil
}

// Upsert inserts a new record into the store if no record with the same id
// already exists. If a record with the same id already exists, it is
// replaced.
func (s *MemoryRouteStore) Upsert(record Route) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(record.Key())
	if idx == -1 {
		s.Records = append(s.Records, record)
		return nil
	}
	s.Records[idx] = record

	return nil
}

// Update replaces an existing record whose id matches the supplied Route.
// If no such record exists, ErrRouteNotFound is returned.
func (s *MemoryRouteStore) Update(record Route) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(record.Key())
	if idx == -1 {
		return ErrRouteNotFound
	}
	s.Records[idx] = record

	return nil
}

// Delete deletes the record with the provided id, returning ErrRouteNotFound
// if no such record exists.
func (s *MemoryRouteStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return ErrRouteNotFound
	}
	s.Records = append(s.Records[:idx], s.Records[idx+1:]...)

	return nil
}
