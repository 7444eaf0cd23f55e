package registry

import (
	"sync"
)

// PassengerStore is an interface that represents an immutable view over a
// set of Passenger records identified by their id.
type PassengerStore interface {
	Store[int, Passenger]
}

// MutablePassengerStore is an interface that represents a mutable
// PassengerStore of Passenger records identified by their id.
type MutablePassengerStore interface {
	MutableStore[int, Passenger]
}

// MemoryPassengerStore is an in-memory implementation of the PassengerStore
// and MutablePassengerStore interfaces.
type MemoryPassengerStore struct {
	mu      sync.RWMutex
	Records []Passenger
}

// MemoryPassengerStore implements PassengerStore interface.
var _ PassengerStore = &MemoryPassengerStore{}

// MemoryPassengerStore implements MutablePassengerStore interface.
var _ MutablePassengerStore = &MemoryPassengerStore{}

// NewMemoryPassengerStore creates a new MemoryPassengerStore instance.
func NewMemoryPassengerStore() *MemoryPassengerStore {
	return &MemoryPassengerStore{Records: []Passenger{}}
}

// Get returns the Passenger with the provided id, or ErrPassengerNotFound if
// no such record exists.
func (s *MemoryPassengerStore) Get(id int) (Passenger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return Passenger{}, ErrPassengerNotFound
	}

	return s.Records[idx], nil
}

// Fetch returns a copy of all Passenger records in the store, in insertion
// order.
func (s *MemoryPassengerStore) Fetch() []Passenger {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]Passenger{}, s.Records...)
}

// Filter returns a copy of all Passenger records in the store that pass all
// of the provided filters. Filters are applied in the order they are
// provided. If no filters are provided, all records are returned.
func (s *MemoryPassengerStore) Filter(filters ...FilterFunc[int, Passenger]) []Passenger {
	records := s.Fetch()
	for _, filter := range filters {
		records = filter(records)
	}

	return records
}

// indexOf returns the index of the record with the provided id, or -1 if no
// such record exists.
func (s *MemoryPassengerStore) indexOf(id int) int {
	for i, record := range s.Records {
		if record.Key() == id {
			return i
		}
	}

	return -1
}

// Add inserts a new record into the store.
// If a record with the same id already exists, ErrPassengerExists is
// returned.
func (s *MemoryPassengerStore) Add(record Passenger) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(record.Key())
	if idx != -1 {
		return ErrPassengerExists
	}
	s.Records = append(s.Records, record)

	return nil
}

// Upsert inserts a new record into the store if no record with the same id
// already exists. If a record with the same id already exists, it is
// replaced.
func (s *MemoryPassengerStore) Upsert(record Passenger) error {
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

// Update replaces an existing record whose id matches the supplied
// Passenger. If no such record exists, ErrPassengerNotFound is returned.
func (s *MemoryPassengerStore) Update(record Passenger) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(record.Key())
	if idx == -1 {
		return ErrPassengerNotFound
	}
	s.Records[idx] = record

	return nil
}

// Delete deletes the record with the provided id, returning
// ErrPassengerNotFound if no such record exists.
func (s *MemoryPassengerStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return ErrPassengerNotFound
	}
	s.Records = append(s.Records[:idx], s.Records[idx+1:]...)

	return nil
}
