package registry

import (
	"sync"
)

// ScheduleStore is an interface that represents an immutable view over a set
// of Schedule records.
type ScheduleStore interface {
	Fetcher[Schedule]
	Filterable[int, Schedule]
}

// MutableScheduleStore is an interface that represents an appendable
// ScheduleStore. Schedules are deliberately limited to bulk appends: there
// is no keyed read, update or delete for them.
type MutableScheduleStore interface {
	AppendStore[int, Schedule]
}

// MemoryScheduleStore is an in-memory implementation of the ScheduleStore
// and MutableScheduleStore interfaces.
type MemoryScheduleStore struct {
	mu      sync.RWMutex
	Records []Schedule
}

// MemoryScheduleStore implements ScheduleStore interface.
var _ ScheduleStore = &MemoryScheduleStore{}

// MemoryScheduleStore implements MutableScheduleStore interface.
var _ MutableScheduleStore = &MemoryScheduleStore{}

// NewMemoryScheduleStore creates a new MemoryScheduleStore instance.
func NewMemoryScheduleStore() *MemoryScheduleStore {
	return &MemoryScheduleStore{Records: []Schedule{}}
}

// Fetch returns a copy of all Schedule records in the store, in insertion
// order.
func (s *MemoryScheduleStore) Fetch() []Schedule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]Schedule{}, s.Records...)
}

// Filter returns a copy of all Schedule records in the store that pass all
// of the provided filters. Filters are applied in the order they are
// provided. If no filters are provided, all records are returned.
func (s *MemoryScheduleStore) Filter(filters ...FilterFunc[int, Schedule]) []Schedule {
	records := s.Fetch()
	for _, filter := range filters {
		records = filter(records)
	}

	return records
}

// Add appends a record to the store.
func (s *MemoryScheduleStore) Add(record Schedule) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Records = append(s.Records, record)
}

// AddAll appends all supplied records to the store in order.
func (s *MemoryScheduleStore) AddAll(records ...Schedule) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Records = append(s.Records, records...)
}
