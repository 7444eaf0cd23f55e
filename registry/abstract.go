package registry

// UniqueRecord represents a data entry that is uniquely identifiable by its
// primary key.
type UniqueRecord[K comparable] interface {
	// Key returns the primary key for the implementing type.
	Key() K
}

// Fetcher provides a Fetch() method which is used to complete a read query
// from a Store.
type Fetcher[R any] interface {
	// Fetch returns a slice of records representing the entire data set. The
	// returned slice is newly allocated and each record is a copy of the
	// stored data, so modifying it does not affect the underlying store.
	Fetch() []R
}

// Getter provides a Get() method which is used to complete a read by key
// query from a Store.
type Getter[K comparable, R UniqueRecord[K]] interface {
	// Get returns the record with the given key, or an error if no such
	// record exists.
	Get(K) (R, error)
}

// FilterFunc is a function that filters a slice of records.
type FilterFunc[K comparable, R UniqueRecord[K]] func([]R) []R

// Filterable provides a Filter() method which is used to complete a filtered
// query from a Store.
type Filterable[K comparable, R UniqueRecord[K]] interface {
	Filter(filters ...FilterFunc[K, R]) []R
}

// Store is an interface that represents an immutable set of records.
type Store[K comparable, R UniqueRecord[K]] interface {
	Fetcher[R]
	Getter[K, R]
	Filterable[K, R]
}

// MutableStore is an interface that represents a mutable set of records.
type MutableStore[K comparable, R UniqueRecord[K]] interface {
	Store[K, R]

	// Add inserts a new record into the MutableStore. If a record with the
	// same primary key already exists, an error is returned.
	Add(record R) error

	// Upsert behaves like Add where there is not already a record with the
	// same primary key as the supplied record, otherwise it behaves like an
	// update.
	Upsert(record R) error

	// Update edits an existing record whose primary key matches the supplied
	// record, returning an error if no such record exists.
	Update(record R) error

	// Delete deletes the record whose primary key matches the supplied key,
	// returning an error if no such record exists to be deleted.
	Delete(key K) error
}

// AppendStore is an interface that represents a collection manipulated as a
// whole rather than by key. Schedules deliberately expose only this minimal
// surface.
type AppendStore[K comparable, R UniqueRecord[K]] interface {
	Fetcher[R]
	Filterable[K, R]

	// Add appends a record to the store.
	Add(record R)

	// AddAll appends all supplied records to the store in order.
	AddAll(records ...R)
}
