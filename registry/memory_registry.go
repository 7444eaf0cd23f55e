package registry

// Registry is an immutable view over the three top-level collections of the
// transport system.
type Registry interface {
	Routes() RouteStore
	Passengers() PassengerStore
	Schedules() ScheduleStore
}

// MutableRegistry is a mutable view over the three top-level collections of
// the transport system.
type MutableRegistry interface {
	Routes() MutableRouteStore
	Passengers() MutablePassengerStore
	Schedules() MutableScheduleStore

	// UpdateRoute applies a partial update to the route with the provided
	// id.
	UpdateRoute(id int, update RouteUpdate) error

	// Seal returns a read-only view of the registry.
	Seal() Registry
}

// MemoryRegistry is a concrete implementation of the MutableRegistry
// interface. The three collections are independent: no cross-collection
// invariants are enforced, and schedules may refer to route ids that no
// longer exist.
var _ MutableRegistry = &MemoryRegistry{}

type MemoryRegistry struct {
	RouteStore     *MemoryRouteStore
	PassengerStore *MemoryPassengerStore
	ScheduleStore  *MemoryScheduleStore
}

// NewMemoryRegistry creates a new empty MemoryRegistry.
// NOTE: The instance returned is mutable and can be modified.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		RouteStore:     NewMemoryRouteStore(),
		PassengerStore: NewMemoryPassengerStore(),
		ScheduleStore:  NewMemoryScheduleStore(),
	}
}

// Routes returns the route store of the MemoryRegistry.
func (r *MemoryRegistry) Routes() MutableRouteStore {
	return r.RouteStore
}

// Passengers returns the passenger store of the MemoryRegistry.
func (r *MemoryRegistry) Passengers() MutablePassengerStore {
	return r.PassengerStore
}

// Schedules returns the schedule store of the MemoryRegistry.
func (r *MemoryRegistry) Schedules() MutableScheduleStore {
	return r.ScheduleStore
}

// UpdateRoute applies a partial update to the route with the provided id,
// returning ErrRouteNotFound if no such route exists. Fields left nil on the
// update are untouched.
func (r *MemoryRegistry) UpdateRoute(id int, update RouteUpdate) error {
	route, err := r.RouteStore.Get(id)
	if err != nil {
		return err
	}

	return r.RouteStore.Update(update.apply(route))
}

// Seal seals the MemoryRegistry, by returning a new instance of
// sealedMemoryRegistry.
func (r *MemoryRegistry) Seal() Registry {
	return &sealedMemoryRegistry{
		RouteStore:     r.RouteStore,
		PassengerStore: r.PassengerStore,
		ScheduleStore:  r.ScheduleStore,
	}
}

// sealedMemoryRegistry is a concrete implementation of the Registry
// interface. It represents a registry that cannot be modified further.
var _ Registry = &sealedMemoryRegistry{}

type sealedMemoryRegistry struct {
	RouteStore     *MemoryRouteStore
	PassengerStore *MemoryPassengerStore
	ScheduleStore  *MemoryScheduleStore
}

// Routes returns the route store of the sealedMemoryRegistry.
func (r *sealedMemoryRegistry) Routes() RouteStore {
	return r.RouteStore
}

// Passengers returns the passenger store of the sealedMemoryRegistry.
func (r *sealedMemoryRegistry) Passengers() PassengerStore {
	return r.PassengerStore
}

// Schedules returns the schedule store of the sealedMemoryRegistry.
func (r *sealedMemoryRegistry) Schedules() ScheduleStore {
	return r.ScheduleStore
}
