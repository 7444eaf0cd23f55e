package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrRouteNotFound = errors.New("no route with the provided id exists")
var ErrRouteExists = errors.New("a route with the provided id already exists")

// Route implements the UniqueRecord interface
var _ UniqueRecord[int] = Route{}

// Route is a transit line between two points together with the vehicles
// assigned to it. The route owns its vehicle list; serialization deep-copies
// it and no other entity holds a live reference to it.
type Route struct {
	// ID identifies the route within the registry.
	ID int `json:"route_id"`
	// Number is the public line number, e.g. "t77".
	Number string `json:"number"`
	// StartPoint is the name of the first stop.
	StartPoint string `json:"start_point"`
	// EndPoint is the name of the last stop.
	EndPoint string `json:"end_point"`
	// Vehicles are the vehicles assigned to the route, in assignment order.
	Vehicles []Vehicle `json:"vehicles"`
}

// NewRoute creates a Route with an empty vehicle list.
func NewRoute(id int, number, startPoint, endPoint string) Route {
	return Route{
		ID:         id,
		Number:     number,
		StartPoint: startPoint,
		EndPoint:   endPoint,
		Vehicles:   []Vehicle{},
	}
}

// Key returns the primary key for the Route.
func (r Route) Key() int {
	return r.ID
}

// Clone creates a copy of the Route with its own vehicle slice.
func (r Route) Clone() Route {
	clone := r
	clone.Vehicles = append([]Vehicle{}, r.Vehicles...)

	return clone
}

// AddVehicle assigns a vehicle to the route. If a vehicle with the same id
// is already assigned, ErrVehicleExists is returned.
func (r *Route) AddVehicle(v Vehicle) error {
	if _, ok := r.FindVehicle(v.ID); ok {
		return ErrVehicleExists
	}
	r.Vehicles = append(r.Vehicles, v)

	return nil
}

// RemoveVehicle removes the first vehicle with the provided id from the
// route, returning ErrVehicleNotFound if no such vehicle is assigned.
func (r *Route) RemoveVehicle(id int) error {
	for i, v := range r.Vehicles {
		if v.ID == id {
			r.Vehicles = append(r.Vehicles[:i], r.Vehicles[i+1:]...)
			return nil
		}
	}

	return ErrVehicleNotFound
}

// FindVehicle returns the first vehicle with the provided id, or false if no
// such vehicle is assigned to the route.
func (r Route) FindVehicle(id int) (Vehicle, bool) {
	for _, v := range r.Vehicles {
		if v.ID == id {
			return v, true
		}
	}

	return Vehicle{}, false
}

func (r Route) String() string {
	infos := make([]string, len(r.Vehicles))
	for i, v := range r.Vehicles {
		infos[i] = v.String()
	}

	return fmt.Sprintf("Route %s: %s - %s | Vehicles: [%s]",
		r.Number, r.StartPoint, r.EndPoint, strings.Join(infos, ", "))
}

// UnmarshalJSON decodes a Route, failing if any required key is absent. The
// vehicles key is optional and defaults to an empty list.
func (r *Route) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, "route_id", "number", "start_point", "end_point"); err != nil {
		return fmt.Errorf("route: %w", err)
	}

	type alias Route
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.Vehicles == nil {
		a.Vehicles = []Vehicle{}
	}
	*r = Route(a)

	return nil
}
