package registry

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrVehicleNotFound = errors.New("no vehicle with the provided id exists on the route")
var ErrVehicleExists = errors.New("a vehicle with the provided id already exists on the route")

// Vehicle implements the UniqueRecord interface
var _ UniqueRecord[int] = Vehicle{}

// Vehicle is a single vehicle assigned to a route. Vehicles are owned by
// their route and have no identity outside of it; ids are unique within a
// route but not across the registry.
type Vehicle struct {
	// ID identifies the vehicle within its route.
	ID int `json:"vehicle_id"`
	// Model is the manufacturer model name.
	Model string `json:"model"`
	// Capacity is the passenger capacity.
	Capacity int `json:"capacity"`
	// Type is a free-form kind label, e.g. "Bus" or "Tram".
	Type string `json:"type"`
}

// Key returns the primary key for the Vehicle.
func (v Vehicle) Key() int {
	return v.ID
}

func (v Vehicle) String() string {
	return fmt.Sprintf("%s(ID:%d)", v.Model, v.ID)
}

// UnmarshalJSON decodes a Vehicle, failing if any required key is absent.
func (v *Vehicle) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, "vehicle_id", "model", "capacity", "type"); err != nil {
		return fmt.Errorf("vehicle: %w", err)
	}

	type alias Vehicle
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*v = Vehicle(a)

	return nil
}
