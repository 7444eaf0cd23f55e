package registry

import (
	"encoding/json"
	"fmt"
)

// Schedule implements the UniqueRecord interface
var _ UniqueRecord[int] = Schedule{}

// Schedule is a single departure/arrival pair for a route. RouteID is a weak
// reference: it is never validated against the route store, and deleting a
// route does not delete its schedules.
type Schedule struct {
	// ID identifies the schedule within the registry.
	ID int `json:"schedule_id"`
	// RouteID refers to the route this schedule belongs to.
	RouteID int `json:"route_id"`
	// DepartureTime is the departure time as "HH:MM".
	DepartureTime string `json:"departure_time"`
	// ArrivalTime is the arrival time as "HH:MM".
	ArrivalTime string `json:"arrival_time"`
}

// Key returns the primary key for the Schedule.
func (s Schedule) Key() int {
	return s.ID
}

func (s Schedule) String() string {
	return fmt.Sprintf("Schedule ID %d: %s - %s (Route ID: %d)",
		s.ID, s.DepartureTime, s.ArrivalTime, s.RouteID)
}

// UnmarshalJSON decodes a Schedule, failing if any required key is absent.
func (s *Schedule) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, "schedule_id", "route_id", "departure_time", "arrival_time"); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}

	type alias Schedule
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = Schedule(a)

	return nil
}
