package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// registryDocument is the on-disk JSON shape: one top-level object with one
// array per collection.
type registryDocument struct {
	Routes     []Route     `json:"routes"`
	Passengers []Passenger `json:"passengers"`
	Schedules  []Schedule  `json:"schedules"`
}

// SaveJSON marshals the registry into pretty JSON and writes it at path.
// Non-ASCII characters are written literally, not escaped. The write is not
// atomic. Any failure is wrapped in a FileOperationError.
func (r *MemoryRegistry) SaveJSON(path string) error {
	doc := registryDocument{
		Routes:     r.RouteStore.Fetch(),
		Passengers: r.PassengerStore.Fetch(),
		Schedules:  r.ScheduleStore.Fetch(),
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return &FileOperationError{Op: "save json", Path: path, Err: err}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return &FileOperationError{Op: "save json", Path: path, Err: err}
	}

	return nil
}

// LoadJSON reads the JSON file at path and replaces all three collections
// with its contents. Missing top-level keys default to empty collections.
// Any failure, including a record missing a required key, is wrapped in a
// FileOperationError and the registry is left unchanged.
func (r *MemoryRegistry) LoadJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &FileOperationError{Op: "load json", Path: path, Err: err}
	}

	var doc registryDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return &FileOperationError{Op: "load json", Path: path, Err: err}
	}

	routes := NewMemoryRouteStore()
	routes.Records = append(routes.Records, doc.Routes...)

	passengers := NewMemoryPassengerStore()
	passengers.Records = append(passengers.Records, doc.Passengers...)

	schedules := NewMemoryScheduleStore()
	schedules.Records = append(schedules.Records, doc.Schedules...)

	r.RouteStore = routes
	r.PassengerStore = passengers
	r.ScheduleStore = schedules

	return nil
}

// requireKeys checks that data is a JSON object containing every required
// key. It is used by the record UnmarshalJSON implementations to reject
// records with missing fields.
func requireKeys(data []byte, required ...string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for _, key := range required {
		if _, ok := raw[key]; !ok {
			return fmt.Errorf("missing required key %q", key)
		}
	}

	return nil
}
