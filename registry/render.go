package registry

import (
	"fmt"
	"io"
	"strings"
)

// Render writes a formatted listing of all three collections to w using each
// record's string form. It is purely presentational and not part of the data
// contract.
func (r *MemoryRegistry) Render(w io.Writer) error {
	divider := strings.Repeat("=", 50)

	sections := []string{
		"",
		divider,
		"TRANSPORT REGISTRY DATA",
		divider,
		"",
		"ROUTES:",
	}
	for _, route := range r.RouteStore.Fetch() {
		sections = append(sections, "  "+route.String())
	}

	sections = append(sections, "", "PASSENGERS:")
	for _, p := range r.PassengerStore.Fetch() {
		sections = append(sections, "  "+p.String())
	}

	sections = append(sections, "", "SCHEDULES:")
	for _, s := range r.ScheduleStore.Fetch() {
		sections = append(sections, "  "+s.String())
	}

	_, err := fmt.Fprintln(w, strings.Join(sections, "\n"))

	return err
}
