package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryRegistry_SaveXML(t *testing.T) {
	t.Parallel()

	reg := NewMemoryRegistry()

	route := NewRoute(1, "t77", "Hauptbahnhof", "Müllerstraße")
	require.NoError(t, route.AddVehicle(Vehicle{ID: 1, Model: "MAN Lion's City", Capacity: 77, Type: "Bus"}))
	require.NoError(t, reg.Routes().Add(route))
	require.NoError(t, reg.Passengers().Add(Passenger{ID: 1, Name: "Jürgen Möller", CardNumber: "0021095222"}))
	reg.Schedules().Add(Schedule{ID: 1, RouteID: 1, DepartureTime: "08:00", ArrivalTime: "08:45"})

	path := filepath.Join(t.TempDir(), "transport_data.xml")
	require.NoError(t, reg.SaveXML(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	require.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))

	expected := `<TransportSystem>
  <Routes>
    <Route>
      <route_id>1</route_id>
      <number>t77</number>
      <start_point>Hauptbahnhof</start_point>
      <end_point>Müllerstraße</end_point>
      <Vehicles>
        <Vehicle>
          <vehicle_id>1</vehicle_id>
          <model>MAN Lion&#39;s City</model>
          <capacity>77</capacity>
          <type>Bus</type>
        </Vehicle>
      </Vehicles>
    </Route>
  </Routes>
  <Passengers>
    <Passenger>
      <passenger_id>1</passenger_id>
      <name>Jürgen Möller</name>
      <card_number>0021095222</card_number>
    </Passenger>
  </Passengers>
  <Schedules>
    <Schedule>
      <schedule_id>1</schedule_id>
      <route_id>1</route_id>
      <departure_time>08:00</departure_time>
      <arrival_time>08:45</arrival_time>
    </Schedule>
  </Schedules>
</TransportSystem>`

	require.Contains(t, out, expected)
}

func TestMemoryRegistry_SaveXML_emptySections(t *testing.T) {
	t.Parallel()

	reg := NewMemoryRegistry()
	require.NoError(t, reg.Routes().Add(NewRoute(1, "t77", "Hauptbahnhof", "Müllerstraße")))

	path := filepath.Join(t.TempDir(), "transport_data.xml")
	require.NoError(t, reg.SaveXML(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	// Section wrappers are present even when empty, as is the Vehicles
	// wrapper of a route with no vehicles.
	require.Contains(t, out, "<Vehicles></Vehicles>")
	require.Contains(t, out, "<Passengers></Passengers>")
	require.Contains(t, out, "<Schedules></Schedules>")
}

func TestMemoryRegistry_SaveXML_invalidPath(t *testing.T) {
	t.Parallel()

	reg := NewMemoryRegistry()
	err := reg.SaveXML(filepath.Join(t.TempDir(), "missing", "transport_data.xml"))

	var fileErr *FileOperationError
	require.ErrorAs(t, err, &fileErr)
	require.Equal(t, "save xml", fileErr.Op)
}
