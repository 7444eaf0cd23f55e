package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryScheduleStore_Add(t *testing.T) {
	t.Parallel()

	store := NewMemoryScheduleStore()
	store.Add(Schedule{ID: 1, RouteID: 1, DepartureTime: "08:00", ArrivalTime: "08:45"})

	require.Equal(t, []Schedule{
		{ID: 1, RouteID: 1, DepartureTime: "08:00", ArrivalTime: "08:45"},
	}, store.Records)
}

func TestMemoryScheduleStore_AddAll(t *testing.T) {
	t.Parallel()

	var (
		recordOne = Schedule{ID: 1, RouteID: 1, DepartureTime: "08:00", ArrivalTime: "08:45"}
		recordTwo = Schedule{ID: 2, RouteID: 1, DepartureTime: "14:00", ArrivalTime: "14:45"}
	)

	store := NewMemoryScheduleStore()
	store.AddAll(recordOne, recordTwo)

	require.Equal(t, []Schedule{recordOne, recordTwo}, store.Records)
}

func TestMemoryScheduleStore_Fetch(t *testing.T) {
	t.Parallel()

	record := Schedule{ID: 1, RouteID: 1, DepartureTime: "08:00", ArrivalTime: "08:45"}

	store := NewMemoryScheduleStore()
	store.Add(record)

	records := store.Fetch()
	require.Equal(t, []Schedule{record}, records)

	// The returned slice is a copy; appending to it must not affect the
	// store.
	_ = append(records, Schedule{ID: 2, RouteID: 1, DepartureTime: "14:00", ArrivalTime: "14:45"})
	require.Len(t, store.Records, 1)
}
