package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryPassengerStore_Get(t *testing.T) {
	t.Parallel()

	record := Passenger{ID: 1, Name: "Jürgen Möller", CardNumber: "0021095222"}

	tests := []struct {
		name           string
		givenState     []Passenger
		giveID         int
		expectedRecord Passenger
		expectedError  error
	}{
		{
			name:           "success: returns record",
			givenState:     []Passenger{record},
			giveID:         1,
			expectedRecord: record,
		},
		{
			name:          "error: record not found",
			givenState:    []Passenger{record},
			giveID:        2,
			expectedError: ErrPassengerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := MemoryPassengerStore{Records: tt.givenState}
			got, err := store.Get(tt.giveID)

			if tt.expectedError != nil {
				require.Error(t, err)
				require.Equal(t, tt.expectedError, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.expectedRecord, got)
			}
		})
	}
}

func TestMemoryPassengerStore_Add(t *testing.T) {
	t.Parallel()

	record := Passenger{ID: 1, Name: "Jürgen Möller", CardNumber: "0021095222"}

	tests := []struct {
		name          string
		givenState    []Passenger
		giveRecord    Passenger
		expectedState []Passenger
		expectedError error
	}{
		{
			name:          "success: adds new record",
			givenState:    []Passenger{},
			giveRecord:    record,
			expectedState: []Passenger{record},
		},
		{
			name:          "error: already existing record",
			givenState:    []Passenger{record},
			giveRecord:    record,
			expectedError: ErrPassengerExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := MemoryPassengerStore{Records: tt.givenState}
			err := store.Add(tt.giveRecord)

			if tt.expectedError != nil {
				require.Error(t, err)
				require.Equal(t, tt.expectedError, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.expectedState, store.Records)
			}
		})
	}
}

func TestMemoryPassengerStore_Update(t *testing.T) {
	t.Parallel()

	var (
		oldRecord = Passenger{ID: 1, Name: "Jürgen Möller", CardNumber: "0021095222"}
		newRecord = Passenger{ID: 1, Name: "Jürgen Möller", CardNumber: "0029999999"}
	)

	tests := []struct {
		name          string
		givenState    []Passenger
		giveRecord    Passenger
		expectedState []Passenger
		expectedError error
	}{
		{
			name:          "success: updates existing record",
			givenState:    []Passenger{oldRecord},
			giveRecord:    newRecord,
			expectedState: []Passenger{newRecord},
		},
		{
			name:          "error: record not found",
			givenState:    []Passenger{},
			giveRecord:    newRecord,
			expectedError: ErrPassengerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := MemoryPassengerStore{Records: tt.givenState}
			err := store.Update(tt.giveRecord)

			if tt.expectedError != nil {
				require.Error(t, err)
				require.Equal(t, tt.expectedError, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.expectedState, store.Records)
			}
		})
	}
}

func TestMemoryPassengerStore_Upsert(t *testing.T) {
	t.Parallel()

	var (
		oldRecord = Passenger{ID: 1, Name: "Jürgen Möller", CardNumber: "0021095222"}
		newRecord = Passenger{ID: 1, Name: "Jürgen Möller", CardNumber: "0029999999"}
	)

	store := NewMemoryPassengerStore()
	require.NoError(t, store.Upsert(oldRecord))
	require.Equal(t, []Passenger{oldRecord}, store.Records)

	require.NoError(t, store.Upsert(newRecord))
	require.Equal(t, []Passenger{newRecord}, store.Records)
}

func TestMemoryPassengerStore_Delete(t *testing.T) {
	t.Parallel()

	record := Passenger{ID: 1, Name: "Jürgen Möller", CardNumber: "0021095222"}

	store := MemoryPassengerStore{Records: []Passenger{record}}

	require.ErrorIs(t, store.Delete(2), ErrPassengerNotFound)
	require.NoError(t, store.Delete(1))
	require.Empty(t, store.Records)
}
