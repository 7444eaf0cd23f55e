package registry

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrPassengerNotFound = errors.New("no passenger with the provided id exists")
var ErrPassengerExists = errors.New("a passenger with the provided id already exists")

// Passenger implements the UniqueRecord interface
var _ UniqueRecord[int] = Passenger{}

// Passenger is a registered card holder. Passengers are independent of
// routes and schedules.
type Passenger struct {
	// ID identifies the passenger within the registry.
	ID int `json:"passenger_id"`
	// Name is the passenger's full name.
	Name string `json:"name"`
	// CardNumber is the fare card number, kept as a string to preserve
	// leading zeroes.
	CardNumber string `json:"card_number"`
}

// Key returns the primary key for the Passenger.
func (p Passenger) Key() int {
	return p.ID
}

func (p Passenger) String() string {
	return fmt.Sprintf("Passenger: %s (Card: %s, ID: %d)", p.Name, p.CardNumber, p.ID)
}

// UnmarshalJSON decodes a Passenger, failing if any required key is absent.
func (p *Passenger) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, "passenger_id", "name", "card_number"); err != nil {
		return fmt.Errorf("passenger: %w", err)
	}

	type alias Passenger
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*p = Passenger(a)

	return nil
}
