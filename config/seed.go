package config

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"staylux-backend/models"
)

//go:embed data/rooms.json
var roomsSeed []byte

//go:embed data/bookings.json
var bookingsSeed []byte

// LoadSeedData decodes the embedded mock datasets the stores start from.
func LoadSeedData() ([]models.Room, []models.Booking, error) {
	var rooms []models.Room
	if err := json.Unmarshal(roomsSeed, &rooms); err != nil {
		return nil, nil, fmt.Errorf("decode rooms seed: %w", err)
	}
	var bookings []models.Booking
	if err := json.Unmarshal(bookingsSeed, &bookings); err != nil {
		return nil, nil, fmt.Errorf("decode bookings seed: %w", err)
	}
	return rooms, bookings, nil
}
