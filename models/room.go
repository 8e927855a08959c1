package models

// Room statuses. Mutated only by explicit admin action; a booking never
// moves a room's status automatically.
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

// RoomTypes is the type vocabulary the public filter UI offers.
// The store does not enforce it.
var RoomTypes = []string{"Standard", "Deluxe", "Suite", "Presidential"}

type Room struct {
	ID        int      `json:"Id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Capacity  int      `json:"capacity"`
	Price     float64  `json:"price"`
	Status    string   `json:"status"`
	Images    []string `json:"images"`
	Amenities []string `json:"amenities"`
}

// RoomPatch carries a partial room update. Nil fields are left untouched;
// the id is immutable across updates.
type RoomPatch struct {
	Name      *string   `json:"name"`
	Type      *string   `json:"type"`
	Capacity  *int      `json:"capacity"`
	Price     *float64  `json:"price"`
	Status    *string   `json:"status"`
	Images    *[]string `json:"images"`
	Amenities *[]string `json:"amenities"`
}
