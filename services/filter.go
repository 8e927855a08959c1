// Filtering over in-memory collections. Pure functions: criteria in,
// order-preserving subset out, no I/O. Empty criteria mean "no constraint";
// active criteria combine with AND.
package services

import (
	"strconv"
	"strings"

	"staylux-backend/models"
)

// RoomCriteria captures the public rooms page filters. Nil numeric bounds
// are unset; a nil MaxPrice leaves the range unbounded above.
type RoomCriteria struct {
	Query       string
	Type        string
	MinPrice    *float64
	MaxPrice    *float64
	MinCapacity *int
}

// FilterRooms returns the rooms matching every active criterion, preserving
// the input order.
func FilterRooms(rooms []models.Room, c RoomCriteria) []models.Room {
	out := make([]models.Room, 0, len(rooms))
	q := strings.ToLower(strings.TrimSpace(c.Query))
	for _, r := range rooms {
		if q != "" &&
			!strings.Contains(strings.ToLower(r.Name), q) &&
			!strings.Contains(strings.ToLower(r.Type), q) {
			continue
		}
		if c.Type != "" && r.Type != c.Type {
			continue
		}
		if c.MinPrice != nil && r.Price < *c.MinPrice {
			continue
		}
		if c.MaxPrice != nil && r.Price > *c.MaxPrice {
			continue
		}
		if c.MinCapacity != nil && r.Capacity < *c.MinCapacity {
			continue
		}
		out = append(out, r)
	}
	return out
}

// SearchRooms is the admin table search: one free-text query matched
// case-insensitively against name, type and status.
func SearchRooms(rooms []models.Room, query string) []models.Room {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return rooms
	}
	out := make([]models.Room, 0, len(rooms))
	for _, r := range rooms {
		if strings.Contains(strings.ToLower(r.Name), q) ||
			strings.Contains(strings.ToLower(r.Type), q) ||
			strings.Contains(strings.ToLower(r.Status), q) {
			out = append(out, r)
		}
	}
	return out
}

// BookingCriteria captures the admin bookings table filters.
type BookingCriteria struct {
	Query  string
	Status string
}

// FilterBookings matches the query case-insensitively against guest name and
// email, and as a raw substring against the stringified id; the status
// filter is an exact match. Order is preserved.
func FilterBookings(bookings []models.Booking, c BookingCriteria) []models.Booking {
	out := make([]models.Booking, 0, len(bookings))
	q := strings.ToLower(strings.TrimSpace(c.Query))
	raw := strings.TrimSpace(c.Query)
	for _, b := range bookings {
		if q != "" &&
			!strings.Contains(strings.ToLower(b.GuestName), q) &&
			!strings.Contains(strings.ToLower(b.Email), q) &&
			!strings.Contains(strconv.Itoa(b.ID), raw) {
			continue
		}
		if c.Status != "" && b.Status != c.Status {
			continue
		}
		out = append(out, b)
	}
	return out
}

// BookingsForEmail narrows a collection to the bookings correlated with a
// session email. This is the informal identity mechanism the original used;
// it is not unique or secure and is preserved as such.
func BookingsForEmail(bookings []models.Booking, email string) []models.Booking {
	out := make([]models.Booking, 0)
	for _, b := range bookings {
		if b.Email == email {
			out = append(out, b)
		}
	}
	return out
}
