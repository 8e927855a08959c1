package services

import (
	"testing"

	"staylux-backend/models"
)

var testRooms = []models.Room{
	{ID: 1, Name: "Classic Garden Room", Type: "Standard", Capacity: 2, Price: 189, Status: "available"},
	{ID: 2, Name: "Deluxe King Room", Type: "Deluxe", Capacity: 3, Price: 289, Status: "occupied"},
	{ID: 3, Name: "Ocean View Suite", Type: "Suite", Capacity: 4, Price: 459, Status: "available"},
	{ID: 4, Name: "Presidential Penthouse", Type: "Presidential", Capacity: 6, Price: 1250, Status: "maintenance"},
}

func roomIDs(rooms []models.Room) []int {
	ids := make([]int, len(rooms))
	for i, r := range rooms {
		ids[i] = r.ID
	}
	return ids
}

func TestFilterRoomsNoCriteriaReturnsAll(t *testing.T) {
	got := FilterRooms(testRooms, RoomCriteria{})
	if len(got) != len(testRooms) {
		t.Fatalf("expected all %d rooms, got %d", len(testRooms), len(got))
	}
	for i := range got {
		if got[i].ID != testRooms[i].ID {
			t.Fatalf("order not preserved: %v", roomIDs(got))
		}
	}
}

func TestFilterRoomsQueryMatchesNameAndType(t *testing.T) {
	got := FilterRooms(testRooms, RoomCriteria{Query: "suite"})
	// "suite" hits room 3 by name and type.
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected [3], got %v", roomIDs(got))
	}

	got = FilterRooms(testRooms, RoomCriteria{Query: "DELUXE"})
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("query should be case-insensitive, got %v", roomIDs(got))
	}
}

func TestFilterRoomsCombinesWithAND(t *testing.T) {
	min := 200.0
	minCap := 3
	got := FilterRooms(testRooms, RoomCriteria{MinPrice: &min, MinCapacity: &minCap})
	if len(got) != 3 {
		t.Fatalf("expected rooms 2,3,4, got %v", roomIDs(got))
	}
	for _, r := range got {
		if r.Price < min || r.Capacity < minCap {
			t.Fatalf("room %d fails a predicate: %+v", r.ID, r)
		}
	}
}

func TestFilterRoomsPriceRangeUnboundedAbove(t *testing.T) {
	min := 400.0
	got := FilterRooms(testRooms, RoomCriteria{MinPrice: &min})
	if len(got) != 2 || got[0].ID != 3 || got[1].ID != 4 {
		t.Fatalf("expected [3 4], got %v", roomIDs(got))
	}

	max := 500.0
	got = FilterRooms(testRooms, RoomCriteria{MinPrice: &min, MaxPrice: &max})
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected [3], got %v", roomIDs(got))
	}
}

func TestSearchRoomsIncludesStatus(t *testing.T) {
	got := SearchRooms(testRooms, "maintenance")
	if len(got) != 1 || got[0].ID != 4 {
		t.Fatalf("expected [4], got %v", roomIDs(got))
	}
}

func TestFilterBookings(t *testing.T) {
	bookings := []models.Booking{
		{ID: 12, GuestName: "Sarah Mitchell", Email: "sarah@example.com", Status: "confirmed"},
		{ID: 2, GuestName: "James Okafor", Email: "j.okafor@example.com", Status: "pending"},
		{ID: 31, GuestName: "Mei Tanaka", Email: "mei@example.com", Status: "confirmed"},
	}

	got := FilterBookings(bookings, BookingCriteria{Query: "sarah"})
	if len(got) != 1 || got[0].ID != 12 {
		t.Fatalf("name query failed: got %d results", len(got))
	}

	// Id matching is a substring over the stringified id.
	got = FilterBookings(bookings, BookingCriteria{Query: "1"})
	if len(got) != 2 || got[0].ID != 12 || got[1].ID != 31 {
		t.Fatalf("id substring query failed: got %d results", len(got))
	}

	got = FilterBookings(bookings, BookingCriteria{Query: "example.com", Status: "confirmed"})
	if len(got) != 2 {
		t.Fatalf("AND combination failed: got %d results", len(got))
	}
	for _, b := range got {
		if b.Status != "confirmed" {
			t.Fatalf("status filter leaked booking %d", b.ID)
		}
	}
}

func TestBookingsForEmail(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, Email: "sarah@example.com"},
		{ID: 2, Email: "other@example.com"},
		{ID: 3, Email: "sarah@example.com"},
	}
	got := BookingsForEmail(bookings, "sarah@example.com")
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("email correlation failed: %+v", got)
	}
}
