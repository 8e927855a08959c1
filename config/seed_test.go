package config

import "testing"

func TestLoadSeedData(t *testing.T) {
	rooms, bookings, err := LoadSeedData()
	if err != nil {
		t.Fatalf("seed data failed to decode: %v", err)
	}
	if len(rooms) == 0 || len(bookings) == 0 {
		t.Fatalf("seed data empty: %d rooms, %d bookings", len(rooms), len(bookings))
	}

	seen := map[int]bool{}
	for _, r := range rooms {
		if r.ID <= 0 {
			t.Errorf("room %q has non-positive id %d", r.Name, r.ID)
		}
		if seen[r.ID] {
			t.Errorf("duplicate room id %d", r.ID)
		}
		seen[r.ID] = true
	}
	seen = map[int]bool{}
	for _, b := range bookings {
		if b.ID <= 0 {
			t.Errorf("booking %q has non-positive id %d", b.GuestName, b.ID)
		}
		if seen[b.ID] {
			t.Errorf("duplicate booking id %d", b.ID)
		}
		seen[b.ID] = true
	}
}
