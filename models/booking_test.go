package models

import (
	"encoding/json"
	"testing"
)

func TestFlexIntCoercion(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{`{"guests": 3}`, 3},
		{`{"guests": "2"}`, 2},
		{`{"guests": " 4 "}`, 4},
		{`{"guests": "two"}`, 0},
		{`{"guests": null}`, 0},
		{`{}`, 0},
	}
	for _, tc := range cases {
		var b Booking
		if err := json.Unmarshal([]byte(tc.raw), &b); err != nil {
			t.Errorf("unmarshal %s: %v", tc.raw, err)
			continue
		}
		if int(b.Guests) != tc.want {
			t.Errorf("guests from %s = %d, want %d", tc.raw, b.Guests, tc.want)
		}
	}
}

func TestBookingRoundTripKeepsIdCasing(t *testing.T) {
	b := Booking{ID: 7, GuestName: "Sarah", Guests: 2}
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := raw["Id"]; !ok {
		t.Fatalf("expected capital-I \"Id\" key on the wire, got keys %v", keys(raw))
	}
}

func keys(m map[string]json.RawMessage) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
