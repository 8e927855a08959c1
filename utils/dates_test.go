package utils

import (
	"testing"
	"time"
)

func TestNights(t *testing.T) {
	cases := []struct {
		checkIn, checkOut string
		want              int
	}{
		{"2024-01-10", "2024-01-13", 3},
		{"2024-01-10", "2024-01-11", 1},
		{"2024-01-10T15:00:00Z", "2024-01-13T11:00:00Z", 3}, // partial day rounds up
		{"2024-01-13", "2024-01-10", 0},                     // inverted range
		{"", "2024-01-13", 0},
		{"garbage", "2024-01-13", 0},
	}
	for _, tc := range cases {
		if got := Nights(tc.checkIn, tc.checkOut); got != tc.want {
			t.Errorf("Nights(%q, %q) = %d, want %d", tc.checkIn, tc.checkOut, got, tc.want)
		}
	}
}

func TestParseDateToleratesBothShapes(t *testing.T) {
	if _, ok := ParseDate("2024-01-10"); !ok {
		t.Error("bare date should parse")
	}
	if _, ok := ParseDate("2024-01-10T15:04:05Z"); !ok {
		t.Error("RFC3339 timestamp should parse")
	}
	if _, ok := ParseDate("not a date"); ok {
		t.Error("garbage should not parse")
	}
	if _, ok := ParseDate(""); ok {
		t.Error("empty string should not parse")
	}
}

func TestSameCalendarDay(t *testing.T) {
	now := time.Date(2024, 5, 15, 23, 50, 0, 0, time.UTC)
	if !SameCalendarDay("2024-05-15", now) {
		t.Error("bare date should match")
	}
	if !SameCalendarDay("2024-05-15T01:00:00Z", now) {
		t.Error("time-of-day must be ignored")
	}
	if SameCalendarDay("2024-05-16", now) {
		t.Error("different day should not match")
	}
	if SameCalendarDay("", now) {
		t.Error("empty date should not match")
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	days, ok := DaysUntil("2024-05-18", now)
	if !ok || days != 2.5 {
		t.Fatalf("expected 2.5 days, got %v (ok=%v)", days, ok)
	}
	if _, ok := DaysUntil("garbage", now); ok {
		t.Fatal("unparseable date should report ok=false")
	}
}
