package services

import (
	"testing"
	"time"

	"staylux-backend/models"
)

func TestOccupancyRate(t *testing.T) {
	if got := ComputeRoomStats(nil).OccupancyRate; got != 0 {
		t.Fatalf("empty collection should report 0, got %d", got)
	}

	rooms := []models.Room{
		{ID: 1, Status: "occupied"},
		{ID: 2, Status: "occupied"},
		{ID: 3, Status: "occupied"},
		{ID: 4, Status: "available"},
	}
	if got := ComputeRoomStats(rooms).OccupancyRate; got != 75 {
		t.Fatalf("expected 75, got %d", got)
	}
}

func TestTotalRevenueExcludesPendingAndCancelled(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, Status: "confirmed", TotalPrice: 100},
		{ID: 2, Status: "checked-in", TotalPrice: 200},
		{ID: 3, Status: "checked-out", TotalPrice: 300},
		{ID: 4, Status: "pending", TotalPrice: 1000},
		{ID: 5, Status: "cancelled", TotalPrice: 1000},
	}
	got := ComputeBookingStats(bookings).TotalRevenue
	if got != 600 {
		t.Fatalf("expected revenue 600, got %v", got)
	}
}

func TestTotalRevenueIsAdditive(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, Status: "confirmed", TotalPrice: 120},
		{ID: 2, Status: "pending", TotalPrice: 80},
		{ID: 3, Status: "checked-out", TotalPrice: 40},
	}
	// Summing one booking at a time must reach the same total as one pass
	// over the whole collection.
	incremental := 0.0
	for _, b := range bookings {
		incremental += ComputeBookingStats([]models.Booking{b}).TotalRevenue
	}
	whole := ComputeBookingStats(bookings).TotalRevenue
	if incremental != whole {
		t.Fatalf("incremental %v != whole-collection %v", incremental, whole)
	}
}

func TestAverageBookingValueDividesByConfirmedCount(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

	// Revenue includes checked-out but the divisor counts only confirmed.
	bookings := []models.Booking{
		{ID: 1, Status: "confirmed", TotalPrice: 100},
		{ID: 2, Status: "checked-out", TotalPrice: 300},
	}
	m := ComputeReportMetrics(bookings, nil, now, 30)
	if m.AverageBookingValue != 400 {
		t.Fatalf("expected 400 (400 revenue / 1 confirmed), got %v", m.AverageBookingValue)
	}

	// No confirmed bookings: guarded to 0 rather than dividing by zero.
	m = ComputeReportMetrics([]models.Booking{
		{ID: 1, Status: "checked-out", TotalPrice: 300},
	}, nil, now, 30)
	if m.AverageBookingValue != 0 {
		t.Fatalf("expected 0 with no confirmed bookings, got %v", m.AverageBookingValue)
	}
}

func TestGuestAndStayMetrics(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{ID: 1, Guests: 2, CheckIn: "2024-01-10", CheckOut: "2024-01-13"}, // 3 nights
		{ID: 2, Guests: 3, CheckIn: "2024-02-01", CheckOut: "2024-02-03"}, // 2 nights
		{ID: 3, Guests: 0, CheckIn: "", CheckOut: "2024-02-03"},           // excluded from stay mean
		{ID: 4, Guests: 4, CheckIn: "not-a-date", CheckOut: "2024-02-03"}, // malformed, excluded
	}
	m := ComputeReportMetrics(bookings, nil, now, 30)
	if m.TotalGuests != 9 {
		t.Fatalf("expected 9 guests, got %d", m.TotalGuests)
	}
	if m.AverageStayLength != 2.5 {
		t.Fatalf("expected average stay 2.5, got %v", m.AverageStayLength)
	}
}

func TestReportWindowMetrics(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{ID: 1, Status: "confirmed", TotalPrice: 100, CreatedAt: "2024-05-10T08:00:00Z"},
		{ID: 2, Status: "confirmed", TotalPrice: 200, CreatedAt: "2024-01-01T08:00:00Z"},
		{ID: 3, Status: "pending", TotalPrice: 50, CreatedAt: "2024-05-12T08:00:00Z"},
	}
	m := ComputeReportMetrics(bookings, nil, now, 7)
	if m.RecentBookings != 2 {
		t.Fatalf("expected 2 recent bookings, got %d", m.RecentBookings)
	}
	if m.RecentRevenue != 100 {
		t.Fatalf("expected recent revenue 100, got %v", m.RecentRevenue)
	}
	if m.TotalRevenue != 300 {
		t.Fatalf("expected total revenue 300, got %v", m.TotalRevenue)
	}
}

func TestTodayActivity(t *testing.T) {
	now := time.Date(2024, 5, 15, 18, 30, 0, 0, time.UTC)
	bookings := []models.Booking{
		{ID: 1, CheckIn: "2024-05-15", CheckOut: "2024-05-18"},
		{ID: 2, CheckIn: "2024-05-12", CheckOut: "2024-05-15T11:00:00Z"},
		{ID: 3, CheckIn: "2024-05-20", CheckOut: "2024-05-22"},
		{ID: 4, CheckIn: "", CheckOut: ""},
	}
	a := ComputeTodayActivity(bookings, now)
	if len(a.CheckIns) != 1 || a.CheckIns[0].ID != 1 {
		t.Fatalf("expected check-in [1], got %+v", a.CheckIns)
	}
	if len(a.CheckOuts) != 1 || a.CheckOuts[0].ID != 2 {
		t.Fatalf("expected check-out [2], got %+v", a.CheckOuts)
	}
}

func TestRoomTypeBreakdown(t *testing.T) {
	rooms := []models.Room{
		{ID: 1, Type: "Standard", Status: "available"},
		{ID: 2, Type: "Standard", Status: "occupied"},
		{ID: 3, Type: "Suite", Status: "occupied"},
		{ID: 4, Type: "", Status: "available"},
	}
	got := ComputeRoomTypeBreakdown(rooms)
	if len(got) != 3 {
		t.Fatalf("expected 3 type buckets, got %d", len(got))
	}
	std := got[0]
	if std.Type != "Standard" || std.Total != 2 || std.Available != 1 || std.Occupied != 1 || std.OccupancyRate != 50 {
		t.Fatalf("unexpected Standard bucket: %+v", std)
	}
	if got[1].Type != "Suite" || got[1].OccupancyRate != 100 {
		t.Fatalf("unexpected Suite bucket: %+v", got[1])
	}
	if got[2].Type != "Unknown" {
		t.Fatalf("rooms without type should bucket as Unknown, got %+v", got[2])
	}
}

func TestBookingTrendsSingleBookingToday(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{ID: 1, Status: "confirmed", TotalPrice: 100, CreatedAt: "2024-05-15T09:30:00Z"},
	}
	series := ComputeBookingTrends(bookings, now, 30)
	if len(series) != 30 {
		t.Fatalf("expected 30 day buckets, got %d", len(series))
	}
	if series[0].Date != "2024-04-16" || series[29].Date != "2024-05-15" {
		t.Fatalf("series bounds wrong: %s .. %s", series[0].Date, series[29].Date)
	}
	for i, p := range series {
		if i == 29 {
			if p.Bookings != 1 || p.Revenue != 100 {
				t.Fatalf("today's bucket wrong: %+v", p)
			}
			continue
		}
		if p.Bookings != 0 || p.Revenue != 0 {
			t.Fatalf("bucket %s should be empty: %+v", p.Date, p)
		}
	}
}

func TestBookingTrendsIgnoreNonContributing(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{ID: 1, Status: "pending", TotalPrice: 100, CreatedAt: "2024-05-15T09:30:00Z"},
		{ID: 2, Status: "cancelled", TotalPrice: 100, CreatedAt: "2024-05-15T09:30:00Z"},
		{ID: 3, Status: "confirmed", TotalPrice: 100, CreatedAt: ""},
	}
	series := ComputeBookingTrends(bookings, now, 30)
	for _, p := range series {
		if p.Bookings != 0 || p.Revenue != 0 {
			t.Fatalf("no bucket should be populated: %+v", p)
		}
	}
}
