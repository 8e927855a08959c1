// Aggregation over the full collections (never the filtered views). All
// functions are pure, take time explicitly and tolerate malformed records:
// unparseable dates and non-numeric guest counts simply do not contribute.
package services

import (
	"math"
	"time"

	"staylux-backend/models"
	"staylux-backend/utils"
)

// revenueContributing reports whether a booking's status counts toward
// revenue. Pending and cancelled bookings never do.
func revenueContributing(status string) bool {
	switch status {
	case models.BookingStatusConfirmed, models.BookingStatusCheckedIn, models.BookingStatusCheckedOut:
		return true
	}
	return false
}

type RoomStats struct {
	Total         int `json:"total"`
	Available     int `json:"available"`
	Occupied      int `json:"occupied"`
	Maintenance   int `json:"maintenance"`
	OccupancyRate int `json:"occupancyRate"`
}

func ComputeRoomStats(rooms []models.Room) RoomStats {
	s := RoomStats{Total: len(rooms)}
	for _, r := range rooms {
		switch r.Status {
		case models.RoomStatusAvailable:
			s.Available++
		case models.RoomStatusOccupied:
			s.Occupied++
		case models.RoomStatusMaintenance:
			s.Maintenance++
		}
	}
	s.OccupancyRate = occupancyRate(s.Occupied, s.Total)
	return s
}

// occupancyRate is round(occupied/total*100), 0 when the total is 0.
func occupancyRate(occupied, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(occupied) / float64(total) * 100))
}

type BookingStats struct {
	Total        int     `json:"total"`
	Pending      int     `json:"pending"`
	Confirmed    int     `json:"confirmed"`
	CheckedIn    int     `json:"checkedIn"`
	CheckedOut   int     `json:"checkedOut"`
	Cancelled    int     `json:"cancelled"`
	TotalRevenue float64 `json:"totalRevenue"`
}

func ComputeBookingStats(bookings []models.Booking) BookingStats {
	s := BookingStats{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case models.BookingStatusPending:
			s.Pending++
		case models.BookingStatusConfirmed:
			s.Confirmed++
		case models.BookingStatusCheckedIn:
			s.CheckedIn++
		case models.BookingStatusCheckedOut:
			s.CheckedOut++
		case models.BookingStatusCancelled:
			s.Cancelled++
		}
		if revenueContributing(b.Status) {
			s.TotalRevenue += b.TotalPrice
		}
	}
	return s
}

// TodayActivity is the dashboard's "today" panel: bookings whose check-in or
// check-out calendar date equals the given day.
type TodayActivity struct {
	CheckIns  []models.Booking `json:"checkIns"`
	CheckOuts []models.Booking `json:"checkOuts"`
}

func ComputeTodayActivity(bookings []models.Booking, now time.Time) TodayActivity {
	a := TodayActivity{CheckIns: []models.Booking{}, CheckOuts: []models.Booking{}}
	for _, b := range bookings {
		if utils.SameCalendarDay(b.CheckIn, now) {
			a.CheckIns = append(a.CheckIns, b)
		}
		if utils.SameCalendarDay(b.CheckOut, now) {
			a.CheckOuts = append(a.CheckOuts, b)
		}
	}
	return a
}

// ReportMetrics are the report page's headline numbers.
type ReportMetrics struct {
	TotalRevenue        float64 `json:"totalRevenue"`
	RecentRevenue       float64 `json:"recentRevenue"`
	RecentBookings      int     `json:"recentBookings"`
	OccupancyRate       int     `json:"occupancyRate"`
	ConfirmedBookings   int     `json:"confirmedBookings"`
	PendingBookings     int     `json:"pendingBookings"`
	AverageBookingValue float64 `json:"averageBookingValue"`
	TotalGuests         int     `json:"totalGuests"`
	AverageStayLength   float64 `json:"averageStayLength"`
}

// ComputeReportMetrics aggregates over all bookings and rooms; windowDays
// bounds only the "recent" figures (bookings created within the trailing
// window).
//
// averageBookingValue divides total revenue by the confirmed count alone,
// even though the numerator also includes checked-in and checked-out
// bookings. That mismatch is inherited behavior and kept on purpose.
func ComputeReportMetrics(bookings []models.Booking, rooms []models.Room, now time.Time, windowDays int) ReportMetrics {
	m := ReportMetrics{}
	cutoff := now.AddDate(0, 0, -windowDays)

	stayDays := 0
	stayCount := 0
	for _, b := range bookings {
		if revenueContributing(b.Status) {
			m.TotalRevenue += b.TotalPrice
		}
		switch b.Status {
		case models.BookingStatusConfirmed:
			m.ConfirmedBookings++
		case models.BookingStatusPending:
			m.PendingBookings++
		}
		if created, ok := utils.ParseDate(b.CreatedAt); ok && !created.Before(cutoff) {
			m.RecentBookings++
			if revenueContributing(b.Status) {
				m.RecentRevenue += b.TotalPrice
			}
		}
		m.TotalGuests += int(b.Guests)
		if b.CheckIn != "" && b.CheckOut != "" {
			if n := utils.Nights(b.CheckIn, b.CheckOut); n > 0 {
				stayDays += n
				stayCount++
			}
		}
	}

	roomStats := ComputeRoomStats(rooms)
	m.OccupancyRate = roomStats.OccupancyRate

	if m.ConfirmedBookings > 0 {
		m.AverageBookingValue = m.TotalRevenue / float64(m.ConfirmedBookings)
	}
	if stayCount > 0 {
		m.AverageStayLength = math.Round(float64(stayDays)/float64(stayCount)*10) / 10
	}
	return m
}

type RoomTypeStats struct {
	Type          string `json:"type"`
	Total         int    `json:"total"`
	Available     int    `json:"available"`
	Occupied      int    `json:"occupied"`
	OccupancyRate int    `json:"occupancyRate"`
}

// ComputeRoomTypeBreakdown groups rooms by type in first-seen order. Rooms
// with an empty type land in an "Unknown" bucket.
func ComputeRoomTypeBreakdown(rooms []models.Room) []RoomTypeStats {
	index := map[string]int{}
	out := []RoomTypeStats{}
	for _, r := range rooms {
		typ := r.Type
		if typ == "" {
			typ = "Unknown"
		}
		i, ok := index[typ]
		if !ok {
			i = len(out)
			index[typ] = i
			out = append(out, RoomTypeStats{Type: typ})
		}
		out[i].Total++
		switch r.Status {
		case models.RoomStatusAvailable:
			out[i].Available++
		case models.RoomStatusOccupied:
			out[i].Occupied++
		}
	}
	for i := range out {
		out[i].OccupancyRate = occupancyRate(out[i].Occupied, out[i].Total)
	}
	return out
}

// TrendPoint is one calendar day's bucket in the booking trend series.
type TrendPoint struct {
	Date     string  `json:"date"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// ComputeBookingTrends materializes a gap-free series of the trailing `days`
// calendar days (oldest first, today inclusive). A booking contributes to
// the bucket matching its createdAt date, and only while its status is
// revenue-contributing.
func ComputeBookingTrends(bookings []models.Booking, now time.Time, days int) []TrendPoint {
	series := make([]TrendPoint, days)
	index := map[string]int{}
	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, -(days - 1 - i)).Format("2006-01-02")
		series[i] = TrendPoint{Date: date}
		index[date] = i
	}
	for _, b := range bookings {
		if b.CreatedAt == "" || !revenueContributing(b.Status) {
			continue
		}
		if i, ok := index[utils.DateOnly(b.CreatedAt)]; ok {
			series[i].Bookings++
			series[i].Revenue += b.TotalPrice
		}
	}
	return series
}
