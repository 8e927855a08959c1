package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"staylux-backend/services"
	"staylux-backend/store"
	"staylux-backend/utils"
)

const trendDays = 30

// StatsController serves the admin dashboard and reports pages. It reads the
// full collections and hands them to the pure aggregation functions;
// statistics are always computed over everything, never a filtered view.
type StatsController struct {
	Rooms    *store.RoomStore
	Bookings *store.BookingStore
}

func NewStatsController(rooms *store.RoomStore, bookings *store.BookingStore) *StatsController {
	return &StatsController{Rooms: rooms, Bookings: bookings}
}

// GET /api/admin/dashboard
func (sc *StatsController) Dashboard(c *gin.Context) {
	rooms := sc.Rooms.GetAll()
	bookings := sc.Bookings.GetAll()
	now := time.Now()

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"rooms":    services.ComputeRoomStats(rooms),
		"bookings": services.ComputeBookingStats(bookings),
		"today":    services.ComputeTodayActivity(bookings, now),
	})
}

// GET /api/admin/reports?days=30
func (sc *StatsController) Reports(c *gin.Context) {
	windowDays := trendDays
	if raw := c.Query("days"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			windowDays = v
		}
	}

	rooms := sc.Rooms.GetAll()
	bookings := sc.Bookings.GetAll()
	now := time.Now()

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"metrics":   services.ComputeReportMetrics(bookings, rooms, now, windowDays),
		"roomTypes": services.ComputeRoomTypeBreakdown(rooms),
		"trends":    services.ComputeBookingTrends(bookings, now, trendDays),
	})
}
