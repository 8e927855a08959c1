package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"staylux-backend/middleware"
	"staylux-backend/services"
	"staylux-backend/store"
	"staylux-backend/utils"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// Create handles the public booking form.
// POST /api/bookings
func (bc *BookingController) Create(c *gin.Context) {
	var req services.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	booking, err := bc.BookingSvc.Create(req)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			utils.JSONValidationError(c, http.StatusBadRequest, ve.Fields)
			return
		}
		if errors.Is(err, store.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to submit booking")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// AdminList serves the admin bookings table.
// GET /api/admin/bookings?q=&status=
func (bc *BookingController) AdminList(c *gin.Context) {
	bookings := bc.BookingSvc.List(services.BookingCriteria{
		Query:  c.Query("q"),
		Status: c.Query("status"),
	})
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GET /api/admin/bookings/:id
func (bc *BookingController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	booking, err := bc.BookingSvc.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load booking")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"booking":            booking,
		"allowedTransitions": services.AllowedTransitions(booking.Status),
	})
}

type changeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ChangeStatus performs an admin workflow transition.
// PATCH /api/admin/bookings/:id/status
func (bc *BookingController) ChangeStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	booking, err := bc.BookingSvc.ChangeStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
		case errors.Is(err, services.ErrInvalidTransition):
			utils.JSONError(c, http.StatusUnprocessableEntity, "invalid status transition")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to update booking status")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// DELETE /api/admin/bookings/:id
func (bc *BookingController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	if err := bc.BookingSvc.Delete(id); err != nil {
		if errors.Is(err, store.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete booking")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

// MyBookings lists the session user's bookings, correlated by email.
// GET /api/my/bookings
func (bc *BookingController) MyBookings(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing session")
		return
	}
	now := time.Now()
	bookings := bc.BookingSvc.ListForEmail(session.Email)
	out := make([]gin.H, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, gin.H{
			"booking":    b,
			"cancelable": services.CanGuestCancel(b, now),
		})
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

// CancelOwn is end-user self-service cancellation.
// POST /api/my/bookings/:id/cancel
func (bc *BookingController) CancelOwn(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing session")
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	booking, err := bc.BookingSvc.CancelOwn(id, session.Email, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, store.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
		case errors.Is(err, services.ErrNotOwnBooking):
			utils.JSONError(c, http.StatusForbidden, "this booking belongs to another guest")
		case errors.Is(err, services.ErrNotCancellable):
			utils.JSONError(c, http.StatusUnprocessableEntity, "booking can no longer be cancelled")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}
