package services

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"staylux-backend/models"
	"staylux-backend/store"
	"staylux-backend/utils"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotCancellable    = errors.New("booking can no longer be cancelled")
	ErrNotOwnBooking     = errors.New("booking does not belong to this guest")
)

// ValidationError carries per-field form validation messages back to the
// controller, mirroring the original booking form behavior.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }

var emailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// BookingService owns booking creation and the status workflow. It needs the
// room store to price a new booking; it never writes to it.
type BookingService struct {
	Bookings *store.BookingStore
	Rooms    *store.RoomStore
}

func NewBookingService(bookings *store.BookingStore, rooms *store.RoomStore) *BookingService {
	return &BookingService{Bookings: bookings, Rooms: rooms}
}

// BookingRequest is the public booking form payload.
type BookingRequest struct {
	RoomID          int            `json:"roomId"`
	GuestName       string         `json:"guestName"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	CheckIn         string         `json:"checkIn"`
	CheckOut        string         `json:"checkOut"`
	Guests          models.FlexInt `json:"guests"`
	SpecialRequests string         `json:"specialRequests"`
}

func validateBookingRequest(req BookingRequest) error {
	fields := map[string]string{}
	if strings.TrimSpace(req.GuestName) == "" {
		fields["guestName"] = "Guest name is required"
	}
	if strings.TrimSpace(req.Email) == "" {
		fields["email"] = "Email is required"
	} else if !emailShape.MatchString(req.Email) {
		fields["email"] = "Email is invalid"
	}
	if strings.TrimSpace(req.Phone) == "" {
		fields["phone"] = "Phone number is required"
	}
	if req.CheckIn == "" {
		fields["checkIn"] = "Check-in date is required"
	}
	if req.CheckOut == "" {
		fields["checkOut"] = "Check-out date is required"
	}
	if req.CheckIn != "" && req.CheckOut != "" {
		in, inOK := utils.ParseDate(req.CheckIn)
		out, outOK := utils.ParseDate(req.CheckOut)
		if !inOK {
			fields["checkIn"] = "Check-in date is invalid"
		}
		if !outOK {
			fields["checkOut"] = "Check-out date is invalid"
		} else if inOK && !out.After(in) {
			fields["checkOut"] = "Check-out must be after check-in date"
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Create validates the form, prices the stay off the room's nightly rate
// (nights x price, nights = ceil of the date span) and stores the booking
// with the initial pending status.
func (s *BookingService) Create(req BookingRequest) (models.Booking, error) {
	if err := validateBookingRequest(req); err != nil {
		return models.Booking{}, err
	}
	room, err := s.Rooms.GetByID(req.RoomID)
	if err != nil {
		return models.Booking{}, err
	}
	nights := utils.Nights(req.CheckIn, req.CheckOut)
	booking := models.Booking{
		GuestName:       strings.TrimSpace(req.GuestName),
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		RoomID:          req.RoomID,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Guests:          req.Guests,
		TotalPrice:      float64(nights) * room.Price,
		Status:          models.BookingStatusPending,
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
	}
	return s.Bookings.Create(booking), nil
}

// List applies the admin table filters over the full collection.
func (s *BookingService) List(c BookingCriteria) []models.Booking {
	return FilterBookings(s.Bookings.GetAll(), c)
}

// ListForEmail returns the bookings correlated with a session email.
func (s *BookingService) ListForEmail(email string) []models.Booking {
	return BookingsForEmail(s.Bookings.GetAll(), email)
}

func (s *BookingService) Get(id int) (models.Booking, error) {
	return s.Bookings.GetByID(id)
}

// ChangeStatus performs an admin-initiated workflow transition. It mutates
// only the booking's status; the associated room is untouched and no other
// booking is affected.
func (s *BookingService) ChangeStatus(id int, newStatus string) (models.Booking, error) {
	booking, err := s.Bookings.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	if !CanTransition(booking.Status, newStatus) {
		return models.Booking{}, ErrInvalidTransition
	}
	return s.Bookings.Update(id, models.BookingPatch{Status: &newStatus})
}

// CancelOwn is the end-user self-service cancellation: the booking must
// belong to the session email and pass the looser eligibility rule.
func (s *BookingService) CancelOwn(id int, email string, now time.Time) (models.Booking, error) {
	booking, err := s.Bookings.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	if booking.Email != email {
		return models.Booking{}, ErrNotOwnBooking
	}
	if !CanGuestCancel(booking, now) {
		return models.Booking{}, ErrNotCancellable
	}
	cancelled := models.BookingStatusCancelled
	return s.Bookings.Update(id, models.BookingPatch{Status: &cancelled})
}

func (s *BookingService) Delete(id int) error {
	return s.Bookings.Delete(id)
}
