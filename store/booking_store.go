package store

import (
	"sync"
	"time"

	"staylux-backend/models"
)

const (
	bookingDelayGetAll  = 350 * time.Millisecond
	bookingDelayGetByID = 200 * time.Millisecond
	bookingDelayCreate  = 500 * time.Millisecond
	bookingDelayUpdate  = 300 * time.Millisecond
	bookingDelayDelete  = 250 * time.Millisecond
)

type BookingStore struct {
	mu       sync.Mutex
	bookings []models.Booking
	simulate bool
	now      func() time.Time
}

// NewBookingStore seeds a store with its own copy of the given bookings.
func NewBookingStore(seed []models.Booking, simulate bool) *BookingStore {
	bookings := make([]models.Booking, len(seed))
	copy(bookings, seed)
	return &BookingStore{bookings: bookings, simulate: simulate, now: time.Now}
}

// SetClock overrides the createdAt clock, for tests.
func (s *BookingStore) SetClock(now func() time.Time) {
	s.now = now
}

func (s *BookingStore) GetAll() []models.Booking {
	sleepFor(s.simulate, bookingDelayGetAll)
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *BookingStore) GetByID(id int) (models.Booking, error) {
	sleepFor(s.simulate, bookingDelayGetByID)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Booking{}, ErrBookingNotFound
}

// Create assigns the next id (max existing + 1, never reused), defaults
// status to "pending" when unset and stamps createdAt once. The roomId is
// not validated for existence; rooms and bookings are independent entities.
func (s *BookingStore) Create(booking models.Booking) models.Booking {
	sleepFor(s.simulate, bookingDelayCreate)
	s.mu.Lock()
	defer s.mu.Unlock()

	booking.ID = s.nextID()
	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}
	booking.CreatedAt = s.now().UTC().Format(time.RFC3339)
	s.bookings = append(s.bookings, booking)
	return booking
}

func (s *BookingStore) nextID() int {
	max := 0
	for _, b := range s.bookings {
		if b.ID > max {
			max = b.ID
		}
	}
	return max + 1
}

// Update shallow-merges the set fields of patch onto the stored record.
// The id and createdAt are immutable. Last write wins; there is no version
// checking on concurrent updates to the same record.
func (s *BookingStore) Update(id int, patch models.BookingPatch) (models.Booking, error) {
	sleepFor(s.simulate, bookingDelayUpdate)
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		b := &s.bookings[i]
		if patch.GuestName != nil {
			b.GuestName = *patch.GuestName
		}
		if patch.Email != nil {
			b.Email = *patch.Email
		}
		if patch.Phone != nil {
			b.Phone = *patch.Phone
		}
		if patch.RoomID != nil {
			b.RoomID = *patch.RoomID
		}
		if patch.CheckIn != nil {
			b.CheckIn = *patch.CheckIn
		}
		if patch.CheckOut != nil {
			b.CheckOut = *patch.CheckOut
		}
		if patch.Guests != nil {
			b.Guests = *patch.Guests
		}
		if patch.TotalPrice != nil {
			b.TotalPrice = *patch.TotalPrice
		}
		if patch.Status != nil {
			b.Status = *patch.Status
		}
		if patch.SpecialRequests != nil {
			b.SpecialRequests = *patch.SpecialRequests
		}
		return *b, nil
	}
	return models.Booking{}, ErrBookingNotFound
}

func (s *BookingStore) Delete(id int) error {
	sleepFor(s.simulate, bookingDelayDelete)
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.bookings {
		if b.ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return ErrBookingNotFound
}
