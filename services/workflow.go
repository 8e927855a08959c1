package services

import (
	"time"

	"staylux-backend/models"
	"staylux-backend/utils"
)

// statusFlow is the admin-side transition table. checked-out is terminal;
// cancelled may be re-activated back to confirmed.
var statusFlow = map[string][]string{
	models.BookingStatusPending:    {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed:  {models.BookingStatusCheckedIn, models.BookingStatusCancelled},
	models.BookingStatusCheckedIn:  {models.BookingStatusCheckedOut},
	models.BookingStatusCancelled:  {models.BookingStatusConfirmed},
	models.BookingStatusCheckedOut: {},
}

// AllowedTransitions lists the statuses a booking may move to from the given
// status. Unknown statuses have no outgoing transitions.
func AllowedTransitions(status string) []string {
	next, ok := statusFlow[status]
	if !ok {
		return []string{}
	}
	return append([]string(nil), next...)
}

func CanTransition(from, to string) bool {
	for _, s := range statusFlow[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CanGuestCancel is the looser self-service rule: a pending booking is
// always cancellable, a confirmed one only while check-in is more than one
// day away. The expression is deliberately
//
//	pending OR (confirmed AND daysUntilCheckIn > 1)
//
// matching the original's operator precedence; do not regroup it. An
// unparseable check-in date fails the day condition, leaving only pending
// bookings cancellable.
func CanGuestCancel(b models.Booking, now time.Time) bool {
	days, ok := utils.DaysUntil(b.CheckIn, now)
	if !ok {
		return b.Status == models.BookingStatusPending
	}
	return b.Status == models.BookingStatusPending ||
		b.Status == models.BookingStatusConfirmed && days > 1
}
