package models

import (
	"bytes"
	"strconv"
)

// Booking statuses. "pending" is the sole initial state; "checked-out" is
// terminal. See services.AllowedTransitions for the full table.
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusCheckedIn  = "checked-in"
	BookingStatusCheckedOut = "checked-out"
	BookingStatusCancelled  = "cancelled"
)

type Booking struct {
	ID              int     `json:"Id"`
	GuestName       string  `json:"guestName"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	RoomID          int     `json:"roomId"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        string  `json:"checkOut"`
	Guests          FlexInt `json:"guests"`
	TotalPrice      float64 `json:"totalPrice"`
	Status          string  `json:"status"`
	SpecialRequests string  `json:"specialRequests,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// BookingPatch carries a partial booking update. Nil fields are left
// untouched; the id and createdAt are immutable across updates.
type BookingPatch struct {
	GuestName       *string  `json:"guestName"`
	Email           *string  `json:"email"`
	Phone           *string  `json:"phone"`
	RoomID          *int     `json:"roomId"`
	CheckIn         *string  `json:"checkIn"`
	CheckOut        *string  `json:"checkOut"`
	Guests          *FlexInt `json:"guests"`
	TotalPrice      *float64 `json:"totalPrice"`
	Status          *string  `json:"status"`
	SpecialRequests *string  `json:"specialRequests"`
}

// FlexInt decodes a guest count that callers may send as a number or a
// numeric string. Anything non-numeric coerces to 0 at the boundary instead
// of failing the whole record.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(bytes.Trim(bytes.TrimSpace(data), `"`)))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(n)
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(f))), nil
}
