package entity

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a guest's reservation request for one property. Check-in and
// check-out are calendar dates ("2006-01-02"); the check-out day itself is
// not occupied, so back-to-back stays may share a turnover date.
type Booking struct {
	ID              string        `json:"id"`
	PropertyID      string        `json:"propertyId"`
	GuestName       string        `json:"guestName"`
	GuestEmail      string        `json:"guestEmail"`
	GuestPhone      string        `json:"guestPhone"`
	CheckIn         string        `json:"checkIn"`
	CheckOut        string        `json:"checkOut"`
	Guests          int           `json:"guests"`
	TotalPrice      float64       `json:"totalPrice"`
	Status          BookingStatus `json:"status"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// Blocks reports whether this booking blocks availability for its date
// range. Only confirmed bookings block; pending requests deliberately do not
// hold dates.
func (b *Booking) Blocks() bool {
	return b.Status == BookingStatusConfirmed
}
