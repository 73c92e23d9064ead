package response

import (
	"time"

	"rental-booking/internal/data/entity"
)

type BookingResponse struct {
	ID              string               `json:"id"`
	PropertyID      string               `json:"propertyId"`
	PropertyName    string               `json:"propertyName,omitempty"`
	GuestName       string               `json:"guestName"`
	GuestEmail      string               `json:"guestEmail"`
	GuestPhone      string               `json:"guestPhone"`
	CheckIn         string               `json:"checkIn"`
	CheckOut        string               `json:"checkOut"`
	Guests          int                  `json:"guests"`
	TotalPrice      float64              `json:"totalPrice"`
	Status          entity.BookingStatus `json:"status"`
	SpecialRequests string               `json:"specialRequests,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

func BookingToResponse(b *entity.Booking, propertyName string) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		PropertyID:      b.PropertyID,
		PropertyName:    propertyName,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Guests:          b.Guests,
		TotalPrice:      b.TotalPrice,
		Status:          b.Status,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
	}
}
