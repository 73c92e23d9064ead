package request

type CreateBookingRequest struct {
	PropertyID      string `json:"propertyId" validate:"required"`
	GuestName       string `json:"guestName" validate:"required,max=200"`
	GuestEmail      string `json:"guestEmail" validate:"required,email"`
	GuestPhone      string `json:"guestPhone" validate:"required,max=30"`
	CheckIn         string `json:"checkIn" validate:"required"`
	CheckOut        string `json:"checkOut" validate:"required"`
	Guests          int    `json:"guests" validate:"required,min=1"`
	SpecialRequests string `json:"specialRequests,omitempty" validate:"omitempty,max=2000"`
}

type CheckAvailabilityRequest struct {
	PropertyID string `json:"propertyId" validate:"required"`
	CheckIn    string `json:"checkIn" validate:"required"`
	CheckOut   string `json:"checkOut" validate:"required"`
}

type UpdateBookingStatusRequest struct {
	BookingID string `json:"bookingId" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}
