package request

type CreateReviewRequest struct {
	PropertyID string `json:"propertyId" validate:"required"`
	GuestName  string `json:"guestName" validate:"required,max=200"`
	GuestEmail string `json:"guestEmail" validate:"required,email"`
	GuestPhone string `json:"guestPhone,omitempty"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"required,max=5000"`
	CheckIn    string `json:"checkIn" validate:"required"`
	CheckOut   string `json:"checkOut" validate:"required"`
	BookingID  string `json:"bookingId,omitempty"`
}

type ImportAirbnbReviewRequest struct {
	PropertyID  string `json:"propertyId" validate:"required"`
	GuestName   string `json:"guestName" validate:"required,max=200"`
	GuestAvatar string `json:"guestAvatar,omitempty"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Comment     string `json:"comment" validate:"required,max=5000"`
	StayDate    string `json:"stayDate,omitempty"`
	Verified    *bool  `json:"verified,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}
