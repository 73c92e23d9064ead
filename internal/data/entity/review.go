package entity

import "time"

type ReviewSource string

const (
	ReviewSourceAirbnb   ReviewSource = "airbnb"
	ReviewSourceCustomer ReviewSource = "customer"
	ReviewSourceManual   ReviewSource = "manual"
)

type Review struct {
	ID          string       `json:"id"`
	PropertyID  string       `json:"propertyId"`
	Source      ReviewSource `json:"source"`
	GuestName   string       `json:"guestName"`
	GuestAvatar string       `json:"guestAvatar,omitempty"`
	Rating      int          `json:"rating"` // 1-5
	Comment     string       `json:"comment"`
	StayDate    string       `json:"stayDate,omitempty"`
	CheckIn     string       `json:"checkIn,omitempty"`
	CheckOut    string       `json:"checkOut,omitempty"`
	Verified    bool         `json:"verified,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   *time.Time   `json:"updatedAt,omitempty"`
}
