package entity

import "time"

type InquiryStatus string

const (
	InquiryStatusOpen   InquiryStatus = "open"
	InquiryStatusClosed InquiryStatus = "closed"
)

type InquiryType string

const (
	InquiryTypeGeneral  InquiryType = "general"
	InquiryTypeDiscount InquiryType = "discount"
	InquiryTypeBooking  InquiryType = "booking"
)

// ContactInquiry is a free-standing message from a prospective guest,
// optionally linked to a property.
type ContactInquiry struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone"`
	PropertyID string        `json:"propertyId,omitempty"`
	Message    string        `json:"message"`
	Type       InquiryType   `json:"inquiryType"`
	Status     InquiryStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
	ClosedAt   *time.Time    `json:"closedAt,omitempty"`
}
