package response

import (
	"time"

	"rental-booking/internal/data/entity"
)

type InquiryResponse struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Email      string               `json:"email"`
	Phone      string               `json:"phone"`
	PropertyID string               `json:"propertyId,omitempty"`
	Message    string               `json:"message"`
	Type       entity.InquiryType   `json:"inquiryType"`
	Status     entity.InquiryStatus `json:"status"`
	CreatedAt  time.Time            `json:"createdAt"`
	ClosedAt   *time.Time           `json:"closedAt,omitempty"`
}

func InquiryToResponse(inq *entity.ContactInquiry) InquiryResponse {
	return InquiryResponse{
		ID:         inq.ID,
		Name:       inq.Name,
		Email:      inq.Email,
		Phone:      inq.Phone,
		PropertyID: inq.PropertyID,
		Message:    inq.Message,
		Type:       inq.Type,
		Status:     inq.Status,
		CreatedAt:  inq.CreatedAt,
		ClosedAt:   inq.ClosedAt,
	}
}

func InquiriesToResponse(inquiries []entity.ContactInquiry) []InquiryResponse {
	responses := make([]InquiryResponse, len(inquiries))
	for i := range inquiries {
		responses[i] = InquiryToResponse(&inquiries[i])
	}
	return responses
}
