package request

type CreateInquiryRequest struct {
	Name       string `json:"name" validate:"required,max=200"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,max=30"`
	PropertyID string `json:"propertyId,omitempty"`
	Message    string `json:"message" validate:"required,max=5000"`
	Type       string `json:"inquiryType,omitempty" validate:"omitempty,oneof=general discount booking"`
}

type UpdateInquiryStatusRequest struct {
	InquiryID string `json:"inquiryId" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=open closed"`
}
