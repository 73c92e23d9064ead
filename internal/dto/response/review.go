package response

import (
	"time"

	"rental-booking/internal/data/entity"
)

type ReviewResponse struct {
	ID          string              `json:"id"`
	PropertyID  string              `json:"propertyId"`
	Source      entity.ReviewSource `json:"source"`
	GuestName   string              `json:"guestName"`
	GuestAvatar string              `json:"guestAvatar,omitempty"`
	Rating      int                 `json:"rating"`
	Comment     string              `json:"comment"`
	StayDate    string              `json:"stayDate,omitempty"`
	Verified    bool                `json:"verified"`
	CreatedAt   time.Time           `json:"createdAt"`
}

func ReviewToResponse(r *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:          r.ID,
		PropertyID:  r.PropertyID,
		Source:      r.Source,
		GuestName:   r.GuestName,
		GuestAvatar: r.GuestAvatar,
		Rating:      r.Rating,
		Comment:     r.Comment,
		StayDate:    r.StayDate,
		Verified:    r.Verified,
		CreatedAt:   r.CreatedAt,
	}
}

func ReviewsToResponse(reviews []entity.Review) []ReviewResponse {
	responses := make([]ReviewResponse, len(reviews))
	for i := range reviews {
		responses[i] = ReviewToResponse(&reviews[i])
	}
	return responses
}
