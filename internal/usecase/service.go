package usecase

import (
	"rental-booking/internal/data/repository"
	"rental-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Property PropertyService
	Booking  BookingService
	Review   ReviewService
	Inquiry  InquiryService
	Content  ContentService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config.Admin, log),
		Property: NewPropertyService(repo, log),
		Booking:  NewBookingService(repo, log),
		Review:   NewReviewService(repo, log),
		Inquiry:  NewInquiryService(repo, log),
		Content:  NewContentService(repo, log),
	}
}
