package usecase

import (
	"context"
	"fmt"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/data/repository"
	"rental-booking/internal/dto/request"
	"rental-booking/internal/dto/response"
	"rental-booking/pkg/utils"

	"go.uber.org/zap"
)

type ReviewService interface {
	GetReviews(ctx context.Context, propertyID string) ([]response.ReviewResponse, error)
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)

	// Admin endpoint
	ImportAirbnbReview(ctx context.Context, req *request.ImportAirbnbReviewRequest) (*response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

// GetReviews returns all reviews, or only those for a property when an ID is
// given.
func (s *reviewService) GetReviews(ctx context.Context, propertyID string) ([]response.ReviewResponse, error) {
	var (
		reviews []entity.Review
		err     error
	)
	if propertyID != "" {
		reviews, err = s.repo.Review.FindByProperty(ctx, propertyID)
	} else {
		reviews, err = s.repo.Review.FindAll(ctx)
	}
	if err != nil {
		s.log.Error("Failed to get reviews", zap.Error(err))
		return nil, fmt.Errorf("get reviews: %w", err)
	}
	return response.ReviewsToResponse(reviews), nil
}

// CreateReview records a guest-submitted review. Guest submissions start
// unverified regardless of what the client sends.
func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	property, err := s.repo.Property.FindByID(ctx, req.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("find property %s: %w", req.PropertyID, err)
	}
	if property == nil {
		return nil, fmt.Errorf("property %s not found", req.PropertyID)
	}

	review := &entity.Review{
		ID:         utils.GenerateRecordID("review"),
		PropertyID: req.PropertyID,
		Source:     entity.ReviewSourceCustomer,
		GuestName:  req.GuestName,
		Rating:     req.Rating,
		Comment:    req.Comment,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Verified:   false,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, err
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID),
		zap.String("property_id", review.PropertyID),
		zap.Int("rating", review.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

// ImportAirbnbReview lets the admin mirror a review from an Airbnb listing.
// Imported reviews are verified unless the request says otherwise.
func (s *reviewService) ImportAirbnbReview(ctx context.Context, req *request.ImportAirbnbReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Import review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	property, err := s.repo.Property.FindByID(ctx, req.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("find property %s: %w", req.PropertyID, err)
	}
	if property == nil {
		return nil, fmt.Errorf("property %s not found", req.PropertyID)
	}

	verified := true
	if req.Verified != nil {
		verified = *req.Verified
	}

	createdAt := time.Now()
	if req.CreatedAt != "" {
		if parsed, err := utils.ParseDate(req.CreatedAt); err == nil {
			createdAt = parsed
		}
	}

	review := &entity.Review{
		ID:          utils.GenerateRecordID("review"),
		PropertyID:  req.PropertyID,
		Source:      entity.ReviewSourceAirbnb,
		GuestName:   req.GuestName,
		GuestAvatar: req.GuestAvatar,
		Rating:      req.Rating,
		Comment:     req.Comment,
		StayDate:    req.StayDate,
		Verified:    verified,
		CreatedAt:   createdAt,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, err
	}

	s.log.Info("Airbnb review imported",
		zap.String("review_id", review.ID),
		zap.String("property_id", review.PropertyID),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}
