package adaptor

import (
	"encoding/json"
	"net/http"

	"rental-booking/internal/dto/request"
	"rental-booking/internal/usecase"
	"rental-booking/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// GetReviews handles GET /api/reviews (public)
// ?propertyId=... narrows to a single property.
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	propertyID := r.URL.Query().Get("propertyId")

	reviews, err := h.service.GetReviews(r.Context(), propertyID)
	if err != nil {
		respondServiceError(w, h.log, err, "get reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// CreateReview handles POST /api/reviews (public)
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.CreateReview(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, "Review submitted", review)
}

// ImportAirbnbReview handles POST /api/admin/reviews/airbnb (admin)
func (h *ReviewHandler) ImportAirbnbReview(w http.ResponseWriter, r *http.Request) {
	var req request.ImportAirbnbReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.ImportAirbnbReview(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "import airbnb review")
		return
	}

	utils.ResponseCreated(w, "Review imported", review)
}
