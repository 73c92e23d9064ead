package wire

import (
	"rental-booking/internal/adaptor"
	"rental-booking/internal/usecase"
	"rental-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	auth usecase.AuthService,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/reviews - List reviews (?propertyId=...)
	r.Get("/api/reviews", reviewHandler.GetReviews)

	// POST /api/reviews - Submit guest review
	r.Post("/api/reviews", reviewHandler.CreateReview)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(auth, log))

		// POST /api/admin/reviews/airbnb - Import review from Airbnb listing
		r.Post("/api/admin/reviews/airbnb", reviewHandler.ImportAirbnbReview)
	})
}
