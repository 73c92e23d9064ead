package wire

import (
	"rental-booking/internal/adaptor"
	"rental-booking/internal/usecase"
	"rental-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireInquiry(
	r chi.Router,
	inquiryHandler *adaptor.InquiryHandler,
	auth usecase.AuthService,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/contact - Submit contact inquiry
	r.Post("/api/contact", inquiryHandler.CreateInquiry)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/inquiries", func(r chi.Router) {
		r.Use(middleware.AuthSession(auth, log))

		// GET /api/admin/inquiries - List inquiries (?status=open)
		r.Get("/", inquiryHandler.GetInquiries)

		// PATCH /api/admin/inquiries/{id} - Close / reopen inquiry
		r.Patch("/{id}", inquiryHandler.UpdateInquiryStatus)
	})
}
