package wire

import (
	"rental-booking/internal/adaptor"
	"rental-booking/internal/usecase"
	"rental-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireContent(
	r chi.Router,
	contentHandler *adaptor.ContentHandler,
	auth usecase.AuthService,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/contact-details - Business contact info
	r.Get("/api/contact-details", contentHandler.GetContactDetails)

	// GET /api/static-content - About/landing page content
	r.Get("/api/static-content", contentHandler.GetStaticContent)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(auth, log))

		// PUT /api/admin/contact-details - Update business contact info
		r.Put("/api/admin/contact-details", contentHandler.UpdateContactDetails)

		// PUT /api/admin/static-content - Update page content
		r.Put("/api/admin/static-content", contentHandler.UpdateStaticContent)
	})
}
