package wire

import (
	"rental-booking/internal/adaptor"
	"rental-booking/internal/usecase"
	"rental-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProperty(
	r chi.Router,
	propertyHandler *adaptor.PropertyHandler,
	auth usecase.AuthService,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/properties - List visible properties (?featured=true)
	r.Get("/api/properties", propertyHandler.GetProperties)

	// GET /api/properties/{slug} - Property detail page
	r.Get("/api/properties/{slug}", propertyHandler.GetPropertyBySlug)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/properties", func(r chi.Router) {
		r.Use(middleware.AuthSession(auth, log))

		// GET /api/admin/properties - List all properties incl. hidden
		r.Get("/", propertyHandler.GetAllProperties)

		// POST /api/admin/properties - Create property
		r.Post("/", propertyHandler.CreateProperty)

		// GET /api/admin/properties/{id} - Property by ID
		r.Get("/{id}", propertyHandler.GetPropertyByID)

		// PUT /api/admin/properties/{id} - Update property
		r.Put("/{id}", propertyHandler.UpdateProperty)

		// DELETE /api/admin/properties/{id} - Delete property
		r.Delete("/{id}", propertyHandler.DeleteProperty)

		// PATCH /api/admin/properties/{id}/visibility - Show/hide property
		r.Patch("/{id}/visibility", propertyHandler.SetPropertyVisibility)
	})
}
