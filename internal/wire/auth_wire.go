package wire

import (
	"rental-booking/internal/adaptor"
	"rental-booking/internal/usecase"
	"rental-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	auth usecase.AuthService,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/admin/login - Admin login
	r.Post("/api/admin/login", authHandler.Login)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(auth, log))

		// POST /api/admin/logout - Invalidate session
		r.Post("/api/admin/logout", authHandler.Logout)

		// GET /api/admin/profile - View admin profile
		r.Get("/api/admin/profile", authHandler.GetProfile)

		// PUT /api/admin/profile - Update admin profile / password
		r.Put("/api/admin/profile", authHandler.UpdateProfile)
	})
}
