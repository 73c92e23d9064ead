package wire

import (
	"net/http"

	"rental-booking/internal/adaptor"
	"rental-booking/internal/usecase"
	"rental-booking/pkg/middleware"
	"rental-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUpload(
	r chi.Router,
	uploadHandler *adaptor.UploadHandler,
	auth usecase.AuthService,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(auth, log))

		// POST /api/admin/upload - Upload property image/video
		r.Post("/api/admin/upload", uploadHandler.Upload)
	})

	// ==================== PUBLIC ROUTES ====================
	// Uploaded media is served directly from disk.
	fileServer := http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(config.Upload.Dir+"/uploads")))
	r.Get("/uploads/*", fileServer.ServeHTTP)
}
