package wire

import (
	"rental-booking/internal/adaptor"
	"rental-booking/internal/usecase"
	"rental-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	auth usecase.AuthService,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/bookings - Submit booking request
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// POST /api/bookings/check-availability - Check a date range
	r.Post("/api/bookings/check-availability", bookingHandler.CheckAvailability)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(auth, log))

		// GET /api/admin/bookings - List all bookings
		r.Get("/", bookingHandler.GetBookings)

		// PATCH /api/admin/bookings/{id} - Confirm / cancel / reopen
		r.Patch("/{id}", bookingHandler.UpdateBookingStatus)
	})
}
