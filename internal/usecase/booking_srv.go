package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/data/repository"
	"rental-booking/internal/dto/request"
	"rental-booking/internal/dto/response"
	"rental-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	// Public endpoints
	CheckAvailability(ctx context.Context, propertyID, checkIn, checkOut string) (bool, error)
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	// Admin endpoints
	GetAllBookings(ctx context.Context) ([]response.BookingResponse, error)
	UpdateBookingStatus(ctx context.Context, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger

	// One mutex per property serializes the availability check against the
	// booking write, so two overlapping requests cannot both pass the check.
	propertyLocks sync.Map // propertyID -> *sync.Mutex
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) lockProperty(propertyID string) *sync.Mutex {
	mu, _ := s.propertyLocks.LoadOrStore(propertyID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m
}

// CheckAvailability reports whether the half-open range [checkIn, checkOut)
// is free of confirmed bookings for the property. A checkout day counts as
// free, so back-to-back turnover is allowed. False is a normal outcome, not
// an error; an error means availability could not be determined.
func (s *bookingService) CheckAvailability(ctx context.Context, propertyID, checkIn, checkOut string) (bool, error) {
	start, end, err := parseStayRange(checkIn, checkOut)
	if err != nil {
		return false, err
	}

	confirmed, err := s.repo.Booking.FindConfirmedByProperty(ctx, propertyID)
	if err != nil {
		s.log.Error("Failed to load confirmed bookings",
			zap.Error(err),
			zap.String("property_id", propertyID),
		)
		return false, fmt.Errorf("check availability: %w", err)
	}

	for _, b := range confirmed {
		existingStart, existingEnd, err := parseStayRange(b.CheckIn, b.CheckOut)
		if err != nil {
			// A malformed historical record should not free its dates.
			s.log.Warn("Confirmed booking has unparseable dates, treating as blocking",
				zap.String("booking_id", b.ID),
				zap.Error(err),
			)
			return false, nil
		}
		if start.Before(existingEnd) && end.After(existingStart) {
			return false, nil
		}
	}

	return true, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	start, end, err := parseStayRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	property, err := s.repo.Property.FindByID(ctx, req.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("find property %s: %w", req.PropertyID, err)
	}
	if property == nil {
		return nil, fmt.Errorf("property %s not found", req.PropertyID)
	}

	if req.Guests > property.MaxGuests {
		return nil, fmt.Errorf("invalid guest count: property sleeps at most %d", property.MaxGuests)
	}

	mu := s.lockProperty(req.PropertyID)
	defer mu.Unlock()

	available, err := s.CheckAvailability(ctx, req.PropertyID, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, fmt.Errorf("property not available for the selected dates")
	}

	if err := s.checkDuplicateSubmission(ctx, req); err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &entity.Booking{
		ID:              utils.GenerateRecordID("booking"),
		PropertyID:      req.PropertyID,
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Guests:          req.Guests,
		TotalPrice:      float64(utils.Nights(start, end)) * property.PricePerNight,
		Status:          entity.BookingStatusPending,
		SpecialRequests: req.SpecialRequests,
		CreatedAt:       now,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("property_id", req.PropertyID),
			zap.String("guest_email", req.GuestEmail),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("property_id", booking.PropertyID),
		zap.String("check_in", booking.CheckIn),
		zap.String("check_out", booking.CheckOut),
		zap.Float64("total_price", booking.TotalPrice),
	)

	resp := response.BookingToResponse(booking, property.Name)
	return &resp, nil
}

// checkDuplicateSubmission rejects a repeat of the same guest, property and
// dates within a short window, catching double-clicked submit buttons.
func (s *bookingService) checkDuplicateSubmission(ctx context.Context, req *request.CreateBookingRequest) error {
	bookings, err := s.repo.Booking.FindByProperty(ctx, req.PropertyID)
	if err != nil {
		// The guard is secondary; never block a booking because it failed.
		s.log.Warn("Duplicate submission check failed", zap.Error(err))
		return nil
	}

	cutoff := time.Now().Add(-repository.RecentDuplicateWindow)
	for _, b := range bookings {
		if b.GuestEmail == req.GuestEmail &&
			b.CheckIn == req.CheckIn &&
			b.CheckOut == req.CheckOut &&
			b.CreatedAt.After(cutoff) {
			return fmt.Errorf("a booking request for these dates has already been submitted")
		}
	}
	return nil
}

func (s *bookingService) GetAllBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get bookings", zap.Error(err))
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	responses := make([]response.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = response.BookingToResponse(&bookings[i], s.propertyName(ctx, bookings[i].PropertyID))
	}
	return responses, nil
}

// propertyName resolves a property name for display. A deleted property is
// normal and yields an empty name; a lookup failure is logged so an outage
// is distinguishable from an orphaned reference.
func (s *bookingService) propertyName(ctx context.Context, propertyID string) string {
	property, err := s.repo.Property.FindByID(ctx, propertyID)
	if err != nil {
		s.log.Warn("Failed to resolve property name",
			zap.Error(err),
			zap.String("property_id", propertyID),
		)
		return ""
	}
	if property == nil {
		return ""
	}
	return property.Name
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	updated, err := s.repo.Booking.UpdateStatus(ctx, req.BookingID, entity.BookingStatus(req.Status))
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("booking %s not found", req.BookingID)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", req.BookingID),
		zap.String("status", req.Status),
	)

	resp := response.BookingToResponse(updated, s.propertyName(ctx, updated.PropertyID))
	return &resp, nil
}

func parseStayRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	start, err := utils.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid check-in: %w", err)
	}
	end, err := utils.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid check-out: %w", err)
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date range: check-out must be after check-in")
	}
	return start, end, nil
}
