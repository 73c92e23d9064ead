package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/pkg/docstore"

	"go.uber.org/zap"
)

type BookingRepository interface {
	FindAll(ctx context.Context) ([]entity.Booking, error)
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	FindByProperty(ctx context.Context, propertyID string) ([]entity.Booking, error)
	FindConfirmedByProperty(ctx context.Context, propertyID string) ([]entity.Booking, error)
	Create(ctx context.Context, booking *entity.Booking) error
	UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) (*entity.Booking, error)
}

type bookingRepository struct {
	store *docstore.Store
	log   *zap.Logger
	mu    sync.Mutex
}

func NewBookingRepository(store *docstore.Store, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		store: store,
		log:   log.With(zap.String("repository", "booking")),
	}
}

// FindAll backs the admin bookings page; it always refetches so status
// changes made elsewhere are visible immediately.
func (r *bookingRepository) FindAll(ctx context.Context) ([]entity.Booking, error) {
	bookings, err := docstore.LoadFresh[entity.Booking](ctx, r.store, CollectionBookings)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	bookings, err := docstore.Load[entity.Booking](ctx, r.store, CollectionBookings)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}
	return nil, nil
}

func (r *bookingRepository) FindByProperty(ctx context.Context, propertyID string) ([]entity.Booking, error) {
	bookings, err := docstore.Load[entity.Booking](ctx, r.store, CollectionBookings)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	var matched []entity.Booking
	for _, b := range bookings {
		if b.PropertyID == propertyID {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func (r *bookingRepository) FindConfirmedByProperty(ctx context.Context, propertyID string) ([]entity.Booking, error) {
	bookings, err := r.FindByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	var confirmed []entity.Booking
	for _, b := range bookings {
		if b.Blocks() {
			confirmed = append(confirmed, b)
		}
	}
	return confirmed, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := docstore.LoadForUpdate[entity.Booking](ctx, r.store, CollectionBookings)
	if err != nil {
		return fmt.Errorf("load bookings: %w", err)
	}

	bookings = append(bookings, *booking)
	if err := docstore.Save(ctx, r.store, CollectionBookings, bookings); err != nil {
		r.log.Error("Failed to save bookings",
			zap.Error(err),
			zap.String("booking_id", booking.ID),
			zap.String("property_id", booking.PropertyID),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID, err)
	}
	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := docstore.LoadForUpdate[entity.Booking](ctx, r.store, CollectionBookings)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	for i := range bookings {
		if bookings[i].ID != id {
			continue
		}
		bookings[i].Status = status
		if err := docstore.Save(ctx, r.store, CollectionBookings, bookings); err != nil {
			r.log.Error("Failed to save bookings",
				zap.Error(err),
				zap.String("booking_id", id),
				zap.String("status", string(status)),
			)
			return nil, fmt.Errorf("update booking %s status to %s: %w", id, status, err)
		}
		updated := bookings[i]
		return &updated, nil
	}

	return nil, nil
}

// RecentDuplicateWindow is how long a repeat submission with the same guest,
// property and dates is treated as a duplicate rather than a new request.
const RecentDuplicateWindow = 5 * time.Minute
