package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/data/repository"
	"rental-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckAvailability(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	property := seedProperty(t, repo, "prop-1")
	seedBooking(t, repo, property.ID, "2024-07-01", "2024-07-05", entity.BookingStatusConfirmed)

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{"overlap at the tail", "2024-07-03", "2024-07-06", false},
		{"starts on existing checkout", "2024-07-05", "2024-07-08", true},
		{"ends on existing checkin", "2024-06-28", "2024-07-01", true},
		{"overlap at the head", "2024-06-28", "2024-07-02", false},
		{"fully inside existing", "2024-07-02", "2024-07-04", false},
		{"fully contains existing", "2024-06-28", "2024-07-08", false},
		{"same range", "2024-07-01", "2024-07-05", false},
		{"clear of existing", "2024-07-10", "2024-07-12", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.CheckAvailability(ctx, property.ID, tt.checkIn, tt.checkOut)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckAvailabilityIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	property := seedProperty(t, repo, "prop-1")
	seedBooking(t, repo, property.ID, "2024-07-01", "2024-07-05", entity.BookingStatusConfirmed)

	first, err := svc.CheckAvailability(ctx, property.ID, "2024-07-03", "2024-07-06")
	require.NoError(t, err)

	// Checking does not write anything, so the answer never changes.
	for i := 0; i < 5; i++ {
		again, err := svc.CheckAvailability(ctx, property.ID, "2024-07-03", "2024-07-06")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCheckAvailabilityIgnoresNonBlockingStatuses(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	property := seedProperty(t, repo, "prop-1")
	seedBooking(t, repo, property.ID, "2024-07-01", "2024-07-05", entity.BookingStatusPending)
	seedBooking(t, repo, property.ID, "2024-07-01", "2024-07-05", entity.BookingStatusCancelled)

	available, err := svc.CheckAvailability(ctx, property.ID, "2024-07-02", "2024-07-04")
	require.NoError(t, err)
	assert.True(t, available, "pending and cancelled bookings must not block dates")
}

func TestCheckAvailabilityRejectsBadRange(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	_, err := svc.CheckAvailability(ctx, "prop-1", "2024-07-05", "2024-07-05")
	assert.Error(t, err, "zero-length stay is invalid")

	_, err = svc.CheckAvailability(ctx, "prop-1", "2024-07-05", "2024-07-01")
	assert.Error(t, err, "inverted range is invalid")

	_, err = svc.CheckAvailability(ctx, "prop-1", "not-a-date", "2024-07-05")
	assert.Error(t, err)
}

func TestCreateBooking(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	property := seedProperty(t, repo, "prop-1")

	booking, err := svc.CreateBooking(ctx, &request.CreateBookingRequest{
		PropertyID: property.ID,
		GuestName:  "Ana Guest",
		GuestEmail: "ana@example.com",
		GuestPhone: "+62812222222",
		CheckIn:    "2024-08-01",
		CheckOut:   "2024-08-04",
		Guests:     2,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, float64(3*250), booking.TotalPrice, "3 nights at the property rate")
	assert.Equal(t, property.Name, booking.PropertyName)
	assert.False(t, booking.CreatedAt.IsZero())

	stored, err := repo.Booking.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, booking.ID, stored[0].ID)
}

func TestCreateBookingRejectsUnavailableDates(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	property := seedProperty(t, repo, "prop-1")
	seedBooking(t, repo, property.ID, "2024-07-01", "2024-07-05", entity.BookingStatusConfirmed)

	_, err := svc.CreateBooking(ctx, &request.CreateBookingRequest{
		PropertyID: property.ID,
		GuestName:  "Ana Guest",
		GuestEmail: "ana@example.com",
		GuestPhone: "+62812222222",
		CheckIn:    "2024-07-03",
		CheckOut:   "2024-07-06",
		Guests:     2,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
}

func TestCreateBookingRejectsUnknownProperty(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())

	_, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		PropertyID: "no-such-property",
		GuestName:  "Ana Guest",
		GuestEmail: "ana@example.com",
		GuestPhone: "+62812222222",
		CheckIn:    "2024-08-01",
		CheckOut:   "2024-08-04",
		Guests:     2,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateBookingRejectsTooManyGuests(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())

	property := seedProperty(t, repo, "prop-1")

	_, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		PropertyID: property.ID,
		GuestName:  "Ana Guest",
		GuestEmail: "ana@example.com",
		GuestPhone: "+62812222222",
		CheckIn:    "2024-08-01",
		CheckOut:   "2024-08-04",
		Guests:     property.MaxGuests + 1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid guest count")
}

func TestCreateBookingRejectsRecentDuplicate(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	property := seedProperty(t, repo, "prop-1")

	req := &request.CreateBookingRequest{
		PropertyID: property.ID,
		GuestName:  "Ana Guest",
		GuestEmail: "ana@example.com",
		GuestPhone: "+62812222222",
		CheckIn:    "2024-08-01",
		CheckOut:   "2024-08-04",
		Guests:     2,
	}

	_, err := svc.CreateBooking(ctx, req)
	require.NoError(t, err)

	// The first request is still pending, so the dates are technically
	// free; the duplicate guard is what rejects the resubmission.
	_, err = svc.CreateBooking(ctx, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already")

	stored, err := repo.Booking.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestConcurrentBookingsDoNotDoubleBook(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	property := seedProperty(t, repo, "prop-1")

	const attempts = 8

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateBooking(ctx, &request.CreateBookingRequest{
				PropertyID: property.ID,
				GuestName:  fmt.Sprintf("Guest %d", i),
				GuestEmail: fmt.Sprintf("guest%d@example.com", i),
				GuestPhone: "+62812222222",
				CheckIn:    "2024-08-01",
				CheckOut:   "2024-08-04",
				Guests:     2,
			})
		}(i)
	}
	wg.Wait()

	// Pending requests do not block each other, but every accepted request
	// must actually be persisted: no attempt may be lost to a racing write.
	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}

	stored, err := repo.Booking.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, succeeded)
}

func TestConcurrentBookingsSingleConfirmableSlot(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	property := seedProperty(t, repo, "prop-1")
	seedBooking(t, repo, property.ID, "2024-08-01", "2024-08-04", entity.BookingStatusConfirmed)

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateBooking(ctx, &request.CreateBookingRequest{
				PropertyID: property.ID,
				GuestName:  fmt.Sprintf("Guest %d", i),
				GuestEmail: fmt.Sprintf("guest%d@example.com", i),
				GuestPhone: "+62812222222",
				CheckIn:    "2024-08-02",
				CheckOut:   "2024-08-05",
				Guests:     2,
			})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.Error(t, err, "overlapping a confirmed booking must always be rejected")
	}
}

func TestUpdateBookingStatus(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	property := seedProperty(t, repo, "prop-1")
	booking := seedBooking(t, repo, property.ID, "2024-07-01", "2024-07-05", entity.BookingStatusPending)

	confirmed, err := svc.UpdateBookingStatus(ctx, &request.UpdateBookingStatusRequest{
		BookingID: booking.ID,
		Status:    "confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, confirmed.Status)

	// Confirming makes the dates block.
	available, err := svc.CheckAvailability(ctx, property.ID, "2024-07-02", "2024-07-04")
	require.NoError(t, err)
	assert.False(t, available)

	// Cancelling releases them again.
	_, err = svc.UpdateBookingStatus(ctx, &request.UpdateBookingStatusRequest{
		BookingID: booking.ID,
		Status:    "cancelled",
	})
	require.NoError(t, err)

	available, err = svc.CheckAvailability(ctx, property.ID, "2024-07-02", "2024-07-04")
	require.NoError(t, err)
	assert.True(t, available)

	// A cancelled booking can be reopened.
	reopened, err := svc.UpdateBookingStatus(ctx, &request.UpdateBookingStatusRequest{
		BookingID: booking.ID,
		Status:    "pending",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, reopened.Status)
}

func TestUpdateBookingStatusUnknownID(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())

	_, err := svc.UpdateBookingStatus(context.Background(), &request.UpdateBookingStatusRequest{
		BookingID: "no-such-booking",
		Status:    "confirmed",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetAllBookingsIncludesPropertyName(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	property := seedProperty(t, repo, "prop-1")
	seedBooking(t, repo, property.ID, "2024-07-01", "2024-07-05", entity.BookingStatusConfirmed)
	seedBooking(t, repo, "deleted-property", "2024-07-10", "2024-07-12", entity.BookingStatusPending)

	bookings, err := svc.GetAllBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, property.Name, bookings[0].PropertyName)
	assert.Empty(t, bookings[1].PropertyName, "orphaned bookings keep an empty property name")
}

// brokenPropertyRepo fails every lookup so the display-name path has to cope
// with a repository error, not just a missing record.
type brokenPropertyRepo struct {
	repository.PropertyRepository
}

func (brokenPropertyRepo) FindByID(ctx context.Context, id string) (*entity.Property, error) {
	return nil, fmt.Errorf("find property %s: backend unreachable", id)
}

func TestGetAllBookingsSurvivesPropertyLookupFailure(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	property := seedProperty(t, repo, "prop-1")
	seedBooking(t, repo, property.ID, "2024-07-01", "2024-07-05", entity.BookingStatusConfirmed)

	repo.Property = brokenPropertyRepo{PropertyRepository: repo.Property}
	svc := NewBookingService(repo, zap.NewNop())

	bookings, err := svc.GetAllBookings(ctx)
	require.NoError(t, err, "listing must not fail because a name lookup did")
	require.Len(t, bookings, 1)
	assert.Empty(t, bookings[0].PropertyName)
}
