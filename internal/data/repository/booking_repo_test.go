package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/pkg/docstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// outageBackend wraps another backend and fails reads while down is set.
type outageBackend struct {
	inner docstore.Backend
	down  bool
}

func (o *outageBackend) Name() string { return o.inner.Name() }

func (o *outageBackend) Read(ctx context.Context, collection string) ([]byte, error) {
	if o.down {
		return nil, errors.New("backend unreachable")
	}
	return o.inner.Read(ctx, collection)
}

func (o *outageBackend) Write(ctx context.Context, collection string, data []byte) error {
	return o.inner.Write(ctx, collection, data)
}

func newOutageRepo(t *testing.T) (*Repository, *outageBackend) {
	t.Helper()

	inner, err := docstore.NewFileBackend(t.TempDir())
	require.NoError(t, err)

	backend := &outageBackend{inner: inner}
	store := docstore.NewWithBackend(backend, zap.NewNop())
	return NewRepository(store, zap.NewNop()), backend
}

func testBooking(id string) *entity.Booking {
	return &entity.Booking{
		ID:         id,
		PropertyID: "prop-1",
		GuestName:  "Guest",
		GuestEmail: id + "@example.com",
		GuestPhone: "+62811111111",
		CheckIn:    "2024-07-01",
		CheckOut:   "2024-07-05",
		Guests:     2,
		Status:     entity.BookingStatusConfirmed,
		CreatedAt:  time.Now(),
	}
}

// A transient read failure during a write cycle must fail the write, never
// rewrite the collection from a degraded empty load.
func TestCreateDuringReadOutagePreservesCollection(t *testing.T) {
	repo, backend := newOutageRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Booking.Create(ctx, testBooking("b1")))
	require.NoError(t, repo.Booking.Create(ctx, testBooking("b2")))

	backend.down = true
	err := repo.Booking.Create(ctx, testBooking("b3"))
	require.Error(t, err, "create must surface the outage instead of writing blind")
	backend.down = false

	bookings, err := repo.Booking.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 2, "existing records must survive the outage")

	// Once the backend recovers the same create succeeds.
	require.NoError(t, repo.Booking.Create(ctx, testBooking("b3")))

	bookings, err = repo.Booking.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 3)
}

func TestUpdateStatusDuringReadOutageFails(t *testing.T) {
	repo, backend := newOutageRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Booking.Create(ctx, testBooking("b1")))

	backend.down = true
	_, err := repo.Booking.UpdateStatus(ctx, "b1", entity.BookingStatusCancelled)
	require.Error(t, err)
	backend.down = false

	stored, err := repo.Booking.FindByID(ctx, "b1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.BookingStatusConfirmed, stored.Status, "status must be untouched")
}

func TestPropertyMutationsDuringReadOutageFail(t *testing.T) {
	repo, backend := newOutageRepo(t)
	ctx := context.Background()

	now := time.Now()
	property := &entity.Property{
		ID:            "prop-1",
		Name:          "Villa Horizon",
		Location:      "Cliffside",
		City:          "Uluwatu",
		Description:   "Three bedroom villa",
		PricePerNight: 250,
		MaxGuests:     6,
		Slug:          "villa-horizon",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, repo.Property.Create(ctx, property))

	backend.down = true
	require.Error(t, repo.Property.Create(ctx, &entity.Property{ID: "prop-2", Slug: "other"}))
	require.Error(t, repo.Property.Delete(ctx, "prop-1"))
	backend.down = false

	properties, err := repo.Property.FindAll(ctx, true)
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "prop-1", properties[0].ID)
}
