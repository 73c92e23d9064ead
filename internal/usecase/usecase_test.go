package usecase

import (
	"context"
	"testing"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/data/repository"
	"rental-booking/pkg/docstore"
	"rental-booking/pkg/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) *repository.Repository {
	t.Helper()

	backend, err := docstore.NewFileBackend(t.TempDir())
	require.NoError(t, err)

	store := docstore.NewWithBackend(backend, zap.NewNop())
	return repository.NewRepository(store, zap.NewNop())
}

func seedProperty(t *testing.T, repo *repository.Repository, id string) *entity.Property {
	t.Helper()

	now := time.Now()
	property := &entity.Property{
		ID:            id,
		Name:          "Villa Horizon",
		Location:      "Cliffside",
		City:          "Uluwatu",
		Description:   "Three bedroom villa with ocean view",
		PricePerNight: 250,
		MaxGuests:     6,
		Bedrooms:      3,
		Bathrooms:     2,
		Slug:          "villa-horizon-" + id,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, repo.Property.Create(context.Background(), property))
	return property
}

func seedBooking(t *testing.T, repo *repository.Repository, propertyID, checkIn, checkOut string, status entity.BookingStatus) *entity.Booking {
	t.Helper()

	booking := &entity.Booking{
		ID:         utils.GenerateRecordID("booking"),
		PropertyID: propertyID,
		GuestName:  "Existing Guest",
		GuestEmail: "existing@example.com",
		GuestPhone: "+62811111111",
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     2,
		TotalPrice: 500,
		Status:     status,
		CreatedAt:  time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.Booking.Create(context.Background(), booking))
	return booking
}
