package usecase

import (
	"context"
	"testing"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateReviewStartsUnverified(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewReviewService(repo, zap.NewNop())
	ctx := context.Background()

	property := seedProperty(t, repo, "prop-1")

	review, err := svc.CreateReview(ctx, &request.CreateReviewRequest{
		PropertyID: property.ID,
		GuestName:  "Ana Guest",
		GuestEmail: "ana@example.com",
		Rating:     5,
		Comment:    "Wonderful stay, spotless villa.",
		CheckIn:    "2024-07-01",
		CheckOut:   "2024-07-05",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ReviewSourceCustomer, review.Source)
	assert.False(t, review.Verified, "guest submissions start unverified")
	assert.Equal(t, 5, review.Rating)
}

func TestCreateReviewRejectsUnknownProperty(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewReviewService(repo, zap.NewNop())

	_, err := svc.CreateReview(context.Background(), &request.CreateReviewRequest{
		PropertyID: "no-such-property",
		GuestName:  "Ana Guest",
		GuestEmail: "ana@example.com",
		Rating:     5,
		Comment:    "Great",
		CheckIn:    "2024-07-01",
		CheckOut:   "2024-07-05",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateReviewRejectsRatingOutOfRange(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewReviewService(repo, zap.NewNop())

	property := seedProperty(t, repo, "prop-1")

	_, err := svc.CreateReview(context.Background(), &request.CreateReviewRequest{
		PropertyID: property.ID,
		GuestName:  "Ana Guest",
		GuestEmail: "ana@example.com",
		Rating:     6,
		Comment:    "Great",
		CheckIn:    "2024-07-01",
		CheckOut:   "2024-07-05",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestImportAirbnbReview(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewReviewService(repo, zap.NewNop())
	ctx := context.Background()

	property := seedProperty(t, repo, "prop-1")

	imported, err := svc.ImportAirbnbReview(ctx, &request.ImportAirbnbReviewRequest{
		PropertyID: property.ID,
		GuestName:  "Marco",
		Rating:     5,
		Comment:    "Amazing host and view.",
		StayDate:   "July 2024",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ReviewSourceAirbnb, imported.Source)
	assert.True(t, imported.Verified, "imports default to verified")

	unverified := false
	notVerified, err := svc.ImportAirbnbReview(ctx, &request.ImportAirbnbReviewRequest{
		PropertyID: property.ID,
		GuestName:  "Lena",
		Rating:     4,
		Comment:    "Nice but far from town.",
		Verified:   &unverified,
	})
	require.NoError(t, err)
	assert.False(t, notVerified.Verified)
}

func TestGetReviewsFiltersByProperty(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewReviewService(repo, zap.NewNop())
	ctx := context.Background()

	first := seedProperty(t, repo, "prop-1")
	second := seedProperty(t, repo, "prop-2")

	for _, propertyID := range []string{first.ID, first.ID, second.ID} {
		_, err := svc.ImportAirbnbReview(ctx, &request.ImportAirbnbReviewRequest{
			PropertyID: propertyID,
			GuestName:  "Guest",
			Rating:     5,
			Comment:    "Great stay.",
		})
		require.NoError(t, err)
	}

	all, err := svc.GetReviews(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	scoped, err := svc.GetReviews(ctx, first.ID)
	require.NoError(t, err)
	assert.Len(t, scoped, 2)
}
