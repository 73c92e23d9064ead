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

func TestGetContactDetailsReturnsDefaultsWhenAbsent(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewContentService(repo, zap.NewNop())

	details, err := svc.GetContactDetails(context.Background())
	require.NoError(t, err)
	require.NotNil(t, details)
	assert.NotNil(t, details.PhoneNumbers)
	assert.NotNil(t, details.Emails)
	assert.NotEmpty(t, details.BusinessHours.Days)
}

func TestUpdateContactDetailsMergesSections(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewContentService(repo, zap.NewNop())
	ctx := context.Background()

	phones := []string{"+62811111111"}
	_, err := svc.UpdateContactDetails(ctx, &request.UpdateContactDetailsRequest{
		PhoneNumbers: &phones,
	})
	require.NoError(t, err)

	emails := []string{"hello@example.com"}
	updated, err := svc.UpdateContactDetails(ctx, &request.UpdateContactDetailsRequest{
		Emails: &emails,
	})
	require.NoError(t, err)

	// The earlier phone update survives a later email-only update.
	assert.Equal(t, phones, updated.PhoneNumbers)
	assert.Equal(t, emails, updated.Emails)

	fetched, err := svc.GetContactDetails(ctx)
	require.NoError(t, err)
	assert.Equal(t, phones, fetched.PhoneNumbers)
	assert.Equal(t, emails, fetched.Emails)
}

func TestGetStaticContentReturnsDefaultsWhenAbsent(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewContentService(repo, zap.NewNop())

	content, err := svc.GetStaticContent(context.Background())
	require.NoError(t, err)
	require.NotNil(t, content)
	assert.NotEmpty(t, content.AboutUs.Title)
	assert.NotNil(t, content.WhatWeStandFor.Values)
}

func TestUpdateStaticContentMergesSections(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewContentService(repo, zap.NewNop())
	ctx := context.Background()

	_, err := svc.UpdateStaticContent(ctx, &request.UpdateStaticContentRequest{
		AboutUs: &entity.ContentSection{
			Title:   "About Villa Horizon",
			Content: "Family-run villas on the cliff.",
		},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStaticContent(ctx, &request.UpdateStaticContentRequest{
		WhatWeStandFor: &entity.ValuesSection{
			Title: "Our Values",
			Values: []entity.ContentValue{
				{Title: "Hospitality", Description: "Guests come first."},
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "About Villa Horizon", updated.AboutUs.Title)
	assert.Len(t, updated.WhatWeStandFor.Values, 1)
}

func TestInquiryNotificationUsesStoredContacts(t *testing.T) {
	repo := newTestRepo(t)
	contentSvc := NewContentService(repo, zap.NewNop())
	inquirySvc := NewInquiryService(repo, zap.NewNop())
	ctx := context.Background()

	emails := []string{"owner@example.com"}
	_, err := contentSvc.UpdateContactDetails(ctx, &request.UpdateContactDetailsRequest{
		Emails: &emails,
	})
	require.NoError(t, err)

	// Whether or not a notification target exists, the inquiry must be
	// persisted; notification failures are logged, never surfaced.
	inquiry, err := inquirySvc.CreateInquiry(ctx, &request.CreateInquiryRequest{
		Name:    "Ana Guest",
		Email:   "ana@example.com",
		Phone:   "+62812222222",
		Message: "Hello",
	})
	require.NoError(t, err)

	stored, err := repo.Inquiry.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, inquiry.ID, stored[0].ID)
}
