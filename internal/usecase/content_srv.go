package usecase

import (
	"context"
	"fmt"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/data/repository"
	"rental-booking/internal/dto/request"
	"rental-booking/pkg/utils"

	"go.uber.org/zap"
)

type ContentService interface {
	GetContactDetails(ctx context.Context) (*entity.ContactDetails, error)
	GetStaticContent(ctx context.Context) (*entity.StaticContent, error)

	// Admin endpoints
	UpdateContactDetails(ctx context.Context, req *request.UpdateContactDetailsRequest) (*entity.ContactDetails, error)
	UpdateStaticContent(ctx context.Context, req *request.UpdateStaticContentRequest) (*entity.StaticContent, error)
}

type contentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewContentService(repo *repository.Repository, log *zap.Logger) ContentService {
	return &contentService{
		repo: repo,
		log:  log.With(zap.String("service", "content")),
	}
}

// GetContactDetails never fails the page: when the document is absent a
// default skeleton is returned so the frontend has a stable shape.
func (s *contentService) GetContactDetails(ctx context.Context) (*entity.ContactDetails, error) {
	details, err := s.repo.Document.GetContactDetails(ctx)
	if err != nil {
		s.log.Error("Failed to get contact details", zap.Error(err))
		return nil, fmt.Errorf("get contact details: %w", err)
	}
	if details == nil {
		return defaultContactDetails(), nil
	}
	return details, nil
}

func (s *contentService) GetStaticContent(ctx context.Context) (*entity.StaticContent, error) {
	content, err := s.repo.Document.GetStaticContent(ctx)
	if err != nil {
		s.log.Error("Failed to get static content", zap.Error(err))
		return nil, fmt.Errorf("get static content: %w", err)
	}
	if content == nil {
		return defaultStaticContent(), nil
	}
	return content, nil
}

// UpdateContactDetails replaces only the sections present in the request and
// keeps everything else as stored. The load is strict so a backend failure
// cannot make the merge start from defaults and drop the stored sections.
func (s *contentService) UpdateContactDetails(ctx context.Context, req *request.UpdateContactDetailsRequest) (*entity.ContactDetails, error) {
	details, err := s.repo.Document.GetContactDetailsForUpdate(ctx)
	if err != nil {
		s.log.Error("Failed to load contact details for update", zap.Error(err))
		return nil, fmt.Errorf("load contact details: %w", err)
	}
	if details == nil {
		details = defaultContactDetails()
	}

	if req.PhoneNumbers != nil {
		details.PhoneNumbers = *req.PhoneNumbers
	}
	if req.Emails != nil {
		details.Emails = *req.Emails
	}
	if req.Address != nil {
		details.Address = *req.Address
	}
	if req.BusinessHours != nil {
		details.BusinessHours = *req.BusinessHours
	}
	if req.SocialMedia != nil {
		details.SocialMedia = req.SocialMedia
	}
	details.UpdatedAt = time.Now()

	if err := s.repo.Document.SaveContactDetails(ctx, details); err != nil {
		return nil, err
	}

	s.log.Info("Contact details updated")
	return details, nil
}

func (s *contentService) UpdateStaticContent(ctx context.Context, req *request.UpdateStaticContentRequest) (*entity.StaticContent, error) {
	content, err := s.repo.Document.GetStaticContentForUpdate(ctx)
	if err != nil {
		s.log.Error("Failed to load static content for update", zap.Error(err))
		return nil, fmt.Errorf("load static content: %w", err)
	}
	if content == nil {
		content = defaultStaticContent()
	}

	if req.AboutUs != nil {
		content.AboutUs = *req.AboutUs
	}
	if req.OurStory != nil {
		content.OurStory = *req.OurStory
	}
	if req.WhatWeStandFor != nil {
		content.WhatWeStandFor = *req.WhatWeStandFor
	}
	content.UpdatedAt = time.Now()

	if err := s.repo.Document.SaveStaticContent(ctx, content); err != nil {
		return nil, err
	}

	s.log.Info("Static content updated")
	return content, nil
}

func defaultContactDetails() *entity.ContactDetails {
	return &entity.ContactDetails{
		ID:           utils.GenerateRecordID("contact"),
		PhoneNumbers: []string{},
		Emails:       []string{},
		BusinessHours: entity.BusinessHours{
			Days:  "Monday - Sunday",
			Hours: "9:00 AM - 6:00 PM",
		},
		UpdatedAt: time.Now(),
	}
}

func defaultStaticContent() *entity.StaticContent {
	return &entity.StaticContent{
		ID:       utils.GenerateRecordID("content"),
		AboutUs:  entity.ContentSection{Title: "About Us"},
		OurStory: entity.ContentSection{Title: "Our Story"},
		WhatWeStandFor: entity.ValuesSection{
			Title:  "What We Stand For",
			Values: []entity.ContentValue{},
		},
		UpdatedAt: time.Now(),
	}
}
