package usecase

import (
	"context"
	"fmt"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/data/repository"
	"rental-booking/internal/dto/request"
	"rental-booking/internal/dto/response"
	"rental-booking/pkg/utils"

	"go.uber.org/zap"
)

type PropertyService interface {
	GetProperties(ctx context.Context, featuredOnly bool) ([]response.PropertyResponse, error)
	GetPropertyBySlug(ctx context.Context, slug string) (*response.PropertyResponse, error)

	// Admin endpoints
	GetAllProperties(ctx context.Context) ([]response.PropertyResponse, error)
	GetPropertyByID(ctx context.Context, id string) (*response.PropertyResponse, error)
	CreateProperty(ctx context.Context, req *request.CreatePropertyRequest) (*response.PropertyResponse, error)
	UpdateProperty(ctx context.Context, req *request.UpdatePropertyRequest) (*response.PropertyResponse, error)
	DeleteProperty(ctx context.Context, id string) error
	SetPropertyHidden(ctx context.Context, id string, hidden bool) (*response.PropertyResponse, error)
}

type propertyService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPropertyService(repo *repository.Repository, log *zap.Logger) PropertyService {
	return &propertyService{
		repo: repo,
		log:  log.With(zap.String("service", "property")),
	}
}

func (s *propertyService) GetProperties(ctx context.Context, featuredOnly bool) ([]response.PropertyResponse, error) {
	var (
		properties []entity.Property
		err        error
	)
	if featuredOnly {
		properties, err = s.repo.Property.FindFeatured(ctx)
	} else {
		properties, err = s.repo.Property.FindAll(ctx, false)
	}
	if err != nil {
		s.log.Error("Failed to get properties", zap.Error(err))
		return nil, fmt.Errorf("get properties: %w", err)
	}
	return response.PropertiesToResponse(properties), nil
}

func (s *propertyService) GetPropertyBySlug(ctx context.Context, slug string) (*response.PropertyResponse, error) {
	property, err := s.repo.Property.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get property by slug: %w", err)
	}
	if property == nil || property.Hidden {
		return nil, fmt.Errorf("property %s not found", slug)
	}
	resp := response.PropertyToResponse(property)
	return &resp, nil
}

func (s *propertyService) GetAllProperties(ctx context.Context) ([]response.PropertyResponse, error) {
	properties, err := s.repo.Property.FindAll(ctx, true)
	if err != nil {
		s.log.Error("Failed to get properties", zap.Error(err))
		return nil, fmt.Errorf("get properties: %w", err)
	}
	return response.PropertiesToResponse(properties), nil
}

func (s *propertyService) GetPropertyByID(ctx context.Context, id string) (*response.PropertyResponse, error) {
	property, err := s.repo.Property.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get property: %w", err)
	}
	if property == nil {
		return nil, fmt.Errorf("property %s not found", id)
	}
	resp := response.PropertyToResponse(property)
	return &resp, nil
}

func (s *propertyService) CreateProperty(ctx context.Context, req *request.CreatePropertyRequest) (*response.PropertyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create property validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if existing, err := s.repo.Property.FindBySlug(ctx, req.Slug); err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	} else if existing != nil {
		return nil, fmt.Errorf("slug %q is already in use", req.Slug)
	}

	now := time.Now()
	property := &entity.Property{
		ID:        utils.GenerateRecordID("prop"),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyPropertyPayload(property, &req.PropertyPayload)

	if err := s.repo.Property.Create(ctx, property); err != nil {
		return nil, err
	}

	s.log.Info("Property created",
		zap.String("property_id", property.ID),
		zap.String("slug", property.Slug),
	)

	resp := response.PropertyToResponse(property)
	return &resp, nil
}

func (s *propertyService) UpdateProperty(ctx context.Context, req *request.UpdatePropertyRequest) (*response.PropertyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update property validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	property, err := s.repo.Property.FindByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("get property: %w", err)
	}
	if property == nil {
		return nil, fmt.Errorf("property %s not found", req.ID)
	}

	if req.Slug != property.Slug {
		if existing, err := s.repo.Property.FindBySlug(ctx, req.Slug); err != nil {
			return nil, fmt.Errorf("check slug: %w", err)
		} else if existing != nil && existing.ID != req.ID {
			return nil, fmt.Errorf("slug %q is already in use", req.Slug)
		}
	}

	applyPropertyPayload(property, &req.PropertyPayload)
	property.UpdatedAt = time.Now()

	if err := s.repo.Property.Update(ctx, property); err != nil {
		return nil, err
	}

	s.log.Info("Property updated", zap.String("property_id", property.ID))

	resp := response.PropertyToResponse(property)
	return &resp, nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, id string) error {
	if err := s.repo.Property.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

// SetPropertyHidden toggles listing visibility without touching the rest of
// the record.
func (s *propertyService) SetPropertyHidden(ctx context.Context, id string, hidden bool) (*response.PropertyResponse, error) {
	property, err := s.repo.Property.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get property: %w", err)
	}
	if property == nil {
		return nil, fmt.Errorf("property %s not found", id)
	}

	property.Hidden = hidden
	property.UpdatedAt = time.Now()
	if err := s.repo.Property.Update(ctx, property); err != nil {
		return nil, err
	}

	s.log.Info("Property visibility changed",
		zap.String("property_id", id),
		zap.Bool("hidden", hidden),
	)

	resp := response.PropertyToResponse(property)
	return &resp, nil
}

func applyPropertyPayload(p *entity.Property, payload *request.PropertyPayload) {
	p.Name = payload.Name
	p.Location = payload.Location
	p.City = payload.City
	p.Address = payload.Address
	p.Description = payload.Description
	p.PricePerNight = payload.PricePerNight
	p.MaxGuests = payload.MaxGuests
	p.Bedrooms = payload.Bedrooms
	p.Bathrooms = payload.Bathrooms
	p.Images = payload.Images
	p.Videos = payload.Videos
	p.Amenities = payload.Amenities
	p.Slug = payload.Slug
	p.Featured = payload.Featured
	p.Hidden = payload.Hidden
	p.GoogleMapsURL = payload.GoogleMapsURL
	p.AirbnbURL = payload.AirbnbURL
	p.HouseRules = payload.HouseRules
	p.CancellationPolicy = payload.CancellationPolicy
}
