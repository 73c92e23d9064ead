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

type InquiryService interface {
	CreateInquiry(ctx context.Context, req *request.CreateInquiryRequest) (*response.InquiryResponse, error)

	// Admin endpoints
	GetInquiries(ctx context.Context, openOnly bool) ([]response.InquiryResponse, error)
	UpdateInquiryStatus(ctx context.Context, req *request.UpdateInquiryStatusRequest) (*response.InquiryResponse, error)
}

type inquiryService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewInquiryService(repo *repository.Repository, log *zap.Logger) InquiryService {
	return &inquiryService{
		repo: repo,
		log:  log.With(zap.String("service", "inquiry")),
	}
}

func (s *inquiryService) CreateInquiry(ctx context.Context, req *request.CreateInquiryRequest) (*response.InquiryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create inquiry validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if req.PropertyID != "" {
		property, err := s.repo.Property.FindByID(ctx, req.PropertyID)
		if err != nil {
			return nil, fmt.Errorf("find property %s: %w", req.PropertyID, err)
		}
		if property == nil {
			return nil, fmt.Errorf("property %s not found", req.PropertyID)
		}
	}

	inquiryType := entity.InquiryType(req.Type)
	if inquiryType == "" {
		inquiryType = entity.InquiryTypeGeneral
	}

	inquiry := &entity.ContactInquiry{
		ID:         utils.GenerateRecordID("inquiry"),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		PropertyID: req.PropertyID,
		Message:    req.Message,
		Type:       inquiryType,
		Status:     entity.InquiryStatusOpen,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Inquiry.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	s.log.Info("Inquiry created",
		zap.String("inquiry_id", inquiry.ID),
		zap.String("inquiry_type", string(inquiry.Type)),
	)

	// The notification is best effort. The inquiry is already persisted;
	// a notification failure must not fail the request.
	s.notifyNewInquiry(ctx, inquiry)

	resp := response.InquiryToResponse(inquiry)
	return &resp, nil
}

// notifyNewInquiry logs the inquiry against the configured business contact
// addresses so operators can follow up. Delivery to an external channel can
// hang off this point later.
func (s *inquiryService) notifyNewInquiry(ctx context.Context, inquiry *entity.ContactInquiry) {
	details, err := s.repo.Document.GetContactDetails(ctx)
	if err != nil || details == nil || len(details.Emails) == 0 {
		s.log.Warn("No business contact configured for inquiry notification",
			zap.String("inquiry_id", inquiry.ID),
		)
		return
	}

	s.log.Info("New inquiry notification",
		zap.String("inquiry_id", inquiry.ID),
		zap.Strings("notify", details.Emails),
		zap.String("from", inquiry.Email),
	)
}

func (s *inquiryService) GetInquiries(ctx context.Context, openOnly bool) ([]response.InquiryResponse, error) {
	var (
		inquiries []entity.ContactInquiry
		err       error
	)
	if openOnly {
		inquiries, err = s.repo.Inquiry.FindOpen(ctx)
	} else {
		inquiries, err = s.repo.Inquiry.FindAll(ctx)
	}
	if err != nil {
		s.log.Error("Failed to get inquiries", zap.Error(err))
		return nil, fmt.Errorf("get inquiries: %w", err)
	}
	return response.InquiriesToResponse(inquiries), nil
}

func (s *inquiryService) UpdateInquiryStatus(ctx context.Context, req *request.UpdateInquiryStatusRequest) (*response.InquiryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	updated, err := s.repo.Inquiry.UpdateStatus(ctx, req.InquiryID, entity.InquiryStatus(req.Status))
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("inquiry %s not found", req.InquiryID)
	}

	s.log.Info("Inquiry status updated",
		zap.String("inquiry_id", req.InquiryID),
		zap.String("status", req.Status),
	)

	resp := response.InquiryToResponse(updated)
	return &resp, nil
}
