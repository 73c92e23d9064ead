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

type InquiryRepository interface {
	FindAll(ctx context.Context) ([]entity.ContactInquiry, error)
	FindOpen(ctx context.Context) ([]entity.ContactInquiry, error)
	FindByProperty(ctx context.Context, propertyID string) ([]entity.ContactInquiry, error)
	Create(ctx context.Context, inquiry *entity.ContactInquiry) error
	UpdateStatus(ctx context.Context, id string, status entity.InquiryStatus) (*entity.ContactInquiry, error)
}

type inquiryRepository struct {
	store *docstore.Store
	log   *zap.Logger
	mu    sync.Mutex
}

func NewInquiryRepository(store *docstore.Store, log *zap.Logger) InquiryRepository {
	return &inquiryRepository{
		store: store,
		log:   log.With(zap.String("repository", "inquiry")),
	}
}

func (r *inquiryRepository) FindAll(ctx context.Context) ([]entity.ContactInquiry, error) {
	inquiries, err := docstore.LoadFresh[entity.ContactInquiry](ctx, r.store, CollectionInquiries)
	if err != nil {
		return nil, fmt.Errorf("load inquiries: %w", err)
	}
	return inquiries, nil
}

func (r *inquiryRepository) FindOpen(ctx context.Context) ([]entity.ContactInquiry, error) {
	inquiries, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var open []entity.ContactInquiry
	for _, inq := range inquiries {
		if inq.Status == entity.InquiryStatusOpen {
			open = append(open, inq)
		}
	}
	return open, nil
}

func (r *inquiryRepository) FindByProperty(ctx context.Context, propertyID string) ([]entity.ContactInquiry, error) {
	inquiries, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var matched []entity.ContactInquiry
	for _, inq := range inquiries {
		if inq.PropertyID == propertyID {
			matched = append(matched, inq)
		}
	}
	return matched, nil
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *entity.ContactInquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	inquiries, err := docstore.LoadForUpdate[entity.ContactInquiry](ctx, r.store, CollectionInquiries)
	if err != nil {
		return fmt.Errorf("load inquiries: %w", err)
	}

	inquiries = append(inquiries, *inquiry)
	if err := docstore.Save(ctx, r.store, CollectionInquiries, inquiries); err != nil {
		r.log.Error("Failed to save inquiries", zap.Error(err), zap.String("inquiry_id", inquiry.ID))
		return fmt.Errorf("create inquiry %s: %w", inquiry.ID, err)
	}
	return nil
}

// UpdateStatus closes or reopens an inquiry. ClosedAt is set on close and
// cleared on reopen.
func (r *inquiryRepository) UpdateStatus(ctx context.Context, id string, status entity.InquiryStatus) (*entity.ContactInquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inquiries, err := docstore.LoadForUpdate[entity.ContactInquiry](ctx, r.store, CollectionInquiries)
	if err != nil {
		return nil, fmt.Errorf("load inquiries: %w", err)
	}

	for i := range inquiries {
		if inquiries[i].ID != id {
			continue
		}
		inquiries[i].Status = status
		if status == entity.InquiryStatusClosed {
			now := time.Now()
			inquiries[i].ClosedAt = &now
		} else {
			inquiries[i].ClosedAt = nil
		}

		if err := docstore.Save(ctx, r.store, CollectionInquiries, inquiries); err != nil {
			r.log.Error("Failed to save inquiries",
				zap.Error(err),
				zap.String("inquiry_id", id),
				zap.String("status", string(status)),
			)
			return nil, fmt.Errorf("update inquiry %s status to %s: %w", id, status, err)
		}
		updated := inquiries[i]
		return &updated, nil
	}

	return nil, nil
}
