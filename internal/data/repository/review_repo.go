package repository

import (
	"context"
	"fmt"
	"sync"

	"rental-booking/internal/data/entity"
	"rental-booking/pkg/docstore"

	"go.uber.org/zap"
)

type ReviewRepository interface {
	FindAll(ctx context.Context) ([]entity.Review, error)
	FindByProperty(ctx context.Context, propertyID string) ([]entity.Review, error)
	Create(ctx context.Context, review *entity.Review) error
}

type reviewRepository struct {
	store *docstore.Store
	log   *zap.Logger
	mu    sync.Mutex
}

func NewReviewRepository(store *docstore.Store, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		store: store,
		log:   log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]entity.Review, error) {
	reviews, err := docstore.Load[entity.Review](ctx, r.store, CollectionReviews)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) FindByProperty(ctx context.Context, propertyID string) ([]entity.Review, error) {
	reviews, err := docstore.Load[entity.Review](ctx, r.store, CollectionReviews)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	var matched []entity.Review
	for _, rev := range reviews {
		if rev.PropertyID == propertyID {
			matched = append(matched, rev)
		}
	}
	return matched, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reviews, err := docstore.LoadForUpdate[entity.Review](ctx, r.store, CollectionReviews)
	if err != nil {
		return fmt.Errorf("load reviews: %w", err)
	}

	reviews = append(reviews, *review)
	if err := docstore.Save(ctx, r.store, CollectionReviews, reviews); err != nil {
		r.log.Error("Failed to save reviews", zap.Error(err), zap.String("review_id", review.ID))
		return fmt.Errorf("create review %s: %w", review.ID, err)
	}
	return nil
}
