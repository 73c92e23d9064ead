package repository

import (
	"context"
	"fmt"
	"sync"

	"rental-booking/internal/data/entity"
	"rental-booking/pkg/docstore"

	"go.uber.org/zap"
)

type PropertyRepository interface {
	FindAll(ctx context.Context, includeHidden bool) ([]entity.Property, error)
	FindFeatured(ctx context.Context) ([]entity.Property, error)
	FindByID(ctx context.Context, id string) (*entity.Property, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Property, error)
	Create(ctx context.Context, property *entity.Property) error
	Update(ctx context.Context, property *entity.Property) error
	Delete(ctx context.Context, id string) error
}

type propertyRepository struct {
	store *docstore.Store
	log   *zap.Logger

	// Serializes whole-collection read-modify-write cycles so concurrent
	// admin actions cannot silently drop each other's updates.
	mu sync.Mutex
}

func NewPropertyRepository(store *docstore.Store, log *zap.Logger) PropertyRepository {
	return &propertyRepository{
		store: store,
		log:   log.With(zap.String("repository", "property")),
	}
}

// FindAll backs the public and admin listing pages. Listings always bypass
// the cache so a just-edited property shows up immediately.
func (r *propertyRepository) FindAll(ctx context.Context, includeHidden bool) ([]entity.Property, error) {
	properties, err := docstore.LoadFresh[entity.Property](ctx, r.store, CollectionProperties)
	if err != nil {
		return nil, fmt.Errorf("load properties: %w", err)
	}
	if includeHidden {
		return properties, nil
	}

	visible := make([]entity.Property, 0, len(properties))
	for _, p := range properties {
		if !p.Hidden {
			visible = append(visible, p)
		}
	}
	return visible, nil
}

func (r *propertyRepository) FindFeatured(ctx context.Context) ([]entity.Property, error) {
	properties, err := docstore.LoadFresh[entity.Property](ctx, r.store, CollectionProperties)
	if err != nil {
		return nil, fmt.Errorf("load properties: %w", err)
	}

	featured := make([]entity.Property, 0, len(properties))
	for _, p := range properties {
		if p.Featured && !p.Hidden {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

func (r *propertyRepository) FindByID(ctx context.Context, id string) (*entity.Property, error) {
	properties, err := docstore.Load[entity.Property](ctx, r.store, CollectionProperties)
	if err != nil {
		return nil, fmt.Errorf("load properties: %w", err)
	}
	for i := range properties {
		if properties[i].ID == id {
			return &properties[i], nil
		}
	}
	return nil, nil
}

func (r *propertyRepository) FindBySlug(ctx context.Context, slug string) (*entity.Property, error) {
	properties, err := docstore.Load[entity.Property](ctx, r.store, CollectionProperties)
	if err != nil {
		return nil, fmt.Errorf("load properties: %w", err)
	}
	for i := range properties {
		if properties[i].Slug == slug {
			return &properties[i], nil
		}
	}
	return nil, nil
}

func (r *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	properties, err := docstore.LoadForUpdate[entity.Property](ctx, r.store, CollectionProperties)
	if err != nil {
		return fmt.Errorf("load properties: %w", err)
	}

	properties = append(properties, *property)
	if err := docstore.Save(ctx, r.store, CollectionProperties, properties); err != nil {
		r.log.Error("Failed to save properties", zap.Error(err), zap.String("property_id", property.ID))
		return fmt.Errorf("create property %s: %w", property.ID, err)
	}
	return nil
}

func (r *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	properties, err := docstore.LoadForUpdate[entity.Property](ctx, r.store, CollectionProperties)
	if err != nil {
		return fmt.Errorf("load properties: %w", err)
	}

	for i := range properties {
		if properties[i].ID == property.ID {
			properties[i] = *property
			if err := docstore.Save(ctx, r.store, CollectionProperties, properties); err != nil {
				r.log.Error("Failed to save properties", zap.Error(err), zap.String("property_id", property.ID))
				return fmt.Errorf("update property %s: %w", property.ID, err)
			}
			return nil
		}
	}
	return fmt.Errorf("property %s not found", property.ID)
}

func (r *propertyRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	properties, err := docstore.LoadForUpdate[entity.Property](ctx, r.store, CollectionProperties)
	if err != nil {
		return fmt.Errorf("load properties: %w", err)
	}

	for i := range properties {
		if properties[i].ID == id {
			properties = append(properties[:i], properties[i+1:]...)
			if err := docstore.Save(ctx, r.store, CollectionProperties, properties); err != nil {
				r.log.Error("Failed to save properties", zap.Error(err), zap.String("property_id", id))
				return fmt.Errorf("delete property %s: %w", id, err)
			}
			r.log.Info("Property deleted", zap.String("property_id", id))
			return nil
		}
	}
	return fmt.Errorf("property %s not found", id)
}
