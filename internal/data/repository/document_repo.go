package repository

import (
	"context"
	"fmt"
	"sync"

	"rental-booking/internal/data/entity"
	"rental-booking/pkg/docstore"

	"go.uber.org/zap"
)

// DocumentRepository handles the singleton documents: contact details,
// static page content, and the admin profile. Absent documents load as nil;
// services supply defaults. The ForUpdate variants never degrade on backend
// failure and must be used before any save that merges into the stored
// document, so an outage cannot make a save overwrite it with defaults.
type DocumentRepository interface {
	GetContactDetails(ctx context.Context) (*entity.ContactDetails, error)
	GetContactDetailsForUpdate(ctx context.Context) (*entity.ContactDetails, error)
	SaveContactDetails(ctx context.Context, details *entity.ContactDetails) error
	GetStaticContent(ctx context.Context) (*entity.StaticContent, error)
	GetStaticContentForUpdate(ctx context.Context) (*entity.StaticContent, error)
	SaveStaticContent(ctx context.Context, content *entity.StaticContent) error
	GetAdminProfileForUpdate(ctx context.Context) (*entity.AdminProfile, error)
	SaveAdminProfile(ctx context.Context, profile *entity.AdminProfile) error
}

type documentRepository struct {
	store *docstore.Store
	log   *zap.Logger
	mu    sync.Mutex
}

func NewDocumentRepository(store *docstore.Store, log *zap.Logger) DocumentRepository {
	return &documentRepository{
		store: store,
		log:   log.With(zap.String("repository", "document")),
	}
}

func (r *documentRepository) GetContactDetails(ctx context.Context) (*entity.ContactDetails, error) {
	return docstore.LoadDoc[entity.ContactDetails](ctx, r.store, CollectionContact)
}

func (r *documentRepository) GetContactDetailsForUpdate(ctx context.Context) (*entity.ContactDetails, error) {
	return docstore.LoadDocForUpdate[entity.ContactDetails](ctx, r.store, CollectionContact)
}

func (r *documentRepository) SaveContactDetails(ctx context.Context, details *entity.ContactDetails) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := docstore.SaveDoc(ctx, r.store, CollectionContact, details); err != nil {
		r.log.Error("Failed to save contact details", zap.Error(err))
		return fmt.Errorf("save contact details: %w", err)
	}
	return nil
}

func (r *documentRepository) GetStaticContent(ctx context.Context) (*entity.StaticContent, error) {
	return docstore.LoadDoc[entity.StaticContent](ctx, r.store, CollectionContent)
}

func (r *documentRepository) GetStaticContentForUpdate(ctx context.Context) (*entity.StaticContent, error) {
	return docstore.LoadDocForUpdate[entity.StaticContent](ctx, r.store, CollectionContent)
}

func (r *documentRepository) SaveStaticContent(ctx context.Context, content *entity.StaticContent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := docstore.SaveDoc(ctx, r.store, CollectionContent, content); err != nil {
		r.log.Error("Failed to save static content", zap.Error(err))
		return fmt.Errorf("save static content: %w", err)
	}
	return nil
}

// GetAdminProfileForUpdate is strict on purpose: a degraded nil would make
// the auth service re-bootstrap the profile over the stored one.
func (r *documentRepository) GetAdminProfileForUpdate(ctx context.Context) (*entity.AdminProfile, error) {
	return docstore.LoadDocForUpdate[entity.AdminProfile](ctx, r.store, CollectionAdmin)
}

func (r *documentRepository) SaveAdminProfile(ctx context.Context, profile *entity.AdminProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := docstore.SaveDoc(ctx, r.store, CollectionAdmin, profile); err != nil {
		r.log.Error("Failed to save admin profile", zap.Error(err))
		return fmt.Errorf("save admin profile: %w", err)
	}
	return nil
}
