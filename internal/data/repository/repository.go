package repository

import (
	"rental-booking/pkg/docstore"

	"go.uber.org/zap"
)

// Collection names as persisted by the document store.
const (
	CollectionProperties = "properties"
	CollectionBookings   = "bookings"
	CollectionReviews    = "reviews"
	CollectionInquiries  = "contact-inquiries"
	CollectionContact    = "contact"
	CollectionContent    = "static-content"
	CollectionAdmin      = "admin"
)

type Repository struct {
	Property PropertyRepository
	Booking  BookingRepository
	Review   ReviewRepository
	Inquiry  InquiryRepository
	Document DocumentRepository
}

func NewRepository(store *docstore.Store, log *zap.Logger) *Repository {
	return &Repository{
		Property: NewPropertyRepository(store, log),
		Booking:  NewBookingRepository(store, log),
		Review:   NewReviewRepository(store, log),
		Inquiry:  NewInquiryRepository(store, log),
		Document: NewDocumentRepository(store, log),
	}
}
