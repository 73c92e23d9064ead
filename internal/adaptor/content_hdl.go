package adaptor

import (
	"encoding/json"
	"net/http"

	"rental-booking/internal/dto/request"
	"rental-booking/internal/usecase"
	"rental-booking/pkg/utils"

	"go.uber.org/zap"
)

type ContentHandler struct {
	service usecase.ContentService
	log     *zap.Logger
}

func NewContentHandler(service usecase.ContentService, log *zap.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		log:     log.With(zap.String("handler", "content")),
	}
}

// GetContactDetails handles GET /api/contact-details (public)
func (h *ContentHandler) GetContactDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.GetContactDetails(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "get contact details")
		return
	}

	utils.ResponseSuccess(w, "success", details)
}

// GetStaticContent handles GET /api/static-content (public)
func (h *ContentHandler) GetStaticContent(w http.ResponseWriter, r *http.Request) {
	content, err := h.service.GetStaticContent(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "get static content")
		return
	}

	utils.ResponseSuccess(w, "success", content)
}

// UpdateContactDetails handles PUT /api/admin/contact-details (admin)
func (h *ContentHandler) UpdateContactDetails(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateContactDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	details, err := h.service.UpdateContactDetails(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update contact details")
		return
	}

	utils.ResponseSuccess(w, "Contact details updated", details)
}

// UpdateStaticContent handles PUT /api/admin/static-content (admin)
func (h *ContentHandler) UpdateStaticContent(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateStaticContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	content, err := h.service.UpdateStaticContent(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update static content")
		return
	}

	utils.ResponseSuccess(w, "Static content updated", content)
}
