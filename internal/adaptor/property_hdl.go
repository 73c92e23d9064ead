package adaptor

import (
	"encoding/json"
	"net/http"

	"rental-booking/internal/dto/request"
	"rental-booking/internal/usecase"
	"rental-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PropertyHandler struct {
	service usecase.PropertyService
	log     *zap.Logger
}

func NewPropertyHandler(service usecase.PropertyService, log *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		service: service,
		log:     log.With(zap.String("handler", "property")),
	}
}

// GetProperties handles GET /api/properties (public)
// ?featured=true narrows the listing to featured properties.
func (h *PropertyHandler) GetProperties(w http.ResponseWriter, r *http.Request) {
	featuredOnly := r.URL.Query().Get("featured") == "true"

	properties, err := h.service.GetProperties(r.Context(), featuredOnly)
	if err != nil {
		respondServiceError(w, h.log, err, "get properties")
		return
	}

	utils.ResponseSuccess(w, "success", properties)
}

// GetPropertyBySlug handles GET /api/properties/{slug} (public)
func (h *PropertyHandler) GetPropertyBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	property, err := h.service.GetPropertyBySlug(r.Context(), slug)
	if err != nil {
		respondServiceError(w, h.log, err, "get property")
		return
	}

	utils.ResponseSuccess(w, "success", property)
}

// GetAllProperties handles GET /api/admin/properties (admin)
// Returns hidden properties too.
func (h *PropertyHandler) GetAllProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.service.GetAllProperties(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "get properties")
		return
	}

	utils.ResponseSuccess(w, "success", properties)
}

// GetPropertyByID handles GET /api/admin/properties/{id} (admin)
func (h *PropertyHandler) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	property, err := h.service.GetPropertyByID(r.Context(), pathID(r))
	if err != nil {
		respondServiceError(w, h.log, err, "get property")
		return
	}

	utils.ResponseSuccess(w, "success", property)
}

// CreateProperty handles POST /api/admin/properties (admin)
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	property, err := h.service.CreateProperty(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create property")
		return
	}

	utils.ResponseCreated(w, "Property created", property)
}

// UpdateProperty handles PUT /api/admin/properties/{id} (admin)
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = pathID(r)

	property, err := h.service.UpdateProperty(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update property")
		return
	}

	utils.ResponseSuccess(w, "Property updated", property)
}

// DeleteProperty handles DELETE /api/admin/properties/{id} (admin)
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteProperty(r.Context(), pathID(r)); err != nil {
		respondServiceError(w, h.log, err, "delete property")
		return
	}

	utils.ResponseSuccess(w, "Property deleted", nil)
}

// SetPropertyVisibility handles PATCH /api/admin/properties/{id}/visibility (admin)
func (h *PropertyHandler) SetPropertyVisibility(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Hidden bool `json:"hidden"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	property, err := h.service.SetPropertyHidden(r.Context(), pathID(r), req.Hidden)
	if err != nil {
		respondServiceError(w, h.log, err, "set property visibility")
		return
	}

	utils.ResponseSuccess(w, "Property visibility updated", property)
}
