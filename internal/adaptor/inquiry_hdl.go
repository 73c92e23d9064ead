package adaptor

import (
	"encoding/json"
	"net/http"

	"rental-booking/internal/dto/request"
	"rental-booking/internal/usecase"
	"rental-booking/pkg/utils"

	"go.uber.org/zap"
)

type InquiryHandler struct {
	service usecase.InquiryService
	log     *zap.Logger
}

func NewInquiryHandler(service usecase.InquiryService, log *zap.Logger) *InquiryHandler {
	return &InquiryHandler{
		service: service,
		log:     log.With(zap.String("handler", "inquiry")),
	}
}

// CreateInquiry handles POST /api/contact (public)
func (h *InquiryHandler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var req request.CreateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	inquiry, err := h.service.CreateInquiry(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create inquiry")
		return
	}

	utils.ResponseCreated(w, "Inquiry submitted", inquiry)
}

// GetInquiries handles GET /api/admin/inquiries (admin)
// ?status=open narrows to open inquiries.
func (h *InquiryHandler) GetInquiries(w http.ResponseWriter, r *http.Request) {
	openOnly := r.URL.Query().Get("status") == "open"

	inquiries, err := h.service.GetInquiries(r.Context(), openOnly)
	if err != nil {
		respondServiceError(w, h.log, err, "get inquiries")
		return
	}

	utils.ResponseSuccess(w, "success", inquiries)
}

// UpdateInquiryStatus handles PATCH /api/admin/inquiries/{id} (admin)
func (h *InquiryHandler) UpdateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateInquiryStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	req.InquiryID = pathID(r)

	inquiry, err := h.service.UpdateInquiryStatus(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update inquiry status")
		return
	}

	utils.ResponseSuccess(w, "Inquiry status updated", inquiry)
}
