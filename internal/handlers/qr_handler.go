package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Blake-Bird/SGA2029/internal/services"
)

// QRHandler exposes the event check-in QR flow.
type QRHandler struct {
	service   *services.QRService
	validator *services.ValidationHelper
}

func NewQRHandler(service *services.QRService) *QRHandler {
	return &QRHandler{
		service:   service,
		validator: services.NewValidationHelper(),
	}
}

// GenerateEventQR issues a check-in code for an event
// @Summary Generate event check-in QR
// @Description Issue a single-use check-in code for an event and render it as a QR PNG
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event id"
// @Success 200 {object} object{code=string,qrImage=string}
// @Failure 401 {object} services.ErrorResponse
// @Failure 503 {object} services.ErrorResponse
// @Router /events/{eventId}/qr [post]
func (h *QRHandler) GenerateEventQR(w http.ResponseWriter, r *http.Request) {
	memberID, ok := r.Context().Value("memberID").(string)
	if !ok || memberID == "" {
		services.SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return
	}

	eventID := chi.URLParam(r, "eventId")

	code, qrImage, err := h.service.GenerateCheckinCode(r.Context(), eventID, memberID)
	if err == services.ErrCheckinUnavailable {
		services.SendErrorResponse(w, err.Error(), http.StatusServiceUnavailable, nil)
		return
	}
	if err != nil {
		services.SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"code":    code,
		"qrImage": qrImage,
	})
}

// ProcessCheckin consumes a scanned check-in code
// @Summary Process a check-in scan
// @Description Validate a scanned check-in code and consume it
// @Tags events
// @Accept json
// @Produce json
// @Param request body object{code=string} true "Scanned code"
// @Success 200 {object} object{eventId=string,href=string}
// @Failure 400 {object} services.ErrorResponse
// @Router /qr/checkin [post]
func (h *QRHandler) ProcessCheckin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code" validate:"required"`
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		services.SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	result, err := h.service.ConsumeCheckinCode(r.Context(), req.Code)
	if err != nil {
		services.SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"data":    result,
	})
}
