package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/sahigaadi/internal/db"
	"github.com/ukydev/sahigaadi/internal/middleware"
	"github.com/ukydev/sahigaadi/internal/models"
	"github.com/ukydev/sahigaadi/internal/notify"
)

const publishTimeout = 5 * time.Second

// ConsultationResponse confirms a booking.
type ConsultationResponse struct {
	ID              string                    `json:"id"`
	Status          models.ConsultationStatus `json:"status"`
	Message         string                    `json:"message"`
	PriceINR        int                       `json:"price_inr"`
	DurationMinutes int                       `json:"duration_minutes"`
}

// ConsultationHandler books paid consultant calls
type ConsultationHandler struct {
	collection db.ConsultationCollection
	publisher  notify.Publisher
	now        func() time.Time
}

// NewConsultationHandler creates a new consultation handler
func NewConsultationHandler(collection db.ConsultationCollection, publisher notify.Publisher) *ConsultationHandler {
	if publisher == nil {
		publisher = notify.NopPublisher{}
	}
	return &ConsultationHandler{
		collection: collection,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Create stores a booking and notifies the sales desk
func (h *ConsultationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ConsultationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Name == "" || req.Phone == "" {
		writeError(w, http.StatusBadRequest, "missing_fields", "Name and phone are required")
		return
	}
	if req.PreferredTime == "" {
		req.PreferredTime = models.TimeMorning
	}
	if !models.IsValidPreferredTime(req.PreferredTime) {
		writeError(w, http.StatusBadRequest, "invalid_preferred_time", "Preferred time must be morning, afternoon or evening")
		return
	}
	if req.Type == "" {
		req.Type = models.ConsultationGeneral
	}
	if !models.IsValidConsultationType(req.Type) {
		writeError(w, http.StatusBadRequest, "invalid_type", "Unknown consultation type "+string(req.Type))
		return
	}

	sessionID, _ := middleware.SessionFromContext(r.Context())
	consultation := models.Consultation{
		ID:            uuid.NewString(),
		SessionID:     sessionID,
		Name:          req.Name,
		Phone:         req.Phone,
		PreferredTime: req.PreferredTime,
		Notes:         strings.TrimSpace(req.Notes),
		Type:          req.Type,
		Status:        models.StatusPending,
		CreatedAt:     h.now().UTC(),
	}

	if err := h.collection.InsertConsultation(r.Context(), consultation); err != nil {
		log.WithError(err).Error("Failed to store consultation")
		writeError(w, http.StatusInternalServerError, "internal", "Failed to book consultation")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), publishTimeout)
	defer cancel()
	if err := h.publisher.PublishConsultation(ctx, consultation); err != nil {
		log.WithError(err).WithField("consultation_id", consultation.ID).Warn("Failed to publish consultation")
	}

	log.WithFields(log.Fields{
		"consultation_id": consultation.ID,
		"type":            consultation.Type,
		"preferred_time":  consultation.PreferredTime,
	}).Info("Consultation booked")

	writeJSON(w, http.StatusCreated, ConsultationResponse{
		ID:              consultation.ID,
		Status:          consultation.Status,
		Message:         "Booking received! Our Lucknow consultant will call you at " + consultation.Phone + " within 2 working hours to confirm your slot.",
		PriceINR:        models.ConsultationPriceINR,
		DurationMinutes: models.ConsultationMinutes,
	})
}

// List returns booked consultations newest first, up to ?limit= (default 100)
func (h *ConsultationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := int64(100)
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid_limit", "limit must be a positive integer")
			return
		}
		limit = n
	}

	consultations, err := h.collection.FindConsultations(r.Context(), limit)
	if err != nil {
		log.WithError(err).Error("Failed to list consultations")
		writeError(w, http.StatusInternalServerError, "internal", "Failed to list consultations")
		return
	}
	writeJSON(w, http.StatusOK, consultations)
}
