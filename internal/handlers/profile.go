package handlers

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/sahigaadi/internal/middleware"
	"github.com/ukydev/sahigaadi/internal/models"
	"github.com/ukydev/sahigaadi/internal/session"
)

// ProfileHandler stores the wizard answers of the current session
type ProfileHandler struct {
	store session.Store
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(store session.Store) *ProfileHandler {
	return &ProfileHandler{store: store}
}

// Get returns the session's saved profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := middleware.SessionFromContext(r.Context())

	stored, err := h.store.Load(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNoProfile) {
			writeError(w, http.StatusNotFound, "no_profile", "Complete the wizard first")
			return
		}
		log.WithError(err).Error("Failed to load profile")
		writeError(w, http.StatusInternalServerError, "internal", "Failed to load profile")
		return
	}

	writeJSON(w, http.StatusOK, stored)
}

// Put validates and saves the session's profile
func (h *ProfileHandler) Put(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "no_session", "Session required")
		return
	}

	var profile models.WizardProfile
	if err := decodeJSON(w, r, &profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	profile = profile.WithDefaults()
	if err := profile.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_profile", err.Error())
		return
	}

	if err := h.store.Save(r.Context(), sessionID, profile); err != nil {
		log.WithError(err).WithField("session_id", sessionID).Error("Failed to save profile")
		writeError(w, http.StatusInternalServerError, "internal", "Failed to save profile")
		return
	}

	stored, err := h.store.Load(r.Context(), sessionID)
	if err != nil {
		log.WithError(err).Error("Failed to reload profile")
		writeError(w, http.StatusInternalServerError, "internal", "Failed to save profile")
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

// Delete clears the session's profile so the wizard starts over
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := middleware.SessionFromContext(r.Context())
	if err := h.store.Delete(r.Context(), sessionID); err != nil {
		log.WithError(err).Error("Failed to delete profile")
		writeError(w, http.StatusInternalServerError, "internal", "Failed to delete profile")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
