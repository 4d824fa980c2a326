package handlers

import (
	"errors"
	"net/http"

	"github.com/ukydev/sahigaadi/internal/middleware"
	"github.com/ukydev/sahigaadi/internal/models"
	"github.com/ukydev/sahigaadi/internal/recommend"
	"github.com/ukydev/sahigaadi/internal/session"
)

// CompareHandler lines up two vehicles side by side
type CompareHandler struct {
	engine *recommend.Engine
	store  session.Store
}

// NewCompareHandler creates a new compare handler
func NewCompareHandler(engine *recommend.Engine, store session.Store) *CompareHandler {
	return &CompareHandler{engine: engine, store: store}
}

// Compare scores both vehicles in the zone from ?zone=, else the session
// profile's zone, else Gomti Nagar.
func (h *CompareHandler) Compare(w http.ResponseWriter, r *http.Request) {
	zone, ok := h.zone(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_zone", "Unknown zone "+r.URL.Query().Get("zone"))
		return
	}

	comparison, err := h.engine.Compare(r.PathValue("vehicle1"), r.PathValue("vehicle2"), zone)
	if err != nil {
		if errors.Is(err, recommend.ErrVehicleNotFound) {
			writeError(w, http.StatusNotFound, "vehicle_not_found", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal", "Failed to compare vehicles")
		return
	}

	writeJSON(w, http.StatusOK, comparison)
}

func (h *CompareHandler) zone(r *http.Request) (models.Zone, bool) {
	if q := r.URL.Query().Get("zone"); q != "" {
		z := models.Zone(q)
		return z, models.IsValidZone(z)
	}
	if sessionID, ok := middleware.SessionFromContext(r.Context()); ok {
		if stored, err := h.store.Load(r.Context(), sessionID); err == nil && stored.Profile.Zone != "" {
			return stored.Profile.Zone, true
		}
	}
	return models.ZoneGomtiNagar, true
}
