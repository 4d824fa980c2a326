package handlers

import (
	"net/http"

	"github.com/ukydev/sahigaadi/internal/catalog"
	"github.com/ukydev/sahigaadi/internal/models"
)

// VehicleHandler serves the read-only catalog
type VehicleHandler struct {
	catalog catalog.Catalog
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(c catalog.Catalog) *VehicleHandler {
	return &VehicleHandler{catalog: c}
}

// List returns every vehicle, or one category with ?category=
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	category := models.VehicleCategory(r.URL.Query().Get("category"))
	if category == "" {
		writeJSON(w, http.StatusOK, h.catalog.All())
		return
	}
	if !models.IsValidCategory(category) {
		writeError(w, http.StatusBadRequest, "invalid_category", "Unknown category "+string(category))
		return
	}
	writeJSON(w, http.StatusOK, h.catalog.ByCategory(category))
}

// Get returns one vehicle by id
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	v, ok := h.catalog.ByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "vehicle_not_found", "Vehicle not found: "+id)
		return
	}
	writeJSON(w, http.StatusOK, v)
}
