package handlers

import (
	"net/http"
	"net/netip"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/sahigaadi/internal/auth"
	"github.com/ukydev/sahigaadi/internal/db"
	"github.com/ukydev/sahigaadi/internal/middleware"
	"github.com/ukydev/sahigaadi/internal/notify"
	"github.com/ukydev/sahigaadi/internal/recommend"
	"github.com/ukydev/sahigaadi/internal/session"
)

// Dependencies are the collaborators the HTTP API is built from.
type Dependencies struct {
	Engine            *recommend.Engine
	Profiles          session.Store
	Consultations     db.ConsultationCollection
	Publisher         notify.Publisher
	AuthService       *auth.Service
	AdminUser         string
	AdminPasswordHash string
	RateLimitRPS      float64
	RateLimitBurst    int
	SecureCookies     bool
	TrustedProxies    []netip.Prefix
	Logger            log.FieldLogger
}

// NewRouter wires every endpoint behind the session and access-log middleware.
func NewRouter(deps Dependencies) http.Handler {
	profiles := NewProfileHandler(deps.Profiles)
	recommendations := NewRecommendationHandler(deps.Engine, deps.Profiles)
	vehicles := NewVehicleHandler(deps.Engine.Catalog())
	compare := NewCompareHandler(deps.Engine, deps.Profiles)
	consultations := NewConsultationHandler(deps.Consultations, deps.Publisher)

	sessions := middleware.NewSessionMiddleware(deps.AuthService, deps.SecureCookies)
	admin := middleware.NewAdminMiddleware(deps.AuthService, deps.AdminUser, deps.AdminPasswordHash)
	limiter := middleware.NewRateLimitMiddleware(deps.TrustedProxies...)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", Health)

	mux.HandleFunc("GET /api/profile", profiles.Get)
	mux.HandleFunc("PUT /api/profile", profiles.Put)
	mux.HandleFunc("DELETE /api/profile", profiles.Delete)

	mux.HandleFunc("GET /api/recommendations", recommendations.ForSession)
	mux.HandleFunc("POST /api/recommendations", recommendations.ForProfile)

	mux.HandleFunc("GET /api/vehicles", vehicles.List)
	mux.HandleFunc("GET /api/vehicles/{id}", vehicles.Get)
	mux.HandleFunc("GET /api/compare/{vehicle1}/{vehicle2}", compare.Compare)

	mux.Handle("POST /api/consultations",
		limiter.RateLimit(deps.RateLimitRPS, deps.RateLimitBurst)(http.HandlerFunc(consultations.Create)))
	mux.Handle("GET /api/consultations", admin.RequireAdmin(http.HandlerFunc(consultations.List)))

	logger := deps.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	return middleware.RequestLogger(logger)(sessions.Attach(mux))
}

// Health reports liveness
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
