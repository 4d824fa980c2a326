package handlers

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/sahigaadi/internal/middleware"
	"github.com/ukydev/sahigaadi/internal/models"
	"github.com/ukydev/sahigaadi/internal/recommend"
	"github.com/ukydev/sahigaadi/internal/session"
)

// ResultView is a ranked result plus its display labels.
type ResultView struct {
	models.RecommendationResult
	ScoreLabel string `json:"score_label"`
	ScoreBand  string `json:"score_band"`
	RankLabel  string `json:"rank_label"`
}

// RecommendationMeta describes how the candidate set was narrowed.
type RecommendationMeta struct {
	Candidates      int     `json:"candidates"`
	BudgetTolerance float64 `json:"budget_tolerance"`
	BudgetRelaxed   bool    `json:"budget_relaxed"`
	ParkingApplied  bool    `json:"parking_applied"`
}

// ConsultationOffer advertises the paid consultant call under the results.
type ConsultationOffer struct {
	PriceINR        int `json:"price_inr"`
	DurationMinutes int `json:"duration_minutes"`
}

// RecommendationResponse is the body of both recommendation endpoints.
type RecommendationResponse struct {
	Results      []ResultView       `json:"results"`
	Meta         RecommendationMeta `json:"meta"`
	Consultation ConsultationOffer  `json:"consultation"`
}

// RecommendationHandler ranks catalog vehicles for a profile
type RecommendationHandler struct {
	engine *recommend.Engine
	store  session.Store
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(engine *recommend.Engine, store session.Store) *RecommendationHandler {
	return &RecommendationHandler{engine: engine, store: store}
}

// ForSession ranks vehicles for the profile saved in the current session
func (h *RecommendationHandler) ForSession(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, h.respond(stored.Profile))
}

// ForProfile ranks vehicles for a profile sent in the request body
func (h *RecommendationHandler) ForProfile(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, h.respond(profile))
}

func (h *RecommendationHandler) respond(profile models.WizardProfile) RecommendationResponse {
	results, trace := h.engine.Recommend(profile)
	return BuildRecommendationResponse(results, trace)
}

// BuildRecommendationResponse decorates engine output for clients.
func BuildRecommendationResponse(results []models.RecommendationResult, trace recommend.FilterTrace) RecommendationResponse {
	views := make([]ResultView, 0, len(results))
	for _, res := range results {
		views = append(views, ResultView{
			RecommendationResult: res,
			ScoreLabel:           recommend.ScoreLabel(res.Score.Total),
			ScoreBand:            recommend.ScoreBand(res.Score.Total),
			RankLabel:            recommend.RankLabel(res.Rank),
		})
	}
	return RecommendationResponse{
		Results: views,
		Meta: RecommendationMeta{
			Candidates:      trace.Candidates,
			BudgetTolerance: trace.BudgetTolerance,
			BudgetRelaxed:   trace.BudgetTolerance != 1.0,
			ParkingApplied:  trace.ParkingApplied,
		},
		Consultation: ConsultationOffer{
			PriceINR:        models.ConsultationPriceINR,
			DurationMinutes: models.ConsultationMinutes,
		},
	}
}
