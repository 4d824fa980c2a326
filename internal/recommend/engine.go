package recommend

import (
	"errors"
	"io"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/sahigaadi/internal/catalog"
	"github.com/ukydev/sahigaadi/internal/models"
)

// TopN is the number of ranked results returned.
const TopN = 3

var ErrVehicleNotFound = errors.New("vehicle not found")

// Engine turns a wizard profile into ranked, explained recommendations.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	catalog catalog.Catalog
	logger  log.FieldLogger
}

// NewEngine creates an engine over a catalog. A nil logger discards output.
func NewEngine(c catalog.Catalog, logger log.FieldLogger) *Engine {
	if logger == nil {
		discard := log.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	return &Engine{catalog: c, logger: logger}
}

// Catalog returns the catalog the engine ranks over.
func (e *Engine) Catalog() catalog.Catalog {
	return e.catalog
}

type scored struct {
	vehicle models.Vehicle
	score   models.ScoreBreakdown
}

// TopRecommendations returns up to TopN results ranked by total score.
// Ties keep catalog order. It never pads and never fails.
func (e *Engine) TopRecommendations(profile models.WizardProfile) []models.RecommendationResult {
	results, _ := e.Recommend(profile)
	return results
}

// Recommend is TopRecommendations plus the filter trace of the run.
func (e *Engine) Recommend(profile models.WizardProfile) ([]models.RecommendationResult, FilterTrace) {
	candidates, trace := Candidates(e.catalog, profile)

	ranked := make([]scored, 0, len(candidates))
	for _, v := range candidates {
		ranked = append(ranked, scored{vehicle: v, score: ComputeScore(v, profile.Zone)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score.Total > ranked[j].score.Total
	})
	if len(ranked) > TopN {
		ranked = ranked[:TopN]
	}

	results := make([]models.RecommendationResult, 0, len(ranked))
	for i, item := range ranked {
		results = append(results, models.RecommendationResult{
			Vehicle:      item.vehicle,
			Rank:         i + 1,
			Score:        item.score,
			WhyItFits:    GenerateReasons(item.vehicle, profile, item.score),
			ThingsToKnow: item.vehicle.Drawbacks(),
		})
	}

	e.logger.WithFields(log.Fields{
		"vehicle_type":     profile.VehicleType,
		"zone":             profile.Zone,
		"type_matched":     trace.TypeMatched,
		"budget_tolerance": trace.BudgetTolerance,
		"budget_dropped":   trace.BudgetDropped,
		"parking_applied":  trace.ParkingApplied,
		"candidates":       trace.Candidates,
		"results":          len(results),
	}).Debug("Ranked recommendations")

	return results, trace
}
