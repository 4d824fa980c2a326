package recommend

import (
	"github.com/ukydev/sahigaadi/internal/catalog"
	"github.com/ukydev/sahigaadi/internal/models"
)

// MinCandidates is the result count every relaxation stage tries to preserve.
const MinCandidates = 3

// MaxBasementWidthMm is the widest car that fits a tight basement bay.
const MaxBasementWidthMm = 1800

// BudgetTolerances are tried in order until enough vehicles survive.
var BudgetTolerances = []float64{1.0, 1.3, 2.0}

// FilterTrace records what each pipeline stage did.
type FilterTrace struct {
	TypeMatched     int     `json:"type_matched"`
	BudgetTolerance float64 `json:"budget_tolerance"` // 0 when the budget filter was dropped
	BudgetDropped   bool    `json:"budget_dropped"`
	ParkingApplied  bool    `json:"parking_applied"`
	Candidates      int     `json:"candidates"`
}

// FilterByType keeps vehicles of the requested category, or all of them for "all".
func FilterByType(c catalog.Catalog, profile models.WizardProfile) []models.Vehicle {
	if profile.VehicleType == models.VehicleTypeAll {
		return c.All()
	}
	return c.ByCategory(models.VehicleCategory(profile.VehicleType))
}

// FilterByBudget keeps vehicles whose relevant cost is within budget × tolerance.
func FilterByBudget(vehicles []models.Vehicle, profile models.WizardProfile, tolerance float64) []models.Vehicle {
	limit := float64(profile.BudgetAmount) * tolerance
	out := make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		cost := v.StartingPrice
		if profile.BudgetType == models.BudgetMonthly {
			cost = v.MonthlyOwnership
		}
		if float64(cost) <= limit {
			out = append(out, v)
		}
	}
	return out
}

// RelaxBudget widens the budget tolerance step by step and finally drops the
// budget filter, so at least MinCandidates survive whenever the input has that many.
// It returns the surviving vehicles and the tolerance used (0 when dropped).
func RelaxBudget(vehicles []models.Vehicle, profile models.WizardProfile) ([]models.Vehicle, float64) {
	for _, tol := range BudgetTolerances {
		if filtered := FilterByBudget(vehicles, profile, tol); len(filtered) >= MinCandidates {
			return filtered, tol
		}
	}
	return vehicles, 0
}

// FilterByParking drops cars wider than MaxBasementWidthMm for basement parking.
// Two-wheelers always pass. Other parking situations pass everything.
func FilterByParking(vehicles []models.Vehicle, profile models.WizardProfile) []models.Vehicle {
	if profile.Parking != models.ParkingBasement {
		return vehicles
	}
	out := make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.Category != models.CategoryCar || v.Specs.WidthMm <= MaxBasementWidthMm {
			out = append(out, v)
		}
	}
	return out
}

// Candidates runs type, budget and parking stages in order. Budget and parking
// are soft: a stage that would leave fewer than MinCandidates falls back silently.
func Candidates(c catalog.Catalog, profile models.WizardProfile) ([]models.Vehicle, FilterTrace) {
	var trace FilterTrace

	typed := FilterByType(c, profile)
	trace.TypeMatched = len(typed)

	budgeted, tol := RelaxBudget(typed, profile)
	trace.BudgetTolerance = tol
	trace.BudgetDropped = tol == 0

	final := budgeted
	if parked := FilterByParking(budgeted, profile); len(parked) >= MinCandidates {
		final = parked
		trace.ParkingApplied = profile.Parking == models.ParkingBasement
	}

	trace.Candidates = len(final)
	return final, trace
}
