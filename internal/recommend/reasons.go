package recommend

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ukydev/sahigaadi/internal/models"
)

const (
	// FuelPricePerLitre is the assumed pump price in INR used for fuel-spend estimates.
	FuelPricePerLitre = 90
	// DrivingDaysPerMonth is the assumed number of driving days in a month.
	DrivingDaysPerMonth = 26
	// ReasonCount is how many "why it fits you" statements each result carries.
	ReasonCount = 3
)

// highResaleBrands hold 60-65% of their value after three years in the local used market.
var highResaleBrands = map[string]bool{
	"Maruti Suzuki": true,
	"Honda":         true,
	"Hero":          true,
	"TVS":           true,
}

// GenerateReasons explains why a vehicle suits the profile: one statement about
// ground clearance, one about local service, one about the user's top priority.
func GenerateReasons(v models.Vehicle, profile models.WizardProfile, score models.ScoreBreakdown) []string {
	reasons := []string{
		clearanceReason(v, score),
		serviceReason(v, profile.Zone),
		priorityReason(v, profile),
	}
	if len(reasons) > ReasonCount {
		reasons = reasons[:ReasonCount]
	}
	return reasons
}

func clearanceReason(v models.Vehicle, score models.ScoreBreakdown) string {
	mm := v.Locality.GroundClearanceMm
	switch {
	case score.GroundClearance >= 90:
		return fmt.Sprintf("%dmm ground clearance confidently handles Lucknow's worst potholes without underbody scraping", mm)
	case score.GroundClearance >= 75:
		return fmt.Sprintf("%dmm ground clearance meets Lucknow's recommended %dmm threshold for pothole-heavy roads", mm, SafeClearanceMm)
	default:
		return fmt.Sprintf("%dmm ground clearance is adequate for main roads; best avoided in Rajajipuram / Chowk inner lanes", mm)
	}
}

// serviceReason talks about spare parts when exactly one local center exists.
func serviceReason(v models.Vehicle, zone models.Zone) string {
	count := v.CentersInZone(zone)
	parts := v.Locality.SparePartsAvailability
	switch {
	case count >= 4:
		return fmt.Sprintf("%d authorized %s service centers in your zone, so maintenance never means a long cross-city drive", count, v.Brand)
	case count >= 2:
		return fmt.Sprintf("%d authorized %s service centers near you; call ahead to book during busy Eid/Diwali periods", count, v.Brand)
	case count == 1:
		return fmt.Sprintf("1 authorized %s center in your zone; spare parts rated %q locally, so routine service is manageable", v.Brand, parts)
	default:
		return fmt.Sprintf("Spare parts availability rated %q in Lucknow; quality multi-brand workshops can service this vehicle", parts)
	}
}

func priorityReason(v models.Vehicle, profile models.WizardProfile) string {
	switch profile.TopPriority() {
	case models.PriorityFuelEconomy:
		if v.Specs.Mileage > 0 {
			return fmt.Sprintf("%s km/l: at %d km/day, your estimated monthly fuel spend is ₹%s",
				strconv.FormatFloat(v.Specs.Mileage, 'f', -1, 64),
				profile.DailyDistance,
				groupIndian(MonthlyFuelCost(v, profile.DailyDistance)))
		}
	case models.PrioritySafety:
		if stars := v.Specs.SafetyStars; stars != nil && *stars > 0 {
			return fmt.Sprintf("%d-star Global NCAP safety rating: independently verified crash protection for your family", *stars)
		}
		return "Standard dual airbags, ABS and rear parking sensors included, a solid safety foundation for urban Lucknow use"
	case models.PriorityComfort:
		auto := ""
		if v.Specs.HasAutoTransmission {
			auto = " with available automatic transmission"
		}
		return fmt.Sprintf("%d-seat %s%s, designed for Lucknow's stop-start traffic", v.Specs.SeatingCapacity, v.Category, auto)
	case models.PriorityBrandReputation:
		return fmt.Sprintf("%s ranks among the top-3 most trusted brands in Uttar Pradesh, with strong resale confidence", v.Brand)
	case models.PriorityResaleValue:
		if highResaleBrands[v.Brand] {
			return fmt.Sprintf("%s vehicles retain 60-65%% value at 3 years in Lucknow's active OLX / Cars24 market", v.Brand)
		}
		return "Strong brand recognition in Lucknow ensures a liquid resale market, easy to sell when upgrading"
	}
	return fmt.Sprintf("Starting at ₹%.2f lakh, excellent value-for-money in its segment", float64(v.StartingPrice)/100000)
}

// MonthlyFuelCost estimates monthly fuel spend in INR, rounded half up.
// The vehicle's mileage must be positive.
func MonthlyFuelCost(v models.Vehicle, dailyKm int) int64 {
	rupees := float64(dailyKm*DrivingDaysPerMonth*FuelPricePerLitre) / v.Specs.Mileage
	return int64(math.Floor(rupees + 0.5))
}
