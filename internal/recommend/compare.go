package recommend

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukydev/sahigaadi/internal/models"
)

type direction int

const (
	noWinner direction = iota
	higherIsBetter
	lowerIsBetter
)

// Compare scores two catalog vehicles in the same zone and lines up their specs.
func (e *Engine) Compare(leftID, rightID string, zone models.Zone) (*models.Comparison, error) {
	left, ok := e.catalog.ByID(leftID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVehicleNotFound, leftID)
	}
	right, ok := e.catalog.ByID(rightID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVehicleNotFound, rightID)
	}
	return CompareVehicles(left, right, zone), nil
}

// CompareVehicles builds the pairwise view for two vehicles.
func CompareVehicles(left, right models.Vehicle, zone models.Zone) *models.Comparison {
	ls := ComputeScore(left, zone)
	rs := ComputeScore(right, zone)

	c := &models.Comparison{
		Zone:        zone,
		Left:        left,
		Right:       right,
		LeftScore:   ls,
		RightScore:  rs,
		TotalWinner: totalWinner(ls.Total, rs.Total),
	}

	l, r := left.Specs, right.Specs
	ll, rl := left.Locality, right.Locality
	c.Rows = []models.ComparisonRow{
		row("Starting price", FormatINR(left.StartingPrice), FormatINR(right.StartingPrice),
			float64(left.StartingPrice), float64(right.StartingPrice), lowerIsBetter),
		row("Monthly cost", FormatINR(left.MonthlyOwnership)+"/mo", FormatINR(right.MonthlyOwnership)+"/mo",
			float64(left.MonthlyOwnership), float64(right.MonthlyOwnership), lowerIsBetter),
		row("Fuel type", strings.ToUpper(string(left.FuelType)), strings.ToUpper(string(right.FuelType)), 0, 0, noWinner),
		row("Mileage", formatMileage(l.Mileage), formatMileage(r.Mileage), l.Mileage, r.Mileage, higherIsBetter),
		row("Ground clearance", fmt.Sprintf("%dmm", ll.GroundClearanceMm), fmt.Sprintf("%dmm", rl.GroundClearanceMm),
			float64(ll.GroundClearanceMm), float64(rl.GroundClearanceMm), higherIsBetter),
		row("Seating", fmt.Sprintf("%d seats", l.SeatingCapacity), fmt.Sprintf("%d seats", r.SeatingCapacity),
			float64(l.SeatingCapacity), float64(r.SeatingCapacity), higherIsBetter),
		row("Boot space", formatBoot(l.BootSpaceLitres), formatBoot(r.BootSpaceLitres),
			float64(l.BootSpaceLitres), float64(r.BootSpaceLitres), higherIsBetter),
		row("Auto transmission", formatAuto(l.HasAutoTransmission), formatAuto(r.HasAutoTransmission), 0, 0, noWinner),
		row("Safety (NCAP)", formatStars(l.SafetyStars), formatStars(r.SafetyStars),
			float64(starsOrZero(l.SafetyStars)), float64(starsOrZero(r.SafetyStars)), higherIsBetter),
		row("Service centres", fmt.Sprintf("%d in city", ll.ServiceCentersTotal), fmt.Sprintf("%d in city", rl.ServiceCentersTotal),
			float64(ll.ServiceCentersTotal), float64(rl.ServiceCentersTotal), higherIsBetter),
		row("Waiting period", formatWait(ll.WaitingPeriodWeeks), formatWait(rl.WaitingPeriodWeeks),
			float64(ll.WaitingPeriodWeeks), float64(rl.WaitingPeriodWeeks), lowerIsBetter),
		row("Spare parts", string(ll.SparePartsAvailability), string(rl.SparePartsAvailability), 0, 0, noWinner),
	}
	return c
}

func row(label, left, right string, lv, rv float64, dir direction) models.ComparisonRow {
	return models.ComparisonRow{Label: label, Left: left, Right: right, Winner: winner(lv, rv, dir)}
}

func winner(lv, rv float64, dir direction) models.Side {
	if lv == rv {
		return models.SideNone
	}
	switch dir {
	case higherIsBetter:
		if lv > rv {
			return models.SideLeft
		}
		return models.SideRight
	case lowerIsBetter:
		if lv < rv {
			return models.SideLeft
		}
		return models.SideRight
	default:
		return models.SideNone
	}
}

// totalWinner highlights both sides on a tie.
func totalWinner(l, r int) models.Side {
	switch {
	case l > r:
		return models.SideLeft
	case r > l:
		return models.SideRight
	default:
		return models.SideBoth
	}
}

func formatMileage(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64) + " km/l"
}

func formatBoot(litres int) string {
	if litres <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%dL", litres)
}

func formatAuto(has bool) string {
	if has {
		return "Available"
	}
	return "Manual only"
}

func formatStars(stars *int) string {
	if stars == nil || *stars == 0 {
		return "Untested"
	}
	return fmt.Sprintf("%d ★", *stars)
}

func starsOrZero(stars *int) int {
	if stars == nil {
		return 0
	}
	return *stars
}

func formatWait(weeks int) string {
	if weeks == 0 {
		return "In stock"
	}
	return fmt.Sprintf("%d weeks", weeks)
}
