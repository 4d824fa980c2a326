package recommend

import (
	"github.com/ukydev/sahigaadi/internal/models"
)

// Every sub-scorer is a pure function returning an integer in [0, 100].

// SafeClearanceMm is the broken-road threshold the reason text refers to.
const SafeClearanceMm = 170

// flatFuelScore applies to fuels available everywhere in the city.
const flatFuelScore = 70

// evScoreByZone rates public charging density. Gomti Nagar is the best-served zone.
var evScoreByZone = map[models.Zone]int{
	models.ZoneGomtiNagar:  80,
	models.ZoneAlambagh:    45,
	models.ZoneRajajipuram: 30,
	models.ZoneOutskirts:   35,
}

// cngScoreByZone rates CNG pump density for factory-fitted vehicles.
var cngScoreByZone = map[models.Zone]int{
	models.ZoneGomtiNagar:  85,
	models.ZoneAlambagh:    82,
	models.ZoneRajajipuram: 72,
	models.ZoneOutskirts:   65,
}

var sparePartsScore = map[models.SparePartsAvailability]int{
	models.SparePartsExcellent: 100,
	models.SparePartsGood:      75,
	models.SparePartsFair:      50,
	models.SparePartsPoor:      25,
}

// ScoreGroundClearance scores clearance in millimetres.
func ScoreGroundClearance(mm int) int {
	switch {
	case mm >= 200:
		return 100
	case mm >= 185:
		return 90
	case mm >= SafeClearanceMm:
		return 75
	case mm >= 160:
		return 55
	default:
		return 40
	}
}

// ScoreServiceCenters scores the authorized workshop count in the user's zone.
// Zero local centers still earns 5: cross-zone service remains possible.
func ScoreServiceCenters(v models.Vehicle, zone models.Zone) int {
	count := v.CentersInZone(zone)
	switch {
	case count >= 6:
		return 100
	case count >= 5:
		return 95
	case count >= 4:
		return 88
	case count >= 3:
		return 75
	case count >= 2:
		return 55
	case count >= 1:
		return 35
	default:
		return 5
	}
}

// ScoreFuelInfra scores how easy it is to refuel or recharge in the zone.
func ScoreFuelInfra(v models.Vehicle, zone models.Zone) int {
	switch {
	case v.FuelType == models.FuelElectric:
		return evScoreByZone[zone]
	case v.FuelType == models.FuelCNG && v.Locality.CNGFactoryFitted:
		return cngScoreByZone[zone]
	default:
		return flatFuelScore
	}
}

// ScoreWaitingPeriod scores the delivery wait in weeks.
func ScoreWaitingPeriod(weeks int) int {
	switch {
	case weeks <= 0:
		return 100
	case weeks <= 1:
		return 95
	case weeks <= 2:
		return 88
	case weeks <= 4:
		return 78
	case weeks <= 8:
		return 65
	case weeks <= 12:
		return 48
	default:
		return 25
	}
}

// ScoreSpareParts maps the availability tier to a score. Unknown tiers score as poor.
func ScoreSpareParts(a models.SparePartsAvailability) int {
	if s, ok := sparePartsScore[a]; ok {
		return s
	}
	return sparePartsScore[models.SparePartsPoor]
}
