package recommend

import (
	"fmt"

	"github.com/ukydev/sahigaadi/internal/models"
)

// Weights are the sub-score weights in whole percent. They must sum to 100.
type Weights struct {
	GroundClearance int
	ServiceCenters  int
	FuelInfra       int
	WaitingPeriod   int
	SpareParts      int
}

// DefaultWeights is the locality suitability weighting.
var DefaultWeights = Weights{
	GroundClearance: 30,
	ServiceCenters:  25,
	FuelInfra:       20,
	WaitingPeriod:   10,
	SpareParts:      15,
}

// Sum returns the total of all weights in percent.
func (w Weights) Sum() int {
	return w.GroundClearance + w.ServiceCenters + w.FuelInfra + w.WaitingPeriod + w.SpareParts
}

// Fraction returns the weights as fractions of one, in sub-score order.
func (w Weights) Fraction() [5]float64 {
	return [5]float64{
		float64(w.GroundClearance) / 100,
		float64(w.ServiceCenters) / 100,
		float64(w.FuelInfra) / 100,
		float64(w.WaitingPeriod) / 100,
		float64(w.SpareParts) / 100,
	}
}

// Validate checks that weights sum to 100 and none are negative.
func (w Weights) Validate() error {
	for _, v := range []int{w.GroundClearance, w.ServiceCenters, w.FuelInfra, w.WaitingPeriod, w.SpareParts} {
		if v < 0 {
			return fmt.Errorf("negative weight: %d", v)
		}
	}
	if w.Sum() != 100 {
		return fmt.Errorf("weights sum to %d%%, must sum to 100%%", w.Sum())
	}
	return nil
}

// ComputeScore scores a vehicle for a zone. Same inputs always give the same breakdown.
func ComputeScore(v models.Vehicle, zone models.Zone) models.ScoreBreakdown {
	b := models.ScoreBreakdown{
		GroundClearance: ScoreGroundClearance(v.Locality.GroundClearanceMm),
		ServiceCenters:  ScoreServiceCenters(v, zone),
		FuelInfra:       ScoreFuelInfra(v, zone),
		WaitingPeriod:   ScoreWaitingPeriod(v.Locality.WaitingPeriodWeeks),
		SpareParts:      ScoreSpareParts(v.Locality.SparePartsAvailability),
	}
	b.Total = weightedTotal(b, DefaultWeights)
	return b
}

// weightedTotal rounds half up. Integer percent arithmetic keeps x.5 exact.
func weightedTotal(b models.ScoreBreakdown, w Weights) int {
	sum := b.GroundClearance*w.GroundClearance +
		b.ServiceCenters*w.ServiceCenters +
		b.FuelInfra*w.FuelInfra +
		b.WaitingPeriod*w.WaitingPeriod +
		b.SpareParts*w.SpareParts
	return (sum + 50) / 100
}
