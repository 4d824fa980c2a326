package models

// ScoreBreakdown is the locality suitability score of one vehicle in one zone.
// It is always produced whole by the score aggregator and never stored.
type ScoreBreakdown struct {
	GroundClearance int `json:"ground_clearance" yaml:"ground_clearance"`
	ServiceCenters  int `json:"service_centers" yaml:"service_centers"`
	FuelInfra       int `json:"fuel_infra" yaml:"fuel_infra"`
	WaitingPeriod   int `json:"waiting_period" yaml:"waiting_period"`
	SpareParts      int `json:"spare_parts" yaml:"spare_parts"`
	Total           int `json:"total" yaml:"total"`
}

// RecommendationResult is one ranked vehicle with its explanation.
type RecommendationResult struct {
	Vehicle      Vehicle        `json:"vehicle" yaml:"vehicle"`
	Rank         int            `json:"rank" yaml:"rank"` // 1-based
	Score        ScoreBreakdown `json:"score" yaml:"score"`
	WhyItFits    []string       `json:"why_it_fits_you" yaml:"why_it_fits_you"`
	ThingsToKnow []string       `json:"things_to_know" yaml:"things_to_know"`
}

// Side names one half of a pairwise comparison.
type Side string

const (
	SideNone  Side = ""
	SideLeft  Side = "left"
	SideRight Side = "right"
	SideBoth  Side = "both"
)

// ComparisonRow is one line of the side-by-side comparison table.
type ComparisonRow struct {
	Label  string `json:"label" yaml:"label"`
	Left   string `json:"left" yaml:"left"`
	Right  string `json:"right" yaml:"right"`
	Winner Side   `json:"winner,omitempty" yaml:"winner,omitempty"`
}

// Comparison is the pairwise view of two catalog vehicles scored in the same zone.
type Comparison struct {
	Zone        Zone            `json:"zone" yaml:"zone"`
	Left        Vehicle         `json:"left" yaml:"left"`
	Right       Vehicle         `json:"right" yaml:"right"`
	LeftScore   ScoreBreakdown  `json:"left_score" yaml:"left_score"`
	RightScore  ScoreBreakdown  `json:"right_score" yaml:"right_score"`
	TotalWinner Side            `json:"total_winner" yaml:"total_winner"`
	Rows        []ComparisonRow `json:"rows" yaml:"rows"`
}
