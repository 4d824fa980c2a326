package recommend

import (
	"fmt"
	"math"
	"strconv"
)

// Score label thresholds shared by every caller that classifies a total.
const (
	ExcellentThreshold = 85
	GoodThreshold      = 70
	ModerateThreshold  = 55
)

// ScoreLabel names a total score.
func ScoreLabel(total int) string {
	switch {
	case total >= ExcellentThreshold:
		return "Excellent"
	case total >= GoodThreshold:
		return "Good"
	case total >= ModerateThreshold:
		return "Moderate"
	default:
		return "Low"
	}
}

// ScoreBand maps a total score to its colour band.
func ScoreBand(total int) string {
	switch {
	case total >= ExcellentThreshold:
		return "emerald"
	case total >= GoodThreshold:
		return "blue"
	case total >= ModerateThreshold:
		return "amber"
	default:
		return "red"
	}
}

// BarBand maps a single sub-score to the colour of its breakdown bar.
func BarBand(subScore int) string {
	switch {
	case subScore >= 85:
		return "emerald"
	case subScore >= 65:
		return "blue"
	case subScore >= 45:
		return "amber"
	default:
		return "red"
	}
}

// RankLabel is the heading shown above a ranked result.
func RankLabel(rank int) string {
	switch rank {
	case 1:
		return "Best match"
	case 2:
		return "Runner-up"
	default:
		return "Also consider"
	}
}

// FormatINR renders an amount in lakh (₹6.49L), thousands (₹14K) or rupees.
func FormatINR(amount int64) string {
	switch {
	case amount >= 100000:
		return fmt.Sprintf("₹%.2fL", float64(amount)/100000)
	case amount >= 1000:
		return fmt.Sprintf("₹%dK", int64(math.Floor(float64(amount)/1000+0.5)))
	default:
		return "₹" + strconv.FormatInt(amount, 10)
	}
}

// groupIndian formats n with Indian digit grouping: 1,23,45,678.
func groupIndian(n int64) string {
	if n < 0 {
		return "-" + groupIndian(-n)
	}
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	out := make([]byte, 0, len(s)+len(s)/2)
	for i := 0; i < len(head); i++ {
		if i > 0 && (len(head)-i)%2 == 0 {
			out = append(out, ',')
		}
		out = append(out, head[i])
	}
	return string(out) + "," + tail
}
