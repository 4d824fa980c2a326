package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/ukydev/sahigaadi/internal/models"
	"github.com/ukydev/sahigaadi/internal/recommend"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by every Display function.
const (
	FormatHuman = "human"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

var zoneNames = map[models.Zone]string{
	models.ZoneGomtiNagar:  "Gomti Nagar",
	models.ZoneAlambagh:    "Alambagh",
	models.ZoneRajajipuram: "Rajajipuram",
	models.ZoneOutskirts:   "Outskirts",
}

// ZoneName is the display name of a Lucknow zone.
func ZoneName(z models.Zone) string {
	if name, ok := zoneNames[z]; ok {
		return name
	}
	return string(z)
}

// ValidFormat reports whether format is one of the supported output formats.
func ValidFormat(format string) bool {
	switch format {
	case FormatHuman, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// DisplayRecommendations writes ranked results for a zone
func DisplayRecommendations(w io.Writer, results []models.RecommendationResult, zone models.Zone, format string) error {
	switch format {
	case FormatJSON:
		return displayJSON(w, results)
	case FormatYAML:
		return displayYAML(w, results)
	default:
		displayRecommendationsHuman(w, results, zone)
	}
	return nil
}

// DisplayComparison writes a side-by-side comparison
func DisplayComparison(w io.Writer, c *models.Comparison, format string) error {
	switch format {
	case FormatJSON:
		return displayJSON(w, c)
	case FormatYAML:
		return displayYAML(w, c)
	default:
		displayComparisonHuman(w, c)
	}
	return nil
}

// DisplayVehicles writes a catalog listing
func DisplayVehicles(w io.Writer, vehicles []models.Vehicle, format string) error {
	switch format {
	case FormatJSON:
		return displayJSON(w, vehicles)
	case FormatYAML:
		return displayYAML(w, vehicles)
	default:
		displayVehiclesHuman(w, vehicles)
	}
	return nil
}

func displayJSON(w io.Writer, v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

func displayYAML(w io.Writer, v interface{}) error {
	output, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, string(output))
	return err
}

func displayRecommendationsHuman(w io.Writer, results []models.RecommendationResult, zone models.Zone) {
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	fmt.Fprintln(w)
	cyan.Fprintf(w, "SahiGaadi picks for %s\n", ZoneName(zone))
	fmt.Fprintln(w, strings.Repeat("─", 60))

	if len(results) == 0 {
		fmt.Fprintln(w, "No vehicles matched.")
		return
	}

	for _, r := range results {
		total := r.Score.Total
		fmt.Fprintf(w, "\n#%d %s: %s (%s)\n", r.Rank, recommend.RankLabel(r.Rank), r.Vehicle.Name, r.Vehicle.Brand)
		fmt.Fprintf(w, "   %s · %s/mo · ", recommend.FormatINR(r.Vehicle.StartingPrice), recommend.FormatINR(r.Vehicle.MonthlyOwnership))
		BandColor(recommend.ScoreBand(total)).Fprintf(w, "%d/100 %s\n", total, recommend.ScoreLabel(total))
		fmt.Fprintf(w, "   %s\n", breakdownLine(r.Score))

		fmt.Fprintln(w, "   Why it fits you:")
		for _, reason := range r.WhyItFits {
			green.Fprintf(w, "     ✓ %s\n", reason)
		}
		fmt.Fprintln(w, "   Things to know:")
		for _, con := range r.ThingsToKnow {
			yellow.Fprintf(w, "     ! %s\n", con)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintf(w, "Talk it through with a Lucknow consultant: ₹%d for %d minutes\n",
		models.ConsultationPriceINR, models.ConsultationMinutes)
	fmt.Fprintln(w, color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

func breakdownLine(s models.ScoreBreakdown) string {
	parts := []struct {
		label string
		score int
	}{
		{"Clearance", s.GroundClearance},
		{"Service", s.ServiceCenters},
		{"Fuel", s.FuelInfra},
		{"Waiting", s.WaitingPeriod},
		{"Parts", s.SpareParts},
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, p.label+" "+BandColor(recommend.BarBand(p.score)).Sprint(p.score))
	}
	return strings.Join(out, " | ")
}

func displayComparisonHuman(w io.Writer, c *models.Comparison) {
	cyan := color.New(color.FgCyan, color.Bold)
	bold := color.New(color.Bold)

	fmt.Fprintln(w)
	cyan.Fprintf(w, "%s vs %s in %s\n", c.Left.Name, c.Right.Name, ZoneName(c.Zone))
	fmt.Fprintln(w, strings.Repeat("─", 72))

	fmt.Fprintf(w, "%-18s %-24s %-24s\n", "", c.Left.Name, c.Right.Name)
	fmt.Fprintf(w, "%-18s %s %s\n", "Locality score",
		pad(scoreCell(c.LeftScore.Total, c.TotalWinner == models.SideLeft || c.TotalWinner == models.SideBoth), 24),
		scoreCell(c.RightScore.Total, c.TotalWinner == models.SideRight || c.TotalWinner == models.SideBoth))

	for _, row := range c.Rows {
		left, right := row.Left, row.Right
		switch row.Winner {
		case models.SideLeft:
			left = bold.Sprint(left + " ✓")
		case models.SideRight:
			right = bold.Sprint(right + " ✓")
		}
		fmt.Fprintf(w, "%-18s %s %s\n", row.Label, pad(left, 24), right)
	}
	fmt.Fprintln(w, strings.Repeat("─", 72))
}

func scoreCell(total int, winner bool) string {
	s := BandColor(recommend.ScoreBand(total)).Sprintf("%d/100", total)
	if winner {
		s += " ✓"
	}
	return s
}

func displayVehiclesHuman(w io.Writer, vehicles []models.Vehicle) {
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Fprintln(w)
	cyan.Fprintf(w, "%d vehicles\n", len(vehicles))
	fmt.Fprintf(w, "%-22s %-28s %-11s %-9s %s\n", "ID", "NAME", "CATEGORY", "FUEL", "PRICE")
	for _, v := range vehicles {
		fmt.Fprintf(w, "%-22s %-28s %-11s %-9s %s\n", v.ID, v.Name, v.Category, v.FuelType, recommend.FormatINR(v.StartingPrice))
	}
}

// pad right-pads s to width visible runes, ignoring colour escape codes.
func pad(s string, width int) string {
	n := visibleLen(s)
	if n >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-n+1)
}

func visibleLen(s string) int {
	n := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			n++
		}
	}
	return n
}

// BandColor maps a score band name to its terminal colour.
func BandColor(band string) *color.Color {
	switch band {
	case "emerald":
		return color.New(color.FgGreen, color.Bold)
	case "blue":
		return color.New(color.FgBlue, color.Bold)
	case "amber":
		return color.New(color.FgYellow, color.Bold)
	case "red":
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgWhite)
	}
}
