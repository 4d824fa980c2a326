package formatter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/sahigaadi/internal/models"
	"gopkg.in/yaml.v3"
)

func init() {
	color.NoColor = true
}

func sampleResults() []models.RecommendationResult {
	return []models.RecommendationResult{
		{
			Vehicle: models.Vehicle{ID: "tata-nexon", Name: "Tata Nexon Smart", Brand: "Tata", StartingPrice: 800000, MonthlyOwnership: 14000},
			Rank:    1,
			Score: models.ScoreBreakdown{
				GroundClearance: 100, ServiceCenters: 88, FuelInfra: 70, WaitingPeriod: 65, SpareParts: 75, Total: 83,
			},
			WhyItFits:    []string{"reason one", "reason two", "reason three"},
			ThingsToKnow: []string{"con one", "con two"},
		},
		{
			Vehicle: models.Vehicle{ID: "maruti-swift", Name: "Maruti Suzuki Swift VXi", Brand: "Maruti Suzuki", StartingPrice: 649000},
			Rank:    2,
			Score:   models.ScoreBreakdown{Total: 52},
		},
	}
}

func TestDisplayRecommendations_Human(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayRecommendations(&buf, sampleResults(), models.ZoneAlambagh, FormatHuman))
	out := buf.String()

	assert.Contains(t, out, "SahiGaadi picks for Alambagh")
	assert.Contains(t, out, "#1 Best match: Tata Nexon Smart (Tata)")
	assert.Contains(t, out, "₹8.00L · ₹14K/mo · 83/100 Good")
	assert.Contains(t, out, "Clearance 100 | Service 88 | Fuel 70 | Waiting 65 | Parts 75")
	assert.Contains(t, out, "✓ reason two")
	assert.Contains(t, out, "! con two")
	assert.Contains(t, out, "#2 Runner-up: Maruti Suzuki Swift VXi")
	assert.Contains(t, out, "52/100 Low")
	assert.Contains(t, out, "₹499 for 45 minutes")
}

func TestDisplayRecommendations_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayRecommendations(&buf, nil, models.ZoneGomtiNagar, FormatHuman))
	assert.Contains(t, buf.String(), "No vehicles matched.")
}

func TestDisplayRecommendations_Machine(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, DisplayRecommendations(&buf, sampleResults(), models.ZoneGomtiNagar, FormatJSON))

		var got []models.RecommendationResult
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, sampleResults(), got)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, DisplayRecommendations(&buf, sampleResults(), models.ZoneGomtiNagar, FormatYAML))

		assert.Contains(t, buf.String(), "why_it_fits_you:")
		var got []map[string]interface{}
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Len(t, got, 2)
		assert.Equal(t, 1, got[0]["rank"])
	})
}

func TestDisplayComparison_Human(t *testing.T) {
	c := &models.Comparison{
		Zone:        models.ZoneRajajipuram,
		Left:        models.Vehicle{Name: "Swift"},
		Right:       models.Vehicle{Name: "Nexon"},
		LeftScore:   models.ScoreBreakdown{Total: 70},
		RightScore:  models.ScoreBreakdown{Total: 70},
		TotalWinner: models.SideBoth,
		Rows: []models.ComparisonRow{
			{Label: "Starting price", Left: "₹6.49L", Right: "₹8.00L", Winner: models.SideLeft},
			{Label: "Fuel type", Left: "PETROL", Right: "PETROL"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, DisplayComparison(&buf, c, FormatHuman))
	out := buf.String()

	assert.Contains(t, out, "Swift vs Nexon in Rajajipuram")
	assert.Equal(t, 2, strings.Count(out, "70/100 ✓"))
	assert.Contains(t, out, "₹6.49L ✓")
	assert.NotContains(t, out, "₹8.00L ✓")
	assert.NotContains(t, out, "PETROL ✓")
}

func TestDisplayVehicles(t *testing.T) {
	vehicles := []models.Vehicle{
		{ID: "honda-activa-6g", Name: "Honda Activa 6G", Category: models.CategoryScooty, FuelType: models.FuelPetrol, StartingPrice: 77000},
	}

	var buf bytes.Buffer
	require.NoError(t, DisplayVehicles(&buf, vehicles, FormatHuman))
	assert.Contains(t, buf.String(), "1 vehicles")
	assert.Contains(t, buf.String(), "honda-activa-6g")
	assert.Contains(t, buf.String(), "₹77K")

	buf.Reset()
	require.NoError(t, DisplayVehicles(&buf, vehicles, FormatJSON))
	assert.Contains(t, buf.String(), `"id": "honda-activa-6g"`)
}

func TestZoneName(t *testing.T) {
	assert.Equal(t, "Gomti Nagar", ZoneName(models.ZoneGomtiNagar))
	assert.Equal(t, "Outskirts", ZoneName(models.ZoneOutskirts))
	assert.Equal(t, "chowk", ZoneName("chowk"))
}

func TestValidFormat(t *testing.T) {
	for _, f := range []string{FormatHuman, FormatJSON, FormatYAML} {
		assert.True(t, ValidFormat(f))
	}
	assert.False(t, ValidFormat("table"))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", pad("ab", 4))
	assert.Equal(t, "abcdef ", pad("abcdef", 4))
	colored := "\x1b[1mab\x1b[0m"
	assert.Equal(t, colored+"   ", pad(colored, 4))
	assert.Equal(t, 2, visibleLen(colored))
}
