package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/sahigaadi/internal/models"
)

func testVehicle(id string, category models.VehicleCategory) models.Vehicle {
	return models.Vehicle{
		ID:       id,
		Name:     id,
		Brand:    "Test",
		Category: category,
		FuelType: models.FuelPetrol,
		Specs:    models.Specs{Mileage: 20, WidthMm: 1700},
		Locality: models.Locality{
			ServiceCentersByZone: map[models.Zone]int{
				models.ZoneGomtiNagar:  1,
				models.ZoneAlambagh:    1,
				models.ZoneRajajipuram: 1,
				models.ZoneOutskirts:   1,
			},
			SparePartsAvailability: models.SparePartsGood,
			CommonIssues:           [2]string{"one", "two"},
		},
	}
}

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Equal(t, 15, c.Len())

	assert.Len(t, c.ByCategory(models.CategoryCar), 8)
	assert.Len(t, c.ByCategory(models.CategoryMotorcycle), 4)
	assert.Len(t, c.ByCategory(models.CategoryScooty), 3)

	swift, ok := c.ByID("maruti-swift")
	require.True(t, ok)
	assert.Equal(t, "Maruti Suzuki", swift.Brand)
	assert.Equal(t, 163, swift.Locality.GroundClearanceMm)
	require.NotNil(t, swift.Specs.SafetyStars)
	assert.Equal(t, 4, *swift.Specs.SafetyStars)

	creta, ok := c.ByID("hyundai-creta")
	require.True(t, ok)
	assert.Nil(t, creta.Specs.SafetyStars)
}

func TestStatic_ByID_NotFound(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	v, ok := c.ByID("tesla-model-3")
	assert.False(t, ok)
	assert.Empty(t, v.ID)
}

func TestStatic_PreservesOrder(t *testing.T) {
	c, err := New([]models.Vehicle{
		testVehicle("b", models.CategoryCar),
		testVehicle("a", models.CategoryScooty),
		testVehicle("c", models.CategoryCar),
	})
	require.NoError(t, err)

	ids := func(vs []models.Vehicle) []string {
		out := make([]string, 0, len(vs))
		for _, v := range vs {
			out = append(out, v.ID)
		}
		return out
	}
	assert.Equal(t, []string{"b", "a", "c"}, ids(c.All()))
	assert.Equal(t, []string{"b", "c"}, ids(c.ByCategory(models.CategoryCar)))
	assert.Empty(t, c.ByCategory(models.CategoryMotorcycle))
}

func TestStatic_AllReturnsCopy(t *testing.T) {
	c, err := New([]models.Vehicle{testVehicle("a", models.CategoryCar)})
	require.NoError(t, err)

	all := c.All()
	all[0].ID = "mutated"

	_, ok := c.ByID("a")
	assert.True(t, ok)
	assert.Equal(t, "a", c.All()[0].ID)
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(v *models.Vehicle)
	}{
		{"missing id", func(v *models.Vehicle) { v.ID = "" }},
		{"unknown category", func(v *models.Vehicle) { v.Category = "truck" }},
		{"unknown fuel", func(v *models.Vehicle) { v.FuelType = "hydrogen" }},
		{"unknown spare parts", func(v *models.Vehicle) { v.Locality.SparePartsAvailability = "scarce" }},
		{"zero mileage", func(v *models.Vehicle) { v.Specs.Mileage = 0 }},
		{"zero width", func(v *models.Vehicle) { v.Specs.WidthMm = 0 }},
		{"negative waiting period", func(v *models.Vehicle) { v.Locality.WaitingPeriodWeeks = -1 }},
		{"missing zone", func(v *models.Vehicle) { delete(v.Locality.ServiceCentersByZone, models.ZoneOutskirts) }},
		{"empty issue", func(v *models.Vehicle) { v.Locality.CommonIssues[1] = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := testVehicle("x", models.CategoryCar)
			tt.mutate(&v)
			_, err := New([]models.Vehicle{v})
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}

	t.Run("duplicate id", func(t *testing.T) {
		_, err := New([]models.Vehicle{testVehicle("x", models.CategoryCar), testVehicle("x", models.CategoryScooty)})
		assert.ErrorIs(t, err, ErrInvalidCatalog)
	})
}

func TestParse(t *testing.T) {
	doc := []byte(`
vehicles:
  - id: only-one
    name: Only One
    brand: Test
    category: scooty
    fuel_type: electric
    starting_price: 100000
    monthly_ownership: 2000
    specs:
      mileage: 120
      width_mm: 700
      safety_stars: null
    locality:
      ground_clearance_mm: 160
      service_centers_by_zone: {gomti_nagar: 1, alambagh: 0, rajajipuram: 0, outskirts: 0}
      spare_parts_availability: poor
      common_issues: [first, second]
`)
	c, err := Parse(doc)
	require.NoError(t, err)
	v, ok := c.ByID("only-one")
	require.True(t, ok)
	assert.Equal(t, models.FuelElectric, v.FuelType)
	assert.Equal(t, [2]string{"first", "second"}, v.Locality.CommonIssues)

	_, err = Parse([]byte("vehicles: [::"))
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vehicles.yaml")
	require.NoError(t, os.WriteFile(path, defaultCatalog, 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 15, c.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestAccessorsReturnIndependentCopies(t *testing.T) {
	stars := 4
	v := testVehicle("car-a", models.CategoryCar)
	v.Specs.SafetyStars = &stars
	c, err := New([]models.Vehicle{v})
	require.NoError(t, err)

	// the caller's input stays detached from the catalog
	v.Locality.ServiceCentersByZone[models.ZoneAlambagh] = 9
	stars = 1

	got, ok := c.ByID("car-a")
	require.True(t, ok)
	got.Locality.ServiceCentersByZone[models.ZoneGomtiNagar] = 0
	*got.Specs.SafetyStars = 0

	all := c.All()
	all[0].Locality.ServiceCentersByZone[models.ZoneOutskirts] = 0

	cars := c.ByCategory(models.CategoryCar)
	*cars[0].Specs.SafetyStars = 2

	fresh, ok := c.ByID("car-a")
	require.True(t, ok)
	assert.Equal(t, 1, fresh.CentersInZone(models.ZoneGomtiNagar))
	assert.Equal(t, 1, fresh.CentersInZone(models.ZoneAlambagh))
	assert.Equal(t, 1, fresh.CentersInZone(models.ZoneOutskirts))
	require.NotNil(t, fresh.Specs.SafetyStars)
	assert.Equal(t, 4, *fresh.Specs.SafetyStars)
}
