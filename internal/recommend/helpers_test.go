package recommend

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukydev/sahigaadi/internal/catalog"
	"github.com/ukydev/sahigaadi/internal/models"
)

func intPtr(n int) *int { return &n }

// vehicle returns a petrol car with neutral attributes that tests override.
func vehicle(id string, category models.VehicleCategory) models.Vehicle {
	return models.Vehicle{
		ID:               id,
		Name:             id,
		Brand:            "Tata",
		Category:         category,
		FuelType:         models.FuelPetrol,
		StartingPrice:    500000,
		MonthlyOwnership: 10000,
		Specs: models.Specs{
			Mileage:         20,
			SeatingCapacity: 5,
			WidthMm:         1700,
		},
		Locality: models.Locality{
			GroundClearanceMm: 180,
			ServiceCentersByZone: map[models.Zone]int{
				models.ZoneGomtiNagar:  3,
				models.ZoneAlambagh:    3,
				models.ZoneRajajipuram: 3,
				models.ZoneOutskirts:   3,
			},
			WaitingPeriodWeeks:     2,
			SparePartsAvailability: models.SparePartsGood,
			CommonIssues:           [2]string{id + " con one", id + " con two"},
		},
	}
}

func profile() models.WizardProfile {
	return models.WizardProfile{
		VehicleType:   models.VehicleTypeAll,
		PrimaryUse:    models.UseOfficeDaily,
		Zone:          models.ZoneGomtiNagar,
		DailyDistance: 30,
		Parking:       models.ParkingStreet,
		Drivers:       []models.DriverProfile{models.DriverSelf},
		BudgetType:    models.BudgetPurchase,
		BudgetAmount:  1000000,
		Priorities:    append([]models.Priority(nil), models.AllPriorities...),
	}
}

func withTopPriority(p models.WizardProfile, top models.Priority) models.WizardProfile {
	ordered := []models.Priority{top}
	for _, pr := range models.AllPriorities {
		if pr != top {
			ordered = append(ordered, pr)
		}
	}
	p.Priorities = ordered
	return p
}

func newCatalog(t *testing.T, vs ...models.Vehicle) *catalog.Static {
	t.Helper()
	c, err := catalog.New(vs)
	require.NoError(t, err)
	return c
}

func defaultCatalog(t *testing.T) *catalog.Static {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return c
}

func ids(vs []models.Vehicle) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.ID)
	}
	return out
}
