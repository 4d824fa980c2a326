package models

// VehicleCategory is the body type of a catalog vehicle.
type VehicleCategory string

const (
	CategoryCar        VehicleCategory = "car"
	CategoryMotorcycle VehicleCategory = "motorcycle"
	CategoryScooty     VehicleCategory = "scooty"
)

// FuelType is what the vehicle runs on.
type FuelType string

const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelCNG      FuelType = "cng"
	FuelElectric FuelType = "electric"
)

// SparePartsAvailability rates how easily parts are sourced locally.
type SparePartsAvailability string

const (
	SparePartsExcellent SparePartsAvailability = "excellent"
	SparePartsGood      SparePartsAvailability = "good"
	SparePartsFair      SparePartsAvailability = "fair"
	SparePartsPoor      SparePartsAvailability = "poor"
)

// Zone is a partition of the city used for service-center and fuel lookups.
type Zone string

const (
	ZoneGomtiNagar  Zone = "gomti_nagar"
	ZoneAlambagh    Zone = "alambagh"
	ZoneRajajipuram Zone = "rajajipuram"
	ZoneOutskirts   Zone = "outskirts"
)

// AllZones lists every zone in display order.
var AllZones = []Zone{ZoneGomtiNagar, ZoneAlambagh, ZoneRajajipuram, ZoneOutskirts}

// Vehicle is a catalog entry. Vehicles are reference data and never mutated.
type Vehicle struct {
	ID               string          `json:"id" yaml:"id" bson:"_id"` // URL-safe slug
	Name             string          `json:"name" yaml:"name" bson:"name"`
	Brand            string          `json:"brand" yaml:"brand" bson:"brand"`
	Category         VehicleCategory `json:"category" yaml:"category" bson:"category"`
	FuelType         FuelType        `json:"fuel_type" yaml:"fuel_type" bson:"fuel_type"`
	StartingPrice    int64           `json:"starting_price" yaml:"starting_price" bson:"starting_price"`          // INR
	MonthlyOwnership int64           `json:"monthly_ownership" yaml:"monthly_ownership" bson:"monthly_ownership"` // INR/month
	Specs            Specs           `json:"specs" yaml:"specs" bson:"specs"`
	Locality         Locality        `json:"locality" yaml:"locality" bson:"locality"`
}

// Specs holds the manufacturer figures.
type Specs struct {
	Mileage             float64 `json:"mileage" yaml:"mileage" bson:"mileage"` // km/l, km/kg for CNG, petrol-equivalent for EVs
	EngineCC            int     `json:"engine_cc" yaml:"engine_cc" bson:"engine_cc"`
	SeatingCapacity     int     `json:"seating_capacity" yaml:"seating_capacity" bson:"seating_capacity"`
	BootSpaceLitres     int     `json:"boot_space_litres" yaml:"boot_space_litres" bson:"boot_space_litres"`
	LengthMm            int     `json:"length_mm" yaml:"length_mm" bson:"length_mm"`
	WidthMm             int     `json:"width_mm" yaml:"width_mm" bson:"width_mm"`
	SafetyStars         *int    `json:"safety_stars" yaml:"safety_stars" bson:"safety_stars"` // nil when untested
	HasAutoTransmission bool    `json:"has_auto_transmission" yaml:"has_auto_transmission" bson:"has_auto_transmission"`
}

// Locality holds the city-specific suitability facts.
type Locality struct {
	GroundClearanceMm      int                    `json:"ground_clearance_mm" yaml:"ground_clearance_mm" bson:"ground_clearance_mm"`
	ServiceCentersTotal    int                    `json:"service_centers_total" yaml:"service_centers_total" bson:"service_centers_total"`
	ServiceCentersByZone   map[Zone]int           `json:"service_centers_by_zone" yaml:"service_centers_by_zone" bson:"service_centers_by_zone"`
	EVChargerCompatible    bool                   `json:"ev_charger_compatible" yaml:"ev_charger_compatible" bson:"ev_charger_compatible"`
	CNGFactoryFitted       bool                   `json:"cng_factory_fitted" yaml:"cng_factory_fitted" bson:"cng_factory_fitted"`
	WaitingPeriodWeeks     int                    `json:"waiting_period_weeks" yaml:"waiting_period_weeks" bson:"waiting_period_weeks"`
	SparePartsAvailability SparePartsAvailability `json:"spare_parts_availability" yaml:"spare_parts_availability" bson:"spare_parts_availability"`
	CommonIssues           [2]string              `json:"common_issues" yaml:"common_issues" bson:"common_issues"`
	LastUpdated            string                 `json:"last_updated" yaml:"last_updated" bson:"last_updated"`
}

// IsValidCategory checks if a category is known
func IsValidCategory(c VehicleCategory) bool {
	switch c {
	case CategoryCar, CategoryMotorcycle, CategoryScooty:
		return true
	default:
		return false
	}
}

// IsValidFuelType checks if a fuel type is known
func IsValidFuelType(f FuelType) bool {
	switch f {
	case FuelPetrol, FuelDiesel, FuelCNG, FuelElectric:
		return true
	default:
		return false
	}
}

// IsValidSpareParts checks if a spare parts tier is known
func IsValidSpareParts(a SparePartsAvailability) bool {
	switch a {
	case SparePartsExcellent, SparePartsGood, SparePartsFair, SparePartsPoor:
		return true
	default:
		return false
	}
}

// IsValidZone checks if a zone is known
func IsValidZone(z Zone) bool {
	switch z {
	case ZoneGomtiNagar, ZoneAlambagh, ZoneRajajipuram, ZoneOutskirts:
		return true
	default:
		return false
	}
}

// Clone returns a copy that shares no maps or pointers with v.
func (v Vehicle) Clone() Vehicle {
	out := v
	if v.Specs.SafetyStars != nil {
		stars := *v.Specs.SafetyStars
		out.Specs.SafetyStars = &stars
	}
	if v.Locality.ServiceCentersByZone != nil {
		out.Locality.ServiceCentersByZone = make(map[Zone]int, len(v.Locality.ServiceCentersByZone))
		for z, n := range v.Locality.ServiceCentersByZone {
			out.Locality.ServiceCentersByZone[z] = n
		}
	}
	return out
}

// CentersInZone returns the authorized service-center count for a zone, 0 when unlisted.
func (v Vehicle) CentersInZone(z Zone) int {
	return v.Locality.ServiceCentersByZone[z]
}

// Drawbacks returns a copy of the two fixed honest cons.
func (v Vehicle) Drawbacks() []string {
	return []string{v.Locality.CommonIssues[0], v.Locality.CommonIssues[1]}
}
