package models

import (
	"errors"
	"fmt"
)

// VehicleTypeFilter is the vehicle type the user asked for. "all" disables the filter.
type VehicleTypeFilter string

const (
	VehicleTypeCar        VehicleTypeFilter = "car"
	VehicleTypeMotorcycle VehicleTypeFilter = "motorcycle"
	VehicleTypeScooty     VehicleTypeFilter = "scooty"
	VehicleTypeAll        VehicleTypeFilter = "all"
)

// PrimaryUse describes how the vehicle will mostly be driven.
type PrimaryUse string

const (
	UseOfficeDaily PrimaryUse = "office_daily"
	UseFamilyTrips PrimaryUse = "family_trips"
	UseHighway     PrimaryUse = "highway"
	UseAllPurpose  PrimaryUse = "all_purpose"
)

// ParkingSituation is where the vehicle is kept overnight.
type ParkingSituation string

const (
	ParkingStreet   ParkingSituation = "street"
	ParkingBuilding ParkingSituation = "building"
	ParkingBasement ParkingSituation = "basement"
)

// DriverProfile tags who in the household drives.
type DriverProfile string

const (
	DriverSelf    DriverProfile = "self"
	DriverSpouse  DriverProfile = "spouse"
	DriverElderly DriverProfile = "elderly"
	DriverLearner DriverProfile = "learner"
)

// BudgetType decides which cost field the budget is compared against.
type BudgetType string

const (
	BudgetPurchase BudgetType = "purchase"
	BudgetMonthly  BudgetType = "monthly"
)

// Priority is one of the ranked things the user cares about.
type Priority string

const (
	PriorityFuelEconomy     Priority = "fuel_economy"
	PriorityComfort         Priority = "comfort"
	PrioritySafety          Priority = "safety"
	PriorityBrandReputation Priority = "brand_reputation"
	PriorityResaleValue     Priority = "resale_value"
)

// AllPriorities lists every priority tag. A complete profile ranks all of them.
var AllPriorities = []Priority{
	PriorityFuelEconomy,
	PriorityComfort,
	PrioritySafety,
	PriorityBrandReputation,
	PriorityResaleValue,
}

// ErrInvalidProfile is wrapped by every WizardProfile validation failure.
var ErrInvalidProfile = errors.New("invalid profile")

// WizardProfile is the questionnaire output. It is immutable once built.
type WizardProfile struct {
	VehicleType   VehicleTypeFilter `json:"vehicle_type" yaml:"vehicle_type" bson:"vehicle_type"`
	PrimaryUse    PrimaryUse        `json:"primary_use" yaml:"primary_use" bson:"primary_use"`
	Zone          Zone              `json:"zone" yaml:"zone" bson:"zone"`
	DailyDistance int               `json:"daily_distance" yaml:"daily_distance" bson:"daily_distance"` // km/day
	Parking       ParkingSituation  `json:"parking" yaml:"parking" bson:"parking"`
	Drivers       []DriverProfile   `json:"drivers" yaml:"drivers" bson:"drivers"`
	BudgetType    BudgetType        `json:"budget_type" yaml:"budget_type" bson:"budget_type"`
	BudgetAmount  int64             `json:"budget_amount" yaml:"budget_amount" bson:"budget_amount"` // INR, or INR/month
	Priorities    []Priority        `json:"priorities" yaml:"priorities" bson:"priorities"`          // index 0 = highest
}

// TopPriority returns the highest ranked priority, or "" when none was given.
func (p WizardProfile) TopPriority() Priority {
	if len(p.Priorities) == 0 {
		return ""
	}
	return p.Priorities[0]
}

// WithDefaults fills unanswered single-choice steps the way the wizard does on completion.
func (p WizardProfile) WithDefaults() WizardProfile {
	if p.VehicleType == "" {
		p.VehicleType = VehicleTypeAll
	}
	if p.PrimaryUse == "" {
		p.PrimaryUse = UseAllPurpose
	}
	if p.Zone == "" {
		p.Zone = ZoneGomtiNagar
	}
	if p.Parking == "" {
		p.Parking = ParkingStreet
	}
	if p.BudgetType == "" {
		p.BudgetType = BudgetPurchase
	}
	return p
}

// Validate checks that the profile is complete enough to request recommendations.
func (p WizardProfile) Validate() error {
	if !IsValidVehicleType(p.VehicleType) {
		return fmt.Errorf("%w: unknown vehicle type %q", ErrInvalidProfile, p.VehicleType)
	}
	if !IsValidPrimaryUse(p.PrimaryUse) {
		return fmt.Errorf("%w: unknown primary use %q", ErrInvalidProfile, p.PrimaryUse)
	}
	if !IsValidZone(p.Zone) {
		return fmt.Errorf("%w: unknown zone %q", ErrInvalidProfile, p.Zone)
	}
	if p.DailyDistance < 0 {
		return fmt.Errorf("%w: daily distance must not be negative", ErrInvalidProfile)
	}
	if !IsValidParking(p.Parking) {
		return fmt.Errorf("%w: unknown parking situation %q", ErrInvalidProfile, p.Parking)
	}
	if len(p.Drivers) == 0 {
		return fmt.Errorf("%w: at least one driver is required", ErrInvalidProfile)
	}
	seenDrivers := make(map[DriverProfile]bool, len(p.Drivers))
	for _, d := range p.Drivers {
		if !IsValidDriver(d) {
			return fmt.Errorf("%w: unknown driver %q", ErrInvalidProfile, d)
		}
		if seenDrivers[d] {
			return fmt.Errorf("%w: driver %q listed twice", ErrInvalidProfile, d)
		}
		seenDrivers[d] = true
	}
	if !IsValidBudgetType(p.BudgetType) {
		return fmt.Errorf("%w: unknown budget type %q", ErrInvalidProfile, p.BudgetType)
	}
	if p.BudgetAmount <= 0 {
		return fmt.Errorf("%w: budget amount must be positive", ErrInvalidProfile)
	}
	if len(p.Priorities) != len(AllPriorities) {
		return fmt.Errorf("%w: rank all %d priorities", ErrInvalidProfile, len(AllPriorities))
	}
	seen := make(map[Priority]bool, len(p.Priorities))
	for _, pr := range p.Priorities {
		if !IsValidPriority(pr) {
			return fmt.Errorf("%w: unknown priority %q", ErrInvalidProfile, pr)
		}
		if seen[pr] {
			return fmt.Errorf("%w: priority %q ranked twice", ErrInvalidProfile, pr)
		}
		seen[pr] = true
	}
	return nil
}

// IsValidVehicleType checks if a vehicle type filter is known
func IsValidVehicleType(t VehicleTypeFilter) bool {
	switch t {
	case VehicleTypeCar, VehicleTypeMotorcycle, VehicleTypeScooty, VehicleTypeAll:
		return true
	default:
		return false
	}
}

// IsValidPrimaryUse checks if a primary use is known
func IsValidPrimaryUse(u PrimaryUse) bool {
	switch u {
	case UseOfficeDaily, UseFamilyTrips, UseHighway, UseAllPurpose:
		return true
	default:
		return false
	}
}

// IsValidParking checks if a parking situation is known
func IsValidParking(p ParkingSituation) bool {
	switch p {
	case ParkingStreet, ParkingBuilding, ParkingBasement:
		return true
	default:
		return false
	}
}

// IsValidDriver checks if a driver profile is known
func IsValidDriver(d DriverProfile) bool {
	switch d {
	case DriverSelf, DriverSpouse, DriverElderly, DriverLearner:
		return true
	default:
		return false
	}
}

// IsValidBudgetType checks if a budget type is known
func IsValidBudgetType(b BudgetType) bool {
	switch b {
	case BudgetPurchase, BudgetMonthly:
		return true
	default:
		return false
	}
}

// IsValidPriority checks if a priority tag is known
func IsValidPriority(p Priority) bool {
	switch p {
	case PriorityFuelEconomy, PriorityComfort, PrioritySafety, PriorityBrandReputation, PriorityResaleValue:
		return true
	default:
		return false
	}
}
