package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/ukydev/sahigaadi/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed vehicles.yaml
var defaultCatalog []byte

// ErrInvalidCatalog is wrapped by every load-time validation failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is the read-only vehicle lookup the recommendation engine depends on.
type Catalog interface {
	ByID(id string) (models.Vehicle, bool)
	All() []models.Vehicle
	ByCategory(category models.VehicleCategory) []models.Vehicle
}

// Static is an in-memory catalog loaded once and never mutated.
type Static struct {
	vehicles []models.Vehicle
	byID     map[string]int
}

type document struct {
	Vehicles []models.Vehicle `yaml:"vehicles"`
}

// Default returns the embedded reference catalog.
func Default() (*Static, error) {
	return Parse(defaultCatalog)
}

// LoadFile reads a catalog document from disk.
func LoadFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document and validates every entry.
func Parse(data []byte) (*Static, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return New(doc.Vehicles)
}

// New builds a catalog from vehicles in the given order.
func New(vehicles []models.Vehicle) (*Static, error) {
	s := &Static{
		vehicles: make([]models.Vehicle, 0, len(vehicles)),
		byID:     make(map[string]int, len(vehicles)),
	}
	for _, v := range vehicles {
		if err := validate(v); err != nil {
			return nil, err
		}
		if _, dup := s.byID[v.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate vehicle id %q", ErrInvalidCatalog, v.ID)
		}
		s.byID[v.ID] = len(s.vehicles)
		s.vehicles = append(s.vehicles, v.Clone())
	}
	return s, nil
}

// ByID returns a copy of the vehicle with the given slug.
func (s *Static) ByID(id string) (models.Vehicle, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Vehicle{}, false
	}
	return s.vehicles[i].Clone(), true
}

// All returns copies of every vehicle in catalog order.
func (s *Static) All() []models.Vehicle {
	out := make([]models.Vehicle, len(s.vehicles))
	for i, v := range s.vehicles {
		out[i] = v.Clone()
	}
	return out
}

// ByCategory returns the vehicles of one category in catalog order.
func (s *Static) ByCategory(category models.VehicleCategory) []models.Vehicle {
	out := make([]models.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		if v.Category == category {
			out = append(out, v.Clone())
		}
	}
	return out
}

// Len returns the number of vehicles.
func (s *Static) Len() int {
	return len(s.vehicles)
}

func validate(v models.Vehicle) error {
	if v.ID == "" {
		return fmt.Errorf("%w: vehicle %q has no id", ErrInvalidCatalog, v.Name)
	}
	if !models.IsValidCategory(v.Category) {
		return fmt.Errorf("%w: %s: unknown category %q", ErrInvalidCatalog, v.ID, v.Category)
	}
	if !models.IsValidFuelType(v.FuelType) {
		return fmt.Errorf("%w: %s: unknown fuel type %q", ErrInvalidCatalog, v.ID, v.FuelType)
	}
	if !models.IsValidSpareParts(v.Locality.SparePartsAvailability) {
		return fmt.Errorf("%w: %s: unknown spare parts tier %q", ErrInvalidCatalog, v.ID, v.Locality.SparePartsAvailability)
	}
	if v.Specs.Mileage <= 0 {
		return fmt.Errorf("%w: %s: mileage must be positive", ErrInvalidCatalog, v.ID)
	}
	if v.Specs.WidthMm <= 0 {
		return fmt.Errorf("%w: %s: width must be positive", ErrInvalidCatalog, v.ID)
	}
	if v.Locality.WaitingPeriodWeeks < 0 {
		return fmt.Errorf("%w: %s: negative waiting period", ErrInvalidCatalog, v.ID)
	}
	for _, z := range models.AllZones {
		n, ok := v.Locality.ServiceCentersByZone[z]
		if !ok {
			return fmt.Errorf("%w: %s: no service-center count for zone %s", ErrInvalidCatalog, v.ID, z)
		}
		if n < 0 {
			return fmt.Errorf("%w: %s: negative service-center count for zone %s", ErrInvalidCatalog, v.ID, z)
		}
	}
	for i, issue := range v.Locality.CommonIssues {
		if issue == "" {
			return fmt.Errorf("%w: %s: common issue %d is empty", ErrInvalidCatalog, v.ID, i+1)
		}
	}
	return nil
}
