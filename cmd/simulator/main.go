package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/sahigaadi/internal/models"
)

// simConfig controls the synthetic wizard traffic.
type simConfig struct {
	APIURL      string
	Interval    time.Duration
	Visitors    int     // 0 runs until interrupted
	BookingRate float64 // share of visitors who book a consultation
}

func loadSimConfig() simConfig {
	cfg := simConfig{
		APIURL:      "http://localhost:8080/api",
		Interval:    2 * time.Second,
		BookingRate: 0.1,
	}
	if v := os.Getenv("API_BASE_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("SIM_TICK_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			cfg.Interval = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("SIM_VISITORS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Visitors = n
		}
	}
	if v := os.Getenv("SIM_BOOKING_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			cfg.BookingRate = f
		}
	}
	return cfg
}

// Budget ranges per vehicle type, purchase then monthly.
var budgetRanges = map[models.VehicleTypeFilter][2][2]int64{
	models.VehicleTypeCar:        {{500000, 1500000}, {8000, 30000}},
	models.VehicleTypeMotorcycle: {{60000, 200000}, {1500, 5000}},
	models.VehicleTypeScooty:     {{60000, 150000}, {1500, 4000}},
	models.VehicleTypeAll:        {{60000, 1500000}, {1500, 30000}},
}

var (
	vehicleTypes = []models.VehicleTypeFilter{
		models.VehicleTypeCar, models.VehicleTypeMotorcycle, models.VehicleTypeScooty, models.VehicleTypeAll,
	}
	primaryUses = []models.PrimaryUse{
		models.UseOfficeDaily, models.UseFamilyTrips, models.UseHighway, models.UseAllPurpose,
	}
	parkings = []models.ParkingSituation{
		models.ParkingStreet, models.ParkingBuilding, models.ParkingBasement,
	}
	drivers = []models.DriverProfile{
		models.DriverSelf, models.DriverSpouse, models.DriverElderly, models.DriverLearner,
	}
	callbackSlots = []models.PreferredTime{models.TimeMorning, models.TimeAfternoon, models.TimeEvening}
	firstNames    = []string{"Aarav", "Ishita", "Mohammad", "Priya", "Rohan", "Zoya", "Vikas", "Neha"}
)

func pickBetween(r *rand.Rand, lo, hi int64) int64 {
	return lo + r.Int63n(hi-lo+1)
}

// randomProfile builds a complete wizard profile that passes validation.
func randomProfile(r *rand.Rand) models.WizardProfile {
	vt := vehicleTypes[r.Intn(len(vehicleTypes))]

	budgetType := models.BudgetPurchase
	ranges := budgetRanges[vt][0]
	if r.Intn(4) == 0 {
		budgetType = models.BudgetMonthly
		ranges = budgetRanges[vt][1]
	}

	var who []models.DriverProfile
	for _, d := range drivers {
		if r.Intn(3) == 0 {
			who = append(who, d)
		}
	}
	if len(who) == 0 {
		who = []models.DriverProfile{drivers[r.Intn(len(drivers))]}
	}

	priorities := append([]models.Priority(nil), models.AllPriorities...)
	r.Shuffle(len(priorities), func(i, j int) { priorities[i], priorities[j] = priorities[j], priorities[i] })

	return models.WizardProfile{
		VehicleType:   vt,
		PrimaryUse:    primaryUses[r.Intn(len(primaryUses))],
		Zone:          models.AllZones[r.Intn(len(models.AllZones))],
		DailyDistance: 5 + r.Intn(96),
		Parking:       parkings[r.Intn(len(parkings))],
		Drivers:       who,
		BudgetType:    budgetType,
		BudgetAmount:  pickBetween(r, ranges[0], ranges[1]),
		Priorities:    priorities,
	}
}

// randomBooking fills a consultation form with a plausible Indian mobile number.
func randomBooking(r *rand.Rand) *models.ConsultationRequest {
	return &models.ConsultationRequest{
		Name:          firstNames[r.Intn(len(firstNames))],
		Phone:         strconv.FormatInt(pickBetween(r, 6000000000, 9999999999), 10),
		PreferredTime: callbackSlots[r.Intn(len(callbackSlots))],
		Type:          models.ConsultationRecommendation,
	}
}

// visitor walks the wizard like a browser, keeping its session cookie.
type visitor struct {
	client *http.Client
	apiURL string
}

func newVisitor(apiURL string) (*visitor, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &visitor{
		client: &http.Client{Jar: jar, Timeout: 10 * time.Second},
		apiURL: apiURL,
	}, nil
}

func (v *visitor) do(ctx context.Context, method, path string, body interface{}, wantStatus int, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s body: %w", path, err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, v.apiURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return fmt.Errorf("%s %s failed with status: %d", method, path, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", path, err)
		}
	}
	return nil
}

type recommendationsBody struct {
	Results []struct {
		Vehicle models.Vehicle        `json:"vehicle"`
		Score   models.ScoreBreakdown `json:"score"`
	} `json:"results"`
}

// visitResult summarises one simulated wizard run.
type visitResult struct {
	TopVehicle string
	TopScore   int
	Compared   bool
	Booked     bool
}

// run saves a profile, fetches recommendations, compares the top two and
// optionally books a consultation.
func (v *visitor) run(ctx context.Context, profile models.WizardProfile, booking *models.ConsultationRequest) (visitResult, error) {
	var res visitResult

	if err := v.do(ctx, http.MethodPut, "/profile", profile, http.StatusOK, nil); err != nil {
		return res, err
	}

	var recs recommendationsBody
	if err := v.do(ctx, http.MethodGet, "/recommendations", nil, http.StatusOK, &recs); err != nil {
		return res, err
	}
	if len(recs.Results) == 0 {
		return res, fmt.Errorf("no recommendations returned")
	}
	res.TopVehicle = recs.Results[0].Vehicle.ID
	res.TopScore = recs.Results[0].Score.Total

	if len(recs.Results) >= 2 {
		path := "/compare/" + recs.Results[0].Vehicle.ID + "/" + recs.Results[1].Vehicle.ID
		if err := v.do(ctx, http.MethodGet, path, nil, http.StatusOK, nil); err != nil {
			return res, err
		}
		res.Compared = true
	}

	if booking != nil {
		booking.Notes = "Interested in " + res.TopVehicle
		if err := v.do(ctx, http.MethodPost, "/consultations", booking, http.StatusCreated, nil); err != nil {
			return res, err
		}
		res.Booked = true
	}
	return res, nil
}

// simulate starts one visitor per tick until ctx ends or cfg.Visitors have run.
// It returns the number of visits that completed without error.
func simulate(ctx context.Context, cfg simConfig, r *rand.Rand) int {
	tick := time.NewTicker(cfg.Interval)
	defer tick.Stop()

	completed := 0
	for i := 0; cfg.Visitors == 0 || i < cfg.Visitors; i++ {
		profile := randomProfile(r)
		var booking *models.ConsultationRequest
		if r.Float64() < cfg.BookingRate {
			booking = randomBooking(r)
		}

		v, err := newVisitor(cfg.APIURL)
		if err != nil {
			log.WithError(err).Error("Failed to create visitor")
			return completed
		}
		res, err := v.run(ctx, profile, booking)
		if err != nil {
			log.WithError(err).WithField("visitor", i+1).Error("Visit failed")
		} else {
			completed++
			log.WithFields(log.Fields{
				"visitor":      i + 1,
				"vehicle_type": profile.VehicleType,
				"zone":         profile.Zone,
				"top_vehicle":  res.TopVehicle,
				"top_score":    res.TopScore,
				"booked":       res.Booked,
			}).Info("Completed visit")
		}

		if cfg.Visitors != 0 && i == cfg.Visitors-1 {
			break
		}
		select {
		case <-ctx.Done():
			return completed
		case <-tick.C:
		}
	}
	return completed
}

func main() {
	cfg := loadSimConfig()

	log.WithFields(log.Fields{
		"api_url":      cfg.APIURL,
		"interval":     cfg.Interval,
		"visitors":     cfg.Visitors,
		"booking_rate": cfg.BookingRate,
	}).Info("Starting wizard traffic simulation")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	completed := simulate(ctx, cfg, r)
	log.WithField("completed_visits", completed).Info("Simulation finished")
}
