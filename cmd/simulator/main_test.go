package main

import (
	"context"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/sahigaadi/internal/auth"
	"github.com/ukydev/sahigaadi/internal/catalog"
	"github.com/ukydev/sahigaadi/internal/db"
	"github.com/ukydev/sahigaadi/internal/handlers"
	"github.com/ukydev/sahigaadi/internal/models"
	"github.com/ukydev/sahigaadi/internal/recommend"
	"github.com/ukydev/sahigaadi/internal/session"
)

func newAPI(t *testing.T) (*httptest.Server, *db.MemoryConsultationCollection) {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	authService, err := auth.NewService("simulator-test", time.Hour)
	require.NoError(t, err)

	consultations := db.NewMemoryConsultationCollection()
	router := handlers.NewRouter(handlers.Dependencies{
		Engine:         recommend.NewEngine(cat, nil),
		Profiles:       session.NewMemoryStore(time.Hour),
		Consultations:  consultations,
		AuthService:    authService,
		RateLimitRPS:   100,
		RateLimitBurst: 100,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, consultations
}

func TestRandomProfile_AlwaysValid(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	types := map[models.VehicleTypeFilter]bool{}
	monthly := 0

	for i := 0; i < 500; i++ {
		p := randomProfile(r)
		require.NoError(t, p.Validate(), "profile %d: %+v", i, p)
		assert.Len(t, p.Priorities, len(models.AllPriorities))
		assert.NotEmpty(t, p.Drivers)

		ranges := budgetRanges[p.VehicleType][0]
		if p.BudgetType == models.BudgetMonthly {
			ranges = budgetRanges[p.VehicleType][1]
			monthly++
		}
		assert.GreaterOrEqual(t, p.BudgetAmount, ranges[0])
		assert.LessOrEqual(t, p.BudgetAmount, ranges[1])
		types[p.VehicleType] = true
	}

	assert.Len(t, types, 4)
	assert.Greater(t, monthly, 0)
}

func TestRandomBooking(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		b := randomBooking(r)
		assert.NotEmpty(t, b.Name)
		assert.Len(t, b.Phone, 10)
		assert.True(t, models.IsValidPreferredTime(b.PreferredTime))
		assert.Equal(t, models.ConsultationRecommendation, b.Type)
	}
}

func TestVisitor_Run(t *testing.T) {
	srv, consultations := newAPI(t)

	v, err := newVisitor(srv.URL + "/api")
	require.NoError(t, err)

	profile := randomProfile(rand.New(rand.NewSource(1)))
	booking := randomBooking(rand.New(rand.NewSource(2)))

	res, err := v.run(context.Background(), profile, booking)
	require.NoError(t, err)
	assert.NotEmpty(t, res.TopVehicle)
	assert.Greater(t, res.TopScore, 0)
	assert.True(t, res.Compared)
	assert.True(t, res.Booked)

	stored, err := consultations.FindConsultations(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Interested in "+res.TopVehicle, stored[0].Notes)
	assert.NotEmpty(t, stored[0].SessionID)
}

func TestVisitor_Run_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	v, err := newVisitor(srv.URL)
	require.NoError(t, err)

	_, err = v.run(context.Background(), randomProfile(rand.New(rand.NewSource(3))), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status: 500")
}

func TestVisitor_Run_NetworkError(t *testing.T) {
	v, err := newVisitor("http://127.0.0.1:1")
	require.NoError(t, err)

	_, err = v.run(context.Background(), randomProfile(rand.New(rand.NewSource(4))), nil)
	assert.Error(t, err)
}

func TestSimulate_StopsAfterVisitors(t *testing.T) {
	srv, _ := newAPI(t)

	cfg := simConfig{APIURL: srv.URL + "/api", Interval: time.Millisecond, Visitors: 4}
	completed := simulate(context.Background(), cfg, rand.New(rand.NewSource(5)))
	assert.Equal(t, 4, completed)
}

func TestSimulate_RespectsContext(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan int)
	go func() {
		done <- simulate(ctx, simConfig{APIURL: srv.URL, Interval: 10 * time.Millisecond}, rand.New(rand.NewSource(6)))
	}()

	select {
	case completed := <-done:
		assert.Zero(t, completed)
		assert.Greater(t, atomic.LoadInt32(&hits), int32(0))
	case <-time.After(2 * time.Second):
		t.Fatal("simulate did not respect context cancellation")
	}
}

func TestLoadSimConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want simConfig
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			want: simConfig{APIURL: "http://localhost:8080/api", Interval: 2 * time.Second, BookingRate: 0.1},
		},
		{
			name: "overrides",
			env: map[string]string{
				"API_BASE_URL":     "http://api.example.com/api",
				"SIM_TICK_SECONDS": "5",
				"SIM_VISITORS":     "20",
				"SIM_BOOKING_RATE": "0.5",
			},
			want: simConfig{APIURL: "http://api.example.com/api", Interval: 5 * time.Second, Visitors: 20, BookingRate: 0.5},
		},
		{
			name: "invalid values keep defaults",
			env: map[string]string{
				"SIM_TICK_SECONDS": "0",
				"SIM_VISITORS":     "-3",
				"SIM_BOOKING_RATE": "1.5",
			},
			want: simConfig{APIURL: "http://localhost:8080/api", Interval: 2 * time.Second, BookingRate: 0.1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"API_BASE_URL", "SIM_TICK_SECONDS", "SIM_VISITORS", "SIM_BOOKING_RATE"} {
				t.Setenv(k, tt.env[k])
			}
			assert.Equal(t, tt.want, loadSimConfig())
		})
	}
}
