package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airport-registry-service/internal/domain/entity"
	storerepo "airport-registry-service/internal/interface/repository"
	"airport-registry-service/internal/usecase"
	"airport-registry-service/pkg/logger"
)

type testEnv struct {
	router      chi.Router
	pilotRepo   *storerepo.MemoryPilotRepository
	airlineRepo *storerepo.MemoryAirlineRepository
	flightRepo  *storerepo.MemoryFlightRepository
}

func newTestEnv() *testEnv {
	log := logger.NewNop()

	pilotRepo := storerepo.NewMemoryPilotRepository()
	airlineRepo := storerepo.NewMemoryAirlineRepository()
	flightRepo := storerepo.NewMemoryFlightRepository()

	airlineService := usecase.NewAirlineService(airlineRepo, log)
	pilotService := usecase.NewPilotService(pilotRepo, log)
	flightService := usecase.NewFlightService(flightRepo, pilotRepo, airlineRepo, nil, log)

	router := NewRouter(
		NewAirlineHandler(airlineService, log),
		NewPilotHandler(pilotService, log),
		NewFlightHandler(flightService, log),
		nil,
	)

	return &testEnv{
		router:      router,
		pilotRepo:   pilotRepo,
		airlineRepo: airlineRepo,
		flightRepo:  flightRepo,
	}
}

func (e *testEnv) seedPilotAndAirline(t *testing.T) (*entity.Pilot, *entity.Airline) {
	t.Helper()
	ctx := context.Background()

	pilot := &entity.Pilot{Name: "Maria Souza", PersonalID: "11144477735", Status: entity.PilotActive}
	require.NoError(t, e.pilotRepo.Save(ctx, pilot))

	airline := &entity.Airline{Name: "Linhas Azuis", FiscalID: "40510225000102", Status: entity.AirlineActive}
	require.NoError(t, e.airlineRepo.Save(ctx, airline))

	return pilot, airline
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]errorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body["error"].Code
}

func TestFlightEndpoints(t *testing.T) {
	t.Run("create returns the scheduled flight", func(t *testing.T) {
		env := newTestEnv()
		pilot, airline := env.seedPilotAndAirline(t)

		departure := time.Now().Add(2 * time.Hour)
		rr := env.do(t, http.MethodPost, "/flights", entity.Flight{
			PilotID:            pilot.ID,
			AirlineID:          airline.ID,
			Code:               "VOO001",
			Origin:             "GRU",
			Destination:        "JFK",
			ScheduledDeparture: departure,
			ScheduledArrival:   departure.Add(10 * time.Hour),
		})

		require.Equal(t, http.StatusCreated, rr.Code)

		var created entity.Flight
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
		assert.NotZero(t, created.ID)
		assert.Equal(t, entity.FlightScheduled, created.Status)
	})

	t.Run("create maps validation faults to 400", func(t *testing.T) {
		env := newTestEnv()
		pilot, airline := env.seedPilotAndAirline(t)

		departure := time.Now().Add(2 * time.Hour)
		rr := env.do(t, http.MethodPost, "/flights", entity.Flight{
			PilotID:            pilot.ID,
			AirlineID:          airline.ID,
			Code:               "VOO001",
			Origin:             "GRU",
			Destination:        "GRU",
			ScheduledDeparture: departure,
		})

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "VALIDATION", errorCode(t, rr))
	})

	t.Run("cancel without reason is rejected", func(t *testing.T) {
		env := newTestEnv()

		rr := env.do(t, http.MethodPut, "/flights/1/cancel", nil)
		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "VALIDATION", errorCode(t, rr))
	})

	t.Run("start of an unknown flight is a 404", func(t *testing.T) {
		env := newTestEnv()

		rr := env.do(t, http.MethodPut, "/flights/999/start", nil)
		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "NOT_FOUND", errorCode(t, rr))
	})

	t.Run("status filter rejects unknown values", func(t *testing.T) {
		env := newTestEnv()

		rr := env.do(t, http.MethodGet, "/flights/status/TELEPORTED", nil)
		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("non-numeric id is rejected", func(t *testing.T) {
		env := newTestEnv()

		rr := env.do(t, http.MethodGet, "/flights/abc", nil)
		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAirlineEndpoints(t *testing.T) {
	t.Run("duplicate fiscal identifier maps to 409", func(t *testing.T) {
		env := newTestEnv()

		airline := entity.Airline{Name: "Linhas Azuis", FiscalID: "40510225000102", Status: entity.AirlineActive}
		rr := env.do(t, http.MethodPost, "/airlines", airline)
		require.Equal(t, http.StatusCreated, rr.Code)

		rr = env.do(t, http.MethodPost, "/airlines", airline)
		require.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "CONFLICT", errorCode(t, rr))
	})

	t.Run("update of a missing airline is a 404", func(t *testing.T) {
		env := newTestEnv()

		rr := env.do(t, http.MethodPut, "/airlines/999", entity.Airline{Status: entity.AirlineInactive})
		require.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("update with an unknown status is rejected", func(t *testing.T) {
		env := newTestEnv()

		rr := env.do(t, http.MethodPut, "/airlines/1", map[string]string{"status": "DISSOLVED"})
		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestPilotEndpoints(t *testing.T) {
	t.Run("create registers and returns the derived registration number", func(t *testing.T) {
		env := newTestEnv()

		rr := env.do(t, http.MethodPost, "/pilots", entity.Pilot{
			Name:       "Maria Souza",
			PersonalID: "111.444.777-35",
			Status:     entity.PilotActive,
		})
		require.Equal(t, http.StatusCreated, rr.Code)

		var created entity.Pilot
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
		assert.Equal(t, fmt.Sprintf("PIL%d%04d", time.Now().Year(), created.ID), created.RegistrationNumber)
	})

	t.Run("personal identifier miss yields an empty body, not a fault", func(t *testing.T) {
		env := newTestEnv()

		rr := env.do(t, http.MethodGet, "/pilots/personal-id/00000000000", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "null\n", rr.Body.String())
	})

	t.Run("update of a missing pilot yields an empty result", func(t *testing.T) {
		env := newTestEnv()

		rr := env.do(t, http.MethodPut, "/pilots/999", entity.Pilot{Status: entity.PilotActive})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "null\n", rr.Body.String())
	})
}
