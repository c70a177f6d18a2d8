package usecase

import (
	"context"
	"strings"
	"time"

	"airport-registry-service/internal/domain/entity"
	"airport-registry-service/internal/domain/repository"
	"airport-registry-service/pkg/apperror"
	"airport-registry-service/pkg/logger"
	"airport-registry-service/pkg/metrics"
)

// FlightService orchestrates flight scheduling and status transitions. It
// cross-references pilot and airline state before committing mutations.
type FlightService struct {
	flightRepo  repository.FlightRepository
	pilotRepo   repository.PilotRepository
	airlineRepo repository.AirlineRepository
	metrics     *metrics.Metrics
	logger      logger.Logger
}

// NewFlightService creates a new flight service.
func NewFlightService(
	flightRepo repository.FlightRepository,
	pilotRepo repository.PilotRepository,
	airlineRepo repository.AirlineRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *FlightService {
	return &FlightService{
		flightRepo:  flightRepo,
		pilotRepo:   pilotRepo,
		airlineRepo: airlineRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

func (s *FlightService) fault(operation string, err error) error {
	if s.metrics != nil {
		s.metrics.FaultsCount.WithLabelValues(operation).Inc()
	}
	return err
}

// Create validates a new flight against pilot, airline, schedule, and code
// constraints, then persists it with status SCHEDULED. Any status supplied
// by the caller is discarded.
func (s *FlightService) Create(ctx context.Context, flight *entity.Flight) (*entity.Flight, error) {
	pilot, err := s.pilotRepo.FindByID(ctx, flight.PilotID)
	if err != nil {
		return nil, err
	}
	if pilot == nil {
		return nil, s.fault("create", apperror.NotFound("pilot not found"))
	}
	if pilot.Status != entity.PilotActive {
		return nil, s.fault("create", apperror.Validation("pilot not fit to fly"))
	}

	// Exact-instant comparison: two flights conflict only when the pilot's
	// scheduled departures are identical, not when they overlap.
	existing, err := s.flightRepo.ListByPilot(ctx, flight.PilotID)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if existing[i].ScheduledDeparture.Equal(flight.ScheduledDeparture) {
			return nil, s.fault("create", apperror.Conflict("pilot already assigned to a flight at that time"))
		}
	}

	airline, err := s.airlineRepo.FindByID(ctx, flight.AirlineID)
	if err != nil {
		return nil, err
	}
	if airline == nil {
		return nil, s.fault("create", apperror.NotFound("airline not found"))
	}
	if airline.Status != entity.AirlineActive {
		return nil, s.fault("create", apperror.Validation("airline is not active"))
	}

	codeTaken, err := s.flightRepo.ExistsByCode(ctx, flight.Code)
	if err != nil {
		return nil, err
	}
	if codeTaken {
		return nil, s.fault("create", apperror.Conflict("flight code already in use"))
	}

	if strings.EqualFold(flight.Origin, flight.Destination) {
		return nil, s.fault("create", apperror.Validation("origin and destination cannot be the same"))
	}

	if !flight.ScheduledDeparture.After(time.Now()) {
		return nil, s.fault("create", apperror.Validation("departure time cannot be in the past"))
	}

	flight.Status = entity.FlightScheduled

	if err := s.flightRepo.Save(ctx, flight); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.FlightsCreated.Inc()
	}
	s.logger.Info("Flight scheduled", "flightId", flight.ID, "code", flight.Code, "pilotId", flight.PilotID)
	return flight, nil
}

// Start transitions a flight to IN_FLIGHT and stamps the actual departure
// time. Pilots with an inactive or expired license cannot start a flight.
func (s *FlightService) Start(ctx context.Context, flightID uint) (*entity.Flight, error) {
	flight, err := s.flightRepo.FindByID(ctx, flightID)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, s.fault("start", apperror.NotFound("flight not found"))
	}

	pilot, err := s.pilotRepo.FindByID(ctx, flight.PilotID)
	if err != nil {
		return nil, err
	}
	if pilot == nil {
		return nil, s.fault("start", apperror.NotFound("pilot not found"))
	}
	if pilot.Status == entity.PilotInactive || pilot.Status == entity.PilotExpired {
		return nil, s.fault("start", apperror.Validation("pilot cannot start the flight"))
	}

	now := time.Now()
	flight.Status = entity.FlightInFlight
	flight.ActualDeparture = &now

	if err := s.flightRepo.Save(ctx, flight); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.FlightsStarted.Inc()
	}
	s.logger.Info("Flight started", "flightId", flight.ID, "code", flight.Code)
	return flight, nil
}

// Cancel transitions a flight to CANCELLED with a mandatory reason. Any
// prior status is allowed, including terminal ones, so cancelling twice is
// safe and observably idempotent.
func (s *FlightService) Cancel(ctx context.Context, flightID uint, reason string) (*entity.Flight, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, s.fault("cancel", apperror.Validation("cancellation reason is required"))
	}

	flight, err := s.flightRepo.FindByID(ctx, flightID)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, s.fault("cancel", apperror.NotFound("flight not found"))
	}

	flight.Status = entity.FlightCancelled
	flight.CancelReason = reason

	if err := s.flightRepo.Save(ctx, flight); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.FlightsCancelled.Inc()
	}
	s.logger.Info("Flight cancelled", "flightId", flight.ID, "reason", reason)
	return flight, nil
}

// Update overwrites the schedule times, actual times, and status of an
// existing flight with the caller-supplied values. It is a raw field patch:
// none of the creation-time validations are re-run.
func (s *FlightService) Update(ctx context.Context, flightID uint, updated *entity.Flight) (*entity.Flight, error) {
	flight, err := s.flightRepo.FindByID(ctx, flightID)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, s.fault("update", apperror.NotFound("flight not found"))
	}

	flight.ScheduledDeparture = updated.ScheduledDeparture
	flight.ScheduledArrival = updated.ScheduledArrival
	flight.ActualDeparture = updated.ActualDeparture
	flight.ActualArrival = updated.ActualArrival
	flight.Status = updated.Status

	if err := s.flightRepo.Save(ctx, flight); err != nil {
		return nil, err
	}
	return flight, nil
}

// Delete removes a flight by id, failing when the record does not exist.
func (s *FlightService) Delete(ctx context.Context, flightID uint) error {
	exists, err := s.flightRepo.ExistsByID(ctx, flightID)
	if err != nil {
		return err
	}
	if !exists {
		return s.fault("delete", apperror.NotFound("flight not found"))
	}
	return s.flightRepo.DeleteByID(ctx, flightID)
}

// GetByID returns a single flight.
func (s *FlightService) GetByID(ctx context.Context, flightID uint) (*entity.Flight, error) {
	flight, err := s.flightRepo.FindByID(ctx, flightID)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, apperror.NotFound("flight not found")
	}
	return flight, nil
}

// List returns every flight.
func (s *FlightService) List(ctx context.Context) ([]entity.Flight, error) {
	return s.flightRepo.FindAll(ctx)
}

// ListByStatus returns flights with the exact status.
func (s *FlightService) ListByStatus(ctx context.Context, status entity.FlightStatus) ([]entity.Flight, error) {
	if !status.Valid() {
		return nil, apperror.Validation("invalid flight status")
	}
	return s.flightRepo.ListByStatus(ctx, status)
}

// ListByPilot returns flights assigned to the pilot.
func (s *FlightService) ListByPilot(ctx context.Context, pilotID uint) ([]entity.Flight, error) {
	return s.flightRepo.ListByPilot(ctx, pilotID)
}

// ListByAirline returns flights operated by the airline.
func (s *FlightService) ListByAirline(ctx context.Context, airlineID uint) ([]entity.Flight, error) {
	return s.flightRepo.ListByAirline(ctx, airlineID)
}

// ListByOrigin returns flights departing from the origin code.
func (s *FlightService) ListByOrigin(ctx context.Context, origin string) ([]entity.Flight, error) {
	return s.flightRepo.ListByOrigin(ctx, origin)
}

// ListByDestination returns flights arriving at the destination code.
func (s *FlightService) ListByDestination(ctx context.Context, destination string) ([]entity.Flight, error) {
	return s.flightRepo.ListByDestination(ctx, destination)
}
