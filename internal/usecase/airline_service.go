package usecase

import (
	"context"

	"airport-registry-service/internal/domain/entity"
	"airport-registry-service/internal/domain/repository"
	"airport-registry-service/pkg/apperror"
	"airport-registry-service/pkg/logger"
	"airport-registry-service/pkg/taxid"
)

// AirlineService handles airline registration and lifecycle.
type AirlineService struct {
	airlineRepo repository.AirlineRepository
	logger      logger.Logger
}

// NewAirlineService creates a new airline service.
func NewAirlineService(airlineRepo repository.AirlineRepository, logger logger.Logger) *AirlineService {
	return &AirlineService{
		airlineRepo: airlineRepo,
		logger:      logger,
	}
}

// List returns every registered airline.
func (s *AirlineService) List(ctx context.Context) ([]entity.Airline, error) {
	return s.airlineRepo.FindAll(ctx)
}

// GetByName returns the airline with the display name.
func (s *AirlineService) GetByName(ctx context.Context, name string) (*entity.Airline, error) {
	airline, err := s.airlineRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if airline == nil {
		return nil, apperror.NotFound("airline not found")
	}
	return airline, nil
}

// GetByFiscalID returns the airline with the fiscal identifier.
func (s *AirlineService) GetByFiscalID(ctx context.Context, fiscalID string) (*entity.Airline, error) {
	airline, err := s.airlineRepo.FindByFiscalID(ctx, fiscalID)
	if err != nil {
		return nil, err
	}
	if airline == nil {
		return nil, apperror.NotFound("airline not found")
	}
	return airline, nil
}

// Create validates the fiscal identifier, enforces its uniqueness, and
// persists the airline.
func (s *AirlineService) Create(ctx context.Context, airline *entity.Airline) (*entity.Airline, error) {
	if !taxid.IsValidCompanyID(airline.FiscalID) {
		return nil, apperror.Validation("invalid fiscal identifier")
	}

	exists, err := s.airlineRepo.ExistsByFiscalID(ctx, airline.FiscalID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("fiscal identifier already registered")
	}

	if err := s.airlineRepo.Save(ctx, airline); err != nil {
		return nil, err
	}

	s.logger.Info("Airline registered", "airlineId", airline.ID, "name", airline.Name)
	return airline, nil
}

// Delete removes an airline by id, failing when the record does not exist.
func (s *AirlineService) Delete(ctx context.Context, id uint) error {
	exists, err := s.airlineRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NotFound("airline not found")
	}
	return s.airlineRepo.DeleteByID(ctx, id)
}

// Update mutates the status of an existing airline. Only the status field is
// written; everything else on the record is kept.
func (s *AirlineService) Update(ctx context.Context, id uint, updated *entity.Airline) (*entity.Airline, error) {
	airline, err := s.airlineRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if airline == nil {
		return nil, apperror.NotFound("airline not found")
	}

	airline.Status = updated.Status

	if err := s.airlineRepo.Save(ctx, airline); err != nil {
		return nil, err
	}
	return airline, nil
}
