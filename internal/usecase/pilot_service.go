package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"airport-registry-service/internal/domain/entity"
	"airport-registry-service/internal/domain/repository"
	"airport-registry-service/pkg/apperror"
	"airport-registry-service/pkg/logger"
	"airport-registry-service/pkg/taxid"
)

// registrationPrefix is the fixed prefix of generated registration numbers,
// followed by the current year and the zero-padded store id.
const registrationPrefix = "PIL"

// PilotService handles pilot registration and lifecycle.
type PilotService struct {
	pilotRepo repository.PilotRepository
	logger    logger.Logger
}

// NewPilotService creates a new pilot service.
func NewPilotService(pilotRepo repository.PilotRepository, logger logger.Logger) *PilotService {
	return &PilotService{
		pilotRepo: pilotRepo,
		logger:    logger,
	}
}

// List returns every registered pilot.
func (s *PilotService) List(ctx context.Context) ([]entity.Pilot, error) {
	return s.pilotRepo.FindAll(ctx)
}

// GetByPersonalID returns the pilot with the personal identifier, or nil
// when none matches.
func (s *PilotService) GetByPersonalID(ctx context.Context, personalID string) (*entity.Pilot, error) {
	return s.pilotRepo.FindByPersonalID(ctx, personalID)
}

// GetByRegistrationNumber returns the pilot with the registration number, or
// nil when none matches.
func (s *PilotService) GetByRegistrationNumber(ctx context.Context, registration string) (*entity.Pilot, error) {
	return s.pilotRepo.FindByRegistrationNumber(ctx, registration)
}

// Create validates and persists a new pilot. The personal identifier is
// normalized to digits before validation. When no registration number is
// supplied, the record is saved twice: once to obtain the store-assigned id
// and once with the registration number derived from it.
func (s *PilotService) Create(ctx context.Context, pilot *entity.Pilot) (*entity.Pilot, error) {
	if strings.TrimSpace(pilot.Name) == "" {
		return nil, apperror.Validation("pilot name is required")
	}
	if strings.TrimSpace(pilot.PersonalID) == "" {
		return nil, apperror.Validation("personal identifier is required")
	}

	pilot.PersonalID = taxid.Normalize(pilot.PersonalID)

	if !taxid.IsValidPersonalID(pilot.PersonalID) {
		return nil, apperror.Validation("invalid personal identifier")
	}

	exists, err := s.pilotRepo.ExistsByPersonalID(ctx, pilot.PersonalID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("personal identifier already registered")
	}

	generate := strings.TrimSpace(pilot.RegistrationNumber) == ""
	if generate {
		pilot.RegistrationNumber = "TEMP"
	}

	// First save obtains the store-assigned id the registration number is
	// derived from.
	if err := s.pilotRepo.Save(ctx, pilot); err != nil {
		return nil, err
	}

	if generate {
		pilot.RegistrationNumber = fmt.Sprintf("%s%d%04d", registrationPrefix, time.Now().Year(), pilot.ID)
		if err := s.pilotRepo.Save(ctx, pilot); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Pilot registered", "pilotId", pilot.ID, "registration", pilot.RegistrationNumber)
	return pilot, nil
}

// Delete removes a pilot by id. A missing record is a silent no-op.
func (s *PilotService) Delete(ctx context.Context, id uint) error {
	return s.pilotRepo.DeleteByID(ctx, id)
}

// Update mutates the license-renewal date and status of an existing pilot.
// A missing record yields an empty result, not a fault.
func (s *PilotService) Update(ctx context.Context, id uint, updated *entity.Pilot) (*entity.Pilot, error) {
	pilot, err := s.pilotRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pilot == nil {
		return nil, nil
	}

	pilot.LicenseRenewal = updated.LicenseRenewal
	pilot.Status = updated.Status

	if err := s.pilotRepo.Save(ctx, pilot); err != nil {
		return nil, err
	}
	return pilot, nil
}
