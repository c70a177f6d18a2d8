package repository

import (
	"context"

	"airport-registry-service/internal/domain/entity"
)

// PilotRepository defines the record-store contract for pilots. Lookup
// methods return (nil, nil) when no record matches.
type PilotRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Pilot, error)
	FindByPersonalID(ctx context.Context, personalID string) (*entity.Pilot, error)
	FindByRegistrationNumber(ctx context.Context, registration string) (*entity.Pilot, error)
	ExistsByPersonalID(ctx context.Context, personalID string) (bool, error)
	FindAll(ctx context.Context) ([]entity.Pilot, error)
	Save(ctx context.Context, pilot *entity.Pilot) error
	DeleteByID(ctx context.Context, id uint) error
}
