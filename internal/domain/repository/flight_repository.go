package repository

import (
	"context"

	"airport-registry-service/internal/domain/entity"
)

// FlightRepository defines the record-store contract for flights. FindByID
// returns (nil, nil) when no record matches.
type FlightRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Flight, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	FindAll(ctx context.Context) ([]entity.Flight, error)
	ListByStatus(ctx context.Context, status entity.FlightStatus) ([]entity.Flight, error)
	ListByPilot(ctx context.Context, pilotID uint) ([]entity.Flight, error)
	ListByAirline(ctx context.Context, airlineID uint) ([]entity.Flight, error)
	ListByOrigin(ctx context.Context, origin string) ([]entity.Flight, error)
	ListByDestination(ctx context.Context, destination string) ([]entity.Flight, error)
	Save(ctx context.Context, flight *entity.Flight) error
	DeleteByID(ctx context.Context, id uint) error
}
