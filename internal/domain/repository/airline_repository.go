package repository

import (
	"context"

	"airport-registry-service/internal/domain/entity"
)

// AirlineRepository defines the record-store contract for airlines. Lookup
// methods return (nil, nil) when no record matches.
type AirlineRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Airline, error)
	FindByName(ctx context.Context, name string) (*entity.Airline, error)
	FindByFiscalID(ctx context.Context, fiscalID string) (*entity.Airline, error)
	ExistsByFiscalID(ctx context.Context, fiscalID string) (bool, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	FindAll(ctx context.Context) ([]entity.Airline, error)
	Save(ctx context.Context, airline *entity.Airline) error
	DeleteByID(ctx context.Context, id uint) error
}
