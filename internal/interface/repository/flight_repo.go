package repository

import (
	"context"
	"errors"
	"time"

	"airport-registry-service/internal/domain/entity"
	"airport-registry-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormFlightRepository implements the FlightRepository interface.
type GormFlightRepository struct {
	db *gorm.DB
}

// NewGormFlightRepository creates a new GORM flight repository.
func NewGormFlightRepository(db *gorm.DB) repository.FlightRepository {
	return &GormFlightRepository{
		db: db,
	}
}

// Flights GORM model for database mapping.
type Flights struct {
	ID                 uint   `gorm:"primaryKey"`
	PilotID            uint   `gorm:"column:pilot_id;index"`
	AirlineID          uint   `gorm:"column:airline_id;index"`
	Code               string `gorm:"column:code;size:10;uniqueIndex"`
	Origin             string `gorm:"column:origin;size:4"`
	Destination        string `gorm:"column:destination;size:4"`
	ScheduledDeparture time.Time
	ScheduledArrival   time.Time
	ActualDeparture    *time.Time
	ActualArrival      *time.Time
	CancelReason       string `gorm:"column:cancel_reason;size:255"`
	Status             string `gorm:"column:status;size:20;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName overrides the default table name.
func (Flights) TableName() string {
	return "t_flights"
}

func (m *Flights) toEntity() *entity.Flight {
	return &entity.Flight{
		ID:                 m.ID,
		PilotID:            m.PilotID,
		AirlineID:          m.AirlineID,
		Code:               m.Code,
		Origin:             m.Origin,
		Destination:        m.Destination,
		ScheduledDeparture: m.ScheduledDeparture,
		ScheduledArrival:   m.ScheduledArrival,
		ActualDeparture:    m.ActualDeparture,
		ActualArrival:      m.ActualArrival,
		CancelReason:       m.CancelReason,
		Status:             entity.FlightStatus(m.Status),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func flightModel(f *entity.Flight) *Flights {
	return &Flights{
		ID:                 f.ID,
		PilotID:            f.PilotID,
		AirlineID:          f.AirlineID,
		Code:               f.Code,
		Origin:             f.Origin,
		Destination:        f.Destination,
		ScheduledDeparture: f.ScheduledDeparture,
		ScheduledArrival:   f.ScheduledArrival,
		ActualDeparture:    f.ActualDeparture,
		ActualArrival:      f.ActualArrival,
		CancelReason:       f.CancelReason,
		Status:             string(f.Status),
		CreatedAt:          f.CreatedAt,
		UpdatedAt:          f.UpdatedAt,
	}
}

func (r *GormFlightRepository) listWhere(ctx context.Context, query string, args ...interface{}) ([]entity.Flight, error) {
	var models []Flights
	tx := r.db.WithContext(ctx)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	result := tx.Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	flights := make([]entity.Flight, 0, len(models))
	for i := range models {
		flights = append(flights, *models[i].toEntity())
	}
	return flights, nil
}

// FindByID finds a flight by id.
func (r *GormFlightRepository) FindByID(ctx context.Context, id uint) (*entity.Flight, error) {
	var flight Flights
	result := r.db.WithContext(ctx).First(&flight, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return flight.toEntity(), nil
}

// ExistsByCode reports whether a flight with the code exists.
func (r *GormFlightRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&Flights{}).Where("code = ?", code).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// ExistsByID reports whether a flight with the id exists.
func (r *GormFlightRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&Flights{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// FindAll lists every flight.
func (r *GormFlightRepository) FindAll(ctx context.Context) ([]entity.Flight, error) {
	return r.listWhere(ctx, "")
}

// ListByStatus lists flights with the exact status.
func (r *GormFlightRepository) ListByStatus(ctx context.Context, status entity.FlightStatus) ([]entity.Flight, error) {
	return r.listWhere(ctx, "status = ?", string(status))
}

// ListByPilot lists flights assigned to the pilot.
func (r *GormFlightRepository) ListByPilot(ctx context.Context, pilotID uint) ([]entity.Flight, error) {
	return r.listWhere(ctx, "pilot_id = ?", pilotID)
}

// ListByAirline lists flights operated by the airline.
func (r *GormFlightRepository) ListByAirline(ctx context.Context, airlineID uint) ([]entity.Flight, error) {
	return r.listWhere(ctx, "airline_id = ?", airlineID)
}

// ListByOrigin lists flights departing from the origin code.
func (r *GormFlightRepository) ListByOrigin(ctx context.Context, origin string) ([]entity.Flight, error) {
	return r.listWhere(ctx, "origin = ?", origin)
}

// ListByDestination lists flights arriving at the destination code.
func (r *GormFlightRepository) ListByDestination(ctx context.Context, destination string) ([]entity.Flight, error) {
	return r.listWhere(ctx, "destination = ?", destination)
}

// Save inserts or fully overwrites a flight, assigning the id on insert.
func (r *GormFlightRepository) Save(ctx context.Context, flight *entity.Flight) error {
	model := flightModel(flight)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}

	flight.ID = model.ID
	flight.CreatedAt = model.CreatedAt
	flight.UpdatedAt = model.UpdatedAt
	return nil
}

// DeleteByID deletes a flight by id.
func (r *GormFlightRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Flights{}, id).Error
}
