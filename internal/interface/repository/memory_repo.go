package repository

import (
	"context"
	"sync"

	"airport-registry-service/internal/domain/entity"
	"airport-registry-service/internal/domain/repository"
)

// In-memory repository implementations. They satisfy the same contracts as
// the GORM repositories and back tests and local development without a
// database. Entities are stored by value so callers never share state with
// the store.

// MemoryAirlineRepository implements AirlineRepository over a map.
type MemoryAirlineRepository struct {
	mu       sync.RWMutex
	nextID   uint
	airlines map[uint]entity.Airline
}

// NewMemoryAirlineRepository creates an empty in-memory airline repository.
func NewMemoryAirlineRepository() *MemoryAirlineRepository {
	return &MemoryAirlineRepository{
		nextID:   1,
		airlines: make(map[uint]entity.Airline),
	}
}

// FindByID finds an airline by id.
func (r *MemoryAirlineRepository) FindByID(_ context.Context, id uint) (*entity.Airline, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if a, ok := r.airlines[id]; ok {
		return &a, nil
	}
	return nil, nil
}

// FindByName finds an airline by display name.
func (r *MemoryAirlineRepository) FindByName(_ context.Context, name string) (*entity.Airline, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.airlines {
		if a.Name == name {
			return &a, nil
		}
	}
	return nil, nil
}

// FindByFiscalID finds an airline by fiscal identifier.
func (r *MemoryAirlineRepository) FindByFiscalID(_ context.Context, fiscalID string) (*entity.Airline, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.airlines {
		if a.FiscalID == fiscalID {
			return &a, nil
		}
	}
	return nil, nil
}

// ExistsByFiscalID reports whether an airline with the fiscal identifier
// exists.
func (r *MemoryAirlineRepository) ExistsByFiscalID(ctx context.Context, fiscalID string) (bool, error) {
	airline, err := r.FindByFiscalID(ctx, fiscalID)
	return airline != nil, err
}

// ExistsByID reports whether an airline with the id exists.
func (r *MemoryAirlineRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	airline, err := r.FindByID(ctx, id)
	return airline != nil, err
}

// FindAll lists every airline.
func (r *MemoryAirlineRepository) FindAll(_ context.Context) ([]entity.Airline, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]entity.Airline, 0, len(r.airlines))
	for _, a := range r.airlines {
		all = append(all, a)
	}
	return all, nil
}

// Save inserts or fully overwrites an airline, assigning the id on insert.
func (r *MemoryAirlineRepository) Save(_ context.Context, airline *entity.Airline) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if airline.ID == 0 {
		airline.ID = r.nextID
		r.nextID++
	}
	r.airlines[airline.ID] = *airline
	return nil
}

// DeleteByID deletes an airline by id.
func (r *MemoryAirlineRepository) DeleteByID(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.airlines, id)
	return nil
}

// MemoryPilotRepository implements PilotRepository over a map.
type MemoryPilotRepository struct {
	mu     sync.RWMutex
	nextID uint
	pilots map[uint]entity.Pilot
}

// NewMemoryPilotRepository creates an empty in-memory pilot repository.
func NewMemoryPilotRepository() *MemoryPilotRepository {
	return &MemoryPilotRepository{
		nextID: 1,
		pilots: make(map[uint]entity.Pilot),
	}
}

// FindByID finds a pilot by id.
func (r *MemoryPilotRepository) FindByID(_ context.Context, id uint) (*entity.Pilot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.pilots[id]; ok {
		return &p, nil
	}
	return nil, nil
}

// FindByPersonalID finds a pilot by personal identifier.
func (r *MemoryPilotRepository) FindByPersonalID(_ context.Context, personalID string) (*entity.Pilot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.pilots {
		if p.PersonalID == personalID {
			return &p, nil
		}
	}
	return nil, nil
}

// FindByRegistrationNumber finds a pilot by registration number.
func (r *MemoryPilotRepository) FindByRegistrationNumber(_ context.Context, registration string) (*entity.Pilot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.pilots {
		if p.RegistrationNumber == registration {
			return &p, nil
		}
	}
	return nil, nil
}

// ExistsByPersonalID reports whether a pilot with the personal identifier
// exists.
func (r *MemoryPilotRepository) ExistsByPersonalID(ctx context.Context, personalID string) (bool, error) {
	pilot, err := r.FindByPersonalID(ctx, personalID)
	return pilot != nil, err
}

// FindAll lists every pilot.
func (r *MemoryPilotRepository) FindAll(_ context.Context) ([]entity.Pilot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]entity.Pilot, 0, len(r.pilots))
	for _, p := range r.pilots {
		all = append(all, p)
	}
	return all, nil
}

// Save inserts or fully overwrites a pilot, assigning the id on insert.
func (r *MemoryPilotRepository) Save(_ context.Context, pilot *entity.Pilot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if pilot.ID == 0 {
		pilot.ID = r.nextID
		r.nextID++
	}
	r.pilots[pilot.ID] = *pilot
	return nil
}

// DeleteByID deletes a pilot by id.
func (r *MemoryPilotRepository) DeleteByID(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pilots, id)
	return nil
}

// MemoryFlightRepository implements FlightRepository over a map.
type MemoryFlightRepository struct {
	mu      sync.RWMutex
	nextID  uint
	flights map[uint]entity.Flight
}

// NewMemoryFlightRepository creates an empty in-memory flight repository.
func NewMemoryFlightRepository() *MemoryFlightRepository {
	return &MemoryFlightRepository{
		nextID:  1,
		flights: make(map[uint]entity.Flight),
	}
}

// FindByID finds a flight by id.
func (r *MemoryFlightRepository) FindByID(_ context.Context, id uint) (*entity.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if f, ok := r.flights[id]; ok {
		return &f, nil
	}
	return nil, nil
}

// ExistsByCode reports whether a flight with the code exists.
func (r *MemoryFlightRepository) ExistsByCode(_ context.Context, code string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.flights {
		if f.Code == code {
			return true, nil
		}
	}
	return false, nil
}

// ExistsByID reports whether a flight with the id exists.
func (r *MemoryFlightRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	flight, err := r.FindByID(ctx, id)
	return flight != nil, err
}

// FindAll lists every flight.
func (r *MemoryFlightRepository) FindAll(_ context.Context) ([]entity.Flight, error) {
	return r.filter(func(entity.Flight) bool { return true }), nil
}

// ListByStatus lists flights with the exact status.
func (r *MemoryFlightRepository) ListByStatus(_ context.Context, status entity.FlightStatus) ([]entity.Flight, error) {
	return r.filter(func(f entity.Flight) bool { return f.Status == status }), nil
}

// ListByPilot lists flights assigned to the pilot.
func (r *MemoryFlightRepository) ListByPilot(_ context.Context, pilotID uint) ([]entity.Flight, error) {
	return r.filter(func(f entity.Flight) bool { return f.PilotID == pilotID }), nil
}

// ListByAirline lists flights operated by the airline.
func (r *MemoryFlightRepository) ListByAirline(_ context.Context, airlineID uint) ([]entity.Flight, error) {
	return r.filter(func(f entity.Flight) bool { return f.AirlineID == airlineID }), nil
}

// ListByOrigin lists flights departing from the origin code.
func (r *MemoryFlightRepository) ListByOrigin(_ context.Context, origin string) ([]entity.Flight, error) {
	return r.filter(func(f entity.Flight) bool { return f.Origin == origin }), nil
}

// ListByDestination lists flights arriving at the destination code.
func (r *MemoryFlightRepository) ListByDestination(_ context.Context, destination string) ([]entity.Flight, error) {
	return r.filter(func(f entity.Flight) bool { return f.Destination == destination }), nil
}

func (r *MemoryFlightRepository) filter(keep func(entity.Flight) bool) []entity.Flight {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := make([]entity.Flight, 0, len(r.flights))
	for _, f := range r.flights {
		if keep(f) {
			matched = append(matched, f)
		}
	}
	return matched
}

// Save inserts or fully overwrites a flight, assigning the id on insert.
func (r *MemoryFlightRepository) Save(_ context.Context, flight *entity.Flight) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if flight.ID == 0 {
		flight.ID = r.nextID
		r.nextID++
	}
	r.flights[flight.ID] = *flight
	return nil
}

// DeleteByID deletes a flight by id.
func (r *MemoryFlightRepository) DeleteByID(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.flights, id)
	return nil
}

// Interface conformance checks.
var (
	_ repository.AirlineRepository = (*MemoryAirlineRepository)(nil)
	_ repository.PilotRepository   = (*MemoryPilotRepository)(nil)
	_ repository.FlightRepository  = (*MemoryFlightRepository)(nil)
)
