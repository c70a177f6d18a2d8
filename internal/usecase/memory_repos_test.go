package usecase

import (
	"context"

	"airport-registry-service/internal/domain/entity"
	storerepo "airport-registry-service/internal/interface/repository"
)

// The service tests run against the in-memory repository implementations.
// The pilot repository is wrapped to count writes so the two-phase save of
// registration-number generation stays observable.

type memAirlineRepo = storerepo.MemoryAirlineRepository

func newMemAirlineRepo() *memAirlineRepo {
	return storerepo.NewMemoryAirlineRepository()
}

type memFlightRepo = storerepo.MemoryFlightRepository

func newMemFlightRepo() *memFlightRepo {
	return storerepo.NewMemoryFlightRepository()
}

type memPilotRepo struct {
	*storerepo.MemoryPilotRepository
	saves int
}

func newMemPilotRepo() *memPilotRepo {
	return &memPilotRepo{MemoryPilotRepository: storerepo.NewMemoryPilotRepository()}
}

func (r *memPilotRepo) Save(ctx context.Context, pilot *entity.Pilot) error {
	r.saves++
	return r.MemoryPilotRepository.Save(ctx, pilot)
}
