package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airport-registry-service/internal/domain/entity"
	"airport-registry-service/pkg/apperror"
	"airport-registry-service/pkg/logger"
)

func newAirlineService() (*AirlineService, *memAirlineRepo) {
	repo := newMemAirlineRepo()
	return NewAirlineService(repo, logger.NewNop()), repo
}

func TestAirlineCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("registers an airline with a valid fiscal identifier", func(t *testing.T) {
		service, _ := newAirlineService()

		created, err := service.Create(ctx, &entity.Airline{
			Name:     "Linhas Azuis",
			FiscalID: "40510225000102",
			Status:   entity.AirlineActive,
		})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
	})

	t.Run("rejects an invalid fiscal identifier", func(t *testing.T) {
		service, _ := newAirlineService()

		_, err := service.Create(ctx, &entity.Airline{Name: "Linhas Azuis", FiscalID: "40510225000103"})
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
		assert.EqualError(t, err, "invalid fiscal identifier")
	})

	t.Run("rejects a duplicate fiscal identifier", func(t *testing.T) {
		service, _ := newAirlineService()

		_, err := service.Create(ctx, &entity.Airline{Name: "Linhas Azuis", FiscalID: "40510225000102"})
		require.NoError(t, err)

		_, err = service.Create(ctx, &entity.Airline{Name: "Voa Mais", FiscalID: "40510225000102"})
		require.Error(t, err)
		assert.True(t, apperror.IsConflict(err))
		assert.EqualError(t, err, "fiscal identifier already registered")
	})
}

func TestAirlineUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("mutates only the status", func(t *testing.T) {
		service, _ := newAirlineService()

		created, err := service.Create(ctx, &entity.Airline{
			Name:     "Linhas Azuis",
			FiscalID: "40510225000102",
			Status:   entity.AirlineActive,
		})
		require.NoError(t, err)

		updated, err := service.Update(ctx, created.ID, &entity.Airline{
			Name:   "Should Not Change",
			Status: entity.AirlineInactive,
		})
		require.NoError(t, err)
		assert.Equal(t, "Linhas Azuis", updated.Name)
		assert.Equal(t, entity.AirlineInactive, updated.Status)
	})

	t.Run("faults on a missing airline, unlike pilot update", func(t *testing.T) {
		service, _ := newAirlineService()

		_, err := service.Update(ctx, 999, &entity.Airline{Status: entity.AirlineInactive})
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
		assert.EqualError(t, err, "airline not found")
	})
}

func TestAirlineDelete(t *testing.T) {
	ctx := context.Background()
	service, repo := newAirlineService()

	created, err := service.Create(ctx, &entity.Airline{
		Name:     "Linhas Azuis",
		FiscalID: "40510225000102",
		Status:   entity.AirlineActive,
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.ID))

	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	err = service.Delete(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestAirlineLookups(t *testing.T) {
	ctx := context.Background()
	service, _ := newAirlineService()

	created, err := service.Create(ctx, &entity.Airline{
		Name:     "Linhas Azuis",
		FiscalID: "40510225000102",
		Status:   entity.AirlineActive,
	})
	require.NoError(t, err)

	byName, err := service.GetByName(ctx, "Linhas Azuis")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byFiscalID, err := service.GetByFiscalID(ctx, "40510225000102")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byFiscalID.ID)

	_, err = service.GetByName(ctx, "Unknown")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	_, err = service.GetByFiscalID(ctx, "00000000000191")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	all, err := service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
