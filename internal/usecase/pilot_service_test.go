package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airport-registry-service/internal/domain/entity"
	"airport-registry-service/pkg/apperror"
	"airport-registry-service/pkg/logger"
)

func newPilotService() (*PilotService, *memPilotRepo) {
	repo := newMemPilotRepo()
	return NewPilotService(repo, logger.NewNop()), repo
}

func TestPilotCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a pilot and derives the registration number", func(t *testing.T) {
		service, repo := newPilotService()

		created, err := service.Create(ctx, &entity.Pilot{
			Name:       "Maria Souza",
			PersonalID: "111.444.777-35",
			Status:     entity.PilotActive,
		})
		require.NoError(t, err)

		assert.Equal(t, "11144477735", created.PersonalID)
		assert.Equal(t, fmt.Sprintf("PIL%d%04d", time.Now().Year(), created.ID), created.RegistrationNumber)
		// Placeholder save plus the final write with the derived number.
		assert.Equal(t, 2, repo.saves)
	})

	t.Run("keeps a caller-supplied registration number with a single save", func(t *testing.T) {
		service, repo := newPilotService()

		created, err := service.Create(ctx, &entity.Pilot{
			Name:               "Maria Souza",
			PersonalID:         "11144477735",
			RegistrationNumber: "PIL20190007",
			Status:             entity.PilotActive,
		})
		require.NoError(t, err)
		assert.Equal(t, "PIL20190007", created.RegistrationNumber)
		assert.Equal(t, 1, repo.saves)
	})

	t.Run("requires a name", func(t *testing.T) {
		service, _ := newPilotService()

		_, err := service.Create(ctx, &entity.Pilot{Name: "  ", PersonalID: "11144477735"})
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
		assert.EqualError(t, err, "pilot name is required")
	})

	t.Run("requires a personal identifier", func(t *testing.T) {
		service, _ := newPilotService()

		_, err := service.Create(ctx, &entity.Pilot{Name: "Maria Souza"})
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
		assert.EqualError(t, err, "personal identifier is required")
	})

	t.Run("rejects an invalid identifier checksum", func(t *testing.T) {
		service, _ := newPilotService()

		_, err := service.Create(ctx, &entity.Pilot{Name: "Maria Souza", PersonalID: "11144477736"})
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
		assert.EqualError(t, err, "invalid personal identifier")
	})

	t.Run("rejects a duplicate identifier even when formatted differently", func(t *testing.T) {
		service, _ := newPilotService()

		_, err := service.Create(ctx, &entity.Pilot{Name: "Maria Souza", PersonalID: "11144477735"})
		require.NoError(t, err)

		_, err = service.Create(ctx, &entity.Pilot{Name: "Outra Pessoa", PersonalID: "111.444.777-35"})
		require.Error(t, err)
		assert.True(t, apperror.IsConflict(err))
		assert.EqualError(t, err, "personal identifier already registered")
	})
}

func TestPilotUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("mutates only renewal date and status", func(t *testing.T) {
		service, repo := newPilotService()

		created, err := service.Create(ctx, &entity.Pilot{
			Name:       "Maria Souza",
			PersonalID: "11144477735",
			Status:     entity.PilotActive,
		})
		require.NoError(t, err)

		renewal := time.Date(2027, 3, 15, 0, 0, 0, 0, time.UTC)
		updated, err := service.Update(ctx, created.ID, &entity.Pilot{
			Name:           "Should Not Change",
			LicenseRenewal: &renewal,
			Status:         entity.PilotExpired,
		})
		require.NoError(t, err)
		require.NotNil(t, updated)

		assert.Equal(t, "Maria Souza", updated.Name)
		assert.Equal(t, entity.PilotExpired, updated.Status)
		require.NotNil(t, updated.LicenseRenewal)
		assert.True(t, updated.LicenseRenewal.Equal(renewal))

		stored, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.PilotExpired, stored.Status)
	})

	t.Run("returns an empty result for a missing pilot", func(t *testing.T) {
		service, _ := newPilotService()

		updated, err := service.Update(ctx, 999, &entity.Pilot{Status: entity.PilotActive})
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestPilotDelete(t *testing.T) {
	ctx := context.Background()
	service, repo := newPilotService()

	created, err := service.Create(ctx, &entity.Pilot{
		Name:       "Maria Souza",
		PersonalID: "11144477735",
		Status:     entity.PilotActive,
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.ID))

	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	// Deleting a missing pilot is a silent no-op.
	assert.NoError(t, service.Delete(ctx, created.ID))
}

func TestPilotLookups(t *testing.T) {
	ctx := context.Background()
	service, _ := newPilotService()

	created, err := service.Create(ctx, &entity.Pilot{
		Name:       "Maria Souza",
		PersonalID: "11144477735",
		Status:     entity.PilotActive,
	})
	require.NoError(t, err)

	byID, err := service.GetByPersonalID(ctx, "11144477735")
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, created.ID, byID.ID)

	byRegistration, err := service.GetByRegistrationNumber(ctx, created.RegistrationNumber)
	require.NoError(t, err)
	require.NotNil(t, byRegistration)
	assert.Equal(t, created.ID, byRegistration.ID)

	missing, err := service.GetByPersonalID(ctx, "00000000000")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	all, err := service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
