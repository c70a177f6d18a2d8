package repository

import (
	"context"
	"errors"
	"time"

	"airport-registry-service/internal/domain/entity"
	"airport-registry-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAirlineRepository implements the AirlineRepository interface.
type GormAirlineRepository struct {
	db *gorm.DB
}

// NewGormAirlineRepository creates a new GORM airline repository.
func NewGormAirlineRepository(db *gorm.DB) repository.AirlineRepository {
	return &GormAirlineRepository{
		db: db,
	}
}

// Airlines GORM model for database mapping.
type Airlines struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"column:name;size:150"`
	FiscalID     string `gorm:"column:fiscal_id;size:20;uniqueIndex"`
	FoundingDate *time.Time
	Insured      bool
	Status       string `gorm:"column:status;size:20"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the default table name.
func (Airlines) TableName() string {
	return "m_airlines"
}

func (m *Airlines) toEntity() *entity.Airline {
	return &entity.Airline{
		ID:           m.ID,
		Name:         m.Name,
		FiscalID:     m.FiscalID,
		FoundingDate: m.FoundingDate,
		Insured:      m.Insured,
		Status:       entity.AirlineStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func airlineModel(a *entity.Airline) *Airlines {
	return &Airlines{
		ID:           a.ID,
		Name:         a.Name,
		FiscalID:     a.FiscalID,
		FoundingDate: a.FoundingDate,
		Insured:      a.Insured,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// FindByID finds an airline by id.
func (r *GormAirlineRepository) FindByID(ctx context.Context, id uint) (*entity.Airline, error) {
	var airline Airlines
	result := r.db.WithContext(ctx).First(&airline, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return airline.toEntity(), nil
}

// FindByName finds an airline by display name.
func (r *GormAirlineRepository) FindByName(ctx context.Context, name string) (*entity.Airline, error) {
	var airline Airlines
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&airline)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return airline.toEntity(), nil
}

// FindByFiscalID finds an airline by fiscal identifier.
func (r *GormAirlineRepository) FindByFiscalID(ctx context.Context, fiscalID string) (*entity.Airline, error) {
	var airline Airlines
	result := r.db.WithContext(ctx).Where("fiscal_id = ?", fiscalID).First(&airline)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return airline.toEntity(), nil
}

// ExistsByFiscalID reports whether an airline with the fiscal identifier
// exists.
func (r *GormAirlineRepository) ExistsByFiscalID(ctx context.Context, fiscalID string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&Airlines{}).Where("fiscal_id = ?", fiscalID).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// ExistsByID reports whether an airline with the id exists.
func (r *GormAirlineRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&Airlines{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// FindAll lists every airline.
func (r *GormAirlineRepository) FindAll(ctx context.Context) ([]entity.Airline, error) {
	var models []Airlines
	result := r.db.WithContext(ctx).Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	airlines := make([]entity.Airline, 0, len(models))
	for i := range models {
		airlines = append(airlines, *models[i].toEntity())
	}
	return airlines, nil
}

// Save inserts or fully overwrites an airline, assigning the id on insert.
func (r *GormAirlineRepository) Save(ctx context.Context, airline *entity.Airline) error {
	model := airlineModel(airline)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}

	airline.ID = model.ID
	airline.CreatedAt = model.CreatedAt
	airline.UpdatedAt = model.UpdatedAt
	return nil
}

// DeleteByID deletes an airline by id.
func (r *GormAirlineRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Airlines{}, id).Error
}
