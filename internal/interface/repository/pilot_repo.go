package repository

import (
	"context"
	"errors"
	"time"

	"airport-registry-service/internal/domain/entity"
	"airport-registry-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormPilotRepository implements the PilotRepository interface.
type GormPilotRepository struct {
	db *gorm.DB
}

// NewGormPilotRepository creates a new GORM pilot repository.
func NewGormPilotRepository(db *gorm.DB) repository.PilotRepository {
	return &GormPilotRepository{
		db: db,
	}
}

// Pilots GORM model for database mapping.
type Pilots struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"column:name;size:150"`
	Age                int
	Gender             string `gorm:"column:gender;size:1"`
	PersonalID         string `gorm:"column:personal_id;size:11;uniqueIndex"`
	LicenseRenewal     *time.Time
	RegistrationNumber string `gorm:"column:registration_number;size:20;uniqueIndex"`
	Qualification      string `gorm:"column:qualification;size:50"`
	Status             string `gorm:"column:status;size:20"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName overrides the default table name.
func (Pilots) TableName() string {
	return "m_pilots"
}

func (m *Pilots) toEntity() *entity.Pilot {
	return &entity.Pilot{
		ID:                 m.ID,
		Name:               m.Name,
		Age:                m.Age,
		Gender:             m.Gender,
		PersonalID:         m.PersonalID,
		LicenseRenewal:     m.LicenseRenewal,
		RegistrationNumber: m.RegistrationNumber,
		Qualification:      m.Qualification,
		Status:             entity.PilotStatus(m.Status),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func pilotModel(p *entity.Pilot) *Pilots {
	return &Pilots{
		ID:                 p.ID,
		Name:               p.Name,
		Age:                p.Age,
		Gender:             p.Gender,
		PersonalID:         p.PersonalID,
		LicenseRenewal:     p.LicenseRenewal,
		RegistrationNumber: p.RegistrationNumber,
		Qualification:      p.Qualification,
		Status:             string(p.Status),
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// FindByID finds a pilot by id.
func (r *GormPilotRepository) FindByID(ctx context.Context, id uint) (*entity.Pilot, error) {
	var pilot Pilots
	result := r.db.WithContext(ctx).First(&pilot, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return pilot.toEntity(), nil
}

// FindByPersonalID finds a pilot by personal identifier.
func (r *GormPilotRepository) FindByPersonalID(ctx context.Context, personalID string) (*entity.Pilot, error) {
	var pilot Pilots
	result := r.db.WithContext(ctx).Where("personal_id = ?", personalID).First(&pilot)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return pilot.toEntity(), nil
}

// FindByRegistrationNumber finds a pilot by registration number.
func (r *GormPilotRepository) FindByRegistrationNumber(ctx context.Context, registration string) (*entity.Pilot, error) {
	var pilot Pilots
	result := r.db.WithContext(ctx).Where("registration_number = ?", registration).First(&pilot)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return pilot.toEntity(), nil
}

// ExistsByPersonalID reports whether a pilot with the personal identifier
// exists.
func (r *GormPilotRepository) ExistsByPersonalID(ctx context.Context, personalID string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&Pilots{}).Where("personal_id = ?", personalID).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// FindAll lists every pilot.
func (r *GormPilotRepository) FindAll(ctx context.Context) ([]entity.Pilot, error) {
	var models []Pilots
	result := r.db.WithContext(ctx).Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	pilots := make([]entity.Pilot, 0, len(models))
	for i := range models {
		pilots = append(pilots, *models[i].toEntity())
	}
	return pilots, nil
}

// Save inserts or fully overwrites a pilot, assigning the id on insert.
func (r *GormPilotRepository) Save(ctx context.Context, pilot *entity.Pilot) error {
	model := pilotModel(pilot)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}

	pilot.ID = model.ID
	pilot.CreatedAt = model.CreatedAt
	pilot.UpdatedAt = model.UpdatedAt
	return nil
}

// DeleteByID deletes a pilot by id.
func (r *GormPilotRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Pilots{}, id).Error
}
