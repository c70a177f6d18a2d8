package entity

import (
	"time"
)

// Pilot represents a pilot entity. PersonalID is stored digits-only; the
// registration number is assigned by the pilot service on creation.
type Pilot struct {
	ID                 uint        `json:"id"`
	Name               string      `json:"name"`
	Age                int         `json:"age"`
	Gender             string      `json:"gender"`
	PersonalID         string      `json:"personalId"`
	LicenseRenewal     *time.Time  `json:"licenseRenewal,omitempty"`
	RegistrationNumber string      `json:"registrationNumber"`
	Qualification      string      `json:"qualification"`
	Status             PilotStatus `json:"status"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}
