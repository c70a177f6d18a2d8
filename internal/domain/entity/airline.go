package entity

import (
	"time"
)

// Airline represents an airline entity. Flights reference it by id; there is
// no owned collection on this side.
type Airline struct {
	ID           uint          `json:"id"`
	Name         string        `json:"name"`
	FiscalID     string        `json:"fiscalId"`
	FoundingDate *time.Time    `json:"foundingDate,omitempty"`
	Insured      bool          `json:"insured"`
	Status       AirlineStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}
