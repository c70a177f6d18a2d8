package entity

import (
	"time"
)

// Flight represents a scheduled flight. Pilot and airline are identifier
// references resolved through their repositories, not embedded records.
type Flight struct {
	ID                 uint         `json:"id"`
	PilotID            uint         `json:"pilotId"`
	AirlineID          uint         `json:"airlineId"`
	Code               string       `json:"code"`
	Origin             string       `json:"origin"`
	Destination        string       `json:"destination"`
	ScheduledDeparture time.Time    `json:"scheduledDeparture"`
	ScheduledArrival   time.Time    `json:"scheduledArrival"`
	ActualDeparture    *time.Time   `json:"actualDeparture,omitempty"`
	ActualArrival      *time.Time   `json:"actualArrival,omitempty"`
	CancelReason       string       `json:"cancelReason,omitempty"`
	Status             FlightStatus `json:"status"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}
