package entity

// AirlineStatus is the closed set of airline operating states.
type AirlineStatus string

const (
	AirlineActive   AirlineStatus = "ACTIVE"
	AirlineInactive AirlineStatus = "INACTIVE"
)

// Valid reports whether s is a known airline status.
func (s AirlineStatus) Valid() bool {
	switch s {
	case AirlineActive, AirlineInactive:
		return true
	}
	return false
}

// PilotStatus is the closed set of pilot license states.
type PilotStatus string

const (
	PilotActive   PilotStatus = "ACTIVE"
	PilotInactive PilotStatus = "INACTIVE"
	PilotExpired  PilotStatus = "EXPIRED"
)

// Valid reports whether s is a known pilot status.
func (s PilotStatus) Valid() bool {
	switch s {
	case PilotActive, PilotInactive, PilotExpired:
		return true
	}
	return false
}

// FlightStatus is the closed set of flight lifecycle states. Only a few are
// reachable through service transitions; the rest arrive via raw updates.
type FlightStatus string

const (
	FlightScheduled FlightStatus = "SCHEDULED"
	FlightConfirmed FlightStatus = "CONFIRMED"
	FlightBoarding  FlightStatus = "BOARDING"
	FlightReady     FlightStatus = "READY"
	FlightTaxiing   FlightStatus = "TAXIING"
	FlightTakenOff  FlightStatus = "TAKEN_OFF"
	FlightInFlight  FlightStatus = "IN_FLIGHT"
	FlightLanded    FlightStatus = "LANDED"
	FlightAtGate    FlightStatus = "AT_GATE"
	FlightFinalized FlightStatus = "FINALIZED"
	FlightDelayed   FlightStatus = "DELAYED"
	FlightCancelled FlightStatus = "CANCELLED"
	FlightDiverted  FlightStatus = "DIVERTED"
	FlightHolding   FlightStatus = "HOLDING"
	FlightCompleted FlightStatus = "COMPLETED"
)

// Valid reports whether s is a known flight status.
func (s FlightStatus) Valid() bool {
	switch s {
	case FlightScheduled, FlightConfirmed, FlightBoarding, FlightReady,
		FlightTaxiing, FlightTakenOff, FlightInFlight, FlightLanded,
		FlightAtGate, FlightFinalized, FlightDelayed, FlightCancelled,
		FlightDiverted, FlightHolding, FlightCompleted:
		return true
	}
	return false
}
