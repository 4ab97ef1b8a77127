package domain

import (
	"fmt"
	"time"
)

type Flight struct {
	ID                   int64     `json:"id"`
	AirlineCompanyID     int64     `json:"airline_company_id"`
	OriginCountryID      int64     `json:"origin_country_id"`
	DestinationCountryID int64     `json:"destination_country_id"`
	DepartureTime        time.Time `json:"departure_time"`
	LandingTime          time.Time `json:"landing_time"`
	RemainingTickets     int       `json:"remaining_tickets"`
}

func (f Flight) Validate() error {
	if f.AirlineCompanyID == 0 {
		return fmt.Errorf("%w: airline_company_id is required", ErrValidation)
	}
	if f.OriginCountryID == 0 {
		return fmt.Errorf("%w: origin_country_id is required", ErrValidation)
	}
	if f.DestinationCountryID == 0 {
		return fmt.Errorf("%w: destination_country_id is required", ErrValidation)
	}
	if f.OriginCountryID == f.DestinationCountryID {
		return fmt.Errorf("%w: origin and destination countries must differ", ErrValidation)
	}
	if f.DepartureTime.IsZero() || f.LandingTime.IsZero() {
		return fmt.Errorf("%w: departure_time and landing_time are required", ErrValidation)
	}
	if !f.DepartureTime.Before(f.LandingTime) {
		return fmt.Errorf("%w: departure_time must precede landing_time", ErrValidation)
	}
	if f.RemainingTickets < 0 {
		return fmt.Errorf("%w: remaining_tickets must not be negative", ErrValidation)
	}
	return nil
}

func (f Flight) WithID(id int64) Flight {
	f.ID = id
	return f
}

// FlightDirection selects which timestamp a near-now window applies to.
type FlightDirection string

const (
	DirectionArrivals   FlightDirection = "arrivals"
	DirectionDepartures FlightDirection = "departures"
)

func ParseFlightDirection(s string) (FlightDirection, error) {
	switch s {
	case string(DirectionArrivals):
		return DirectionArrivals, nil
	case string(DirectionDepartures):
		return DirectionDepartures, nil
	default:
		return "", fmt.Errorf("%w: direction must be %q or %q", ErrValidation, DirectionArrivals, DirectionDepartures)
	}
}
