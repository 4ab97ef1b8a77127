package domain

import "fmt"

// Ticket links a customer to a flight. A customer holds at most one
// ticket per flight, enforced by the (flight_id, customer_id) unique key.
type Ticket struct {
	ID         int64 `json:"id"`
	FlightID   int64 `json:"flight_id"`
	CustomerID int64 `json:"customer_id"`
}

func (t Ticket) Validate() error {
	if t.FlightID == 0 {
		return fmt.Errorf("%w: flight_id is required", ErrValidation)
	}
	if t.CustomerID == 0 {
		return fmt.Errorf("%w: customer_id is required", ErrValidation)
	}
	return nil
}

func (t Ticket) WithID(id int64) Ticket {
	t.ID = id
	return t
}
