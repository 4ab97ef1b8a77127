package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyway-app/skyway/internal/domain"
)

type TicketRepository interface {
	List(ctx context.Context) ([]domain.Ticket, error)
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	Add(ctx context.Context, ticket *domain.Ticket) error
	AddAll(ctx context.Context, tickets []domain.Ticket) error
	Update(ctx context.Context, id int64, ticket domain.Ticket) (*domain.Ticket, error)
	Remove(ctx context.Context, id int64) (*domain.Ticket, error)
	// FlightsForCustomerUser resolves the customer profile owning userID
	// and returns every flight reached through that customer's tickets,
	// all inside one transaction.
	FlightsForCustomerUser(ctx context.Context, userID int64) ([]domain.Flight, error)
}

const ticketColumns = `id, flight_id, customer_id`

type PGTicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) TicketRepository {
	return &PGTicketRepository{db: db}
}

func (r *PGTicketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, `SELECT `+ticketColumns+` FROM tickets`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.FlightID, &t.CustomerID); err != nil {
			return nil, translateErr(err)
		}
		tickets = append(tickets, t)
	}
	return tickets, translateErr(rows.Err())
}

func (r *PGTicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	row := r.db.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id=$1`, id)
	var t domain.Ticket
	if err := row.Scan(&t.ID, &t.FlightID, &t.CustomerID); err != nil {
		return nil, translateErr(err)
	}
	return &t, nil
}

// Add issues a ticket: the flight's remaining_tickets counter is
// decremented and the ticket row inserted in one transaction. A sold-out
// flight rejects the sale.
func (r *PGTicketRepository) Add(ctx context.Context, ticket *domain.Ticket) error {
	if err := ticket.Validate(); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return translateErr(err)
	}
	defer tx.Rollback(ctx)

	if err := issueTicket(ctx, tx, ticket); err != nil {
		return err
	}
	return translateErr(tx.Commit(ctx))
}

func (r *PGTicketRepository) AddAll(ctx context.Context, tickets []domain.Ticket) error {
	for i := range tickets {
		if err := tickets[i].Validate(); err != nil {
			return err
		}
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return translateErr(err)
	}
	defer tx.Rollback(ctx)

	for i := range tickets {
		if err := issueTicket(ctx, tx, &tickets[i]); err != nil {
			return err
		}
	}
	return translateErr(tx.Commit(ctx))
}

func (r *PGTicketRepository) Update(ctx context.Context, id int64, ticket domain.Ticket) (*domain.Ticket, error) {
	ticket = ticket.WithID(id)
	if err := ticket.Validate(); err != nil {
		return nil, err
	}
	row := r.db.QueryRow(ctx, `UPDATE tickets SET flight_id=$2, customer_id=$3 WHERE id=$1 RETURNING `+ticketColumns,
		ticket.ID, ticket.FlightID, ticket.CustomerID)
	var updated domain.Ticket
	if err := row.Scan(&updated.ID, &updated.FlightID, &updated.CustomerID); err != nil {
		return nil, translateErr(err)
	}
	return &updated, nil
}

// Remove cancels a ticket and returns the seat to the flight's
// remaining_tickets counter.
func (r *PGTicketRepository) Remove(ctx context.Context, id int64) (*domain.Ticket, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, translateErr(err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `DELETE FROM tickets WHERE id=$1 RETURNING `+ticketColumns, id)
	var deleted domain.Ticket
	if err := row.Scan(&deleted.ID, &deleted.FlightID, &deleted.CustomerID); err != nil {
		return nil, translateErr(err)
	}
	if _, err := tx.Exec(ctx, `UPDATE flights SET remaining_tickets = remaining_tickets + 1 WHERE id=$1`, deleted.FlightID); err != nil {
		return nil, translateErr(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, translateErr(err)
	}
	return &deleted, nil
}

func (r *PGTicketRepository) FlightsForCustomerUser(ctx context.Context, userID int64) ([]domain.Flight, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, translateErr(err)
	}
	defer tx.Rollback(ctx)

	var customerID int64
	if err := tx.QueryRow(ctx, `SELECT id FROM customers WHERE user_id=$1`, userID).Scan(&customerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %d has no customer profile", domain.ErrNotFound, userID)
		}
		return nil, translateErr(err)
	}

	rows, err := tx.Query(ctx, `SELECT f.id, f.airline_company_id, f.origin_country_id, f.destination_country_id, f.departure_time, f.landing_time, f.remaining_tickets
		FROM flights f
		JOIN tickets t ON t.flight_id = f.id
		WHERE t.customer_id=$1
		ORDER BY f.departure_time`, customerID)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	flights, err := scanFlights(rows)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, translateErr(err)
	}
	return flights, nil
}

// issueTicket decrements the flight counter and inserts the ticket row
// using the caller's transaction.
func issueTicket(ctx context.Context, tx pgx.Tx, ticket *domain.Ticket) error {
	var remaining int
	err := tx.QueryRow(ctx, `UPDATE flights SET remaining_tickets = remaining_tickets - 1 WHERE id=$1 AND remaining_tickets > 0 RETURNING remaining_tickets`,
		ticket.FlightID).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM flights WHERE id=$1)`, ticket.FlightID).Scan(&exists); err != nil {
				return translateErr(err)
			}
			if !exists {
				return fmt.Errorf("%w: flight %d does not exist", domain.ErrConstraintViolation, ticket.FlightID)
			}
			return fmt.Errorf("%w: flight %d has no remaining tickets", domain.ErrConstraintViolation, ticket.FlightID)
		}
		return translateErr(err)
	}

	err = tx.QueryRow(ctx, `INSERT INTO tickets (flight_id, customer_id) VALUES ($1, $2) RETURNING id`,
		ticket.FlightID, ticket.CustomerID).Scan(&ticket.ID)
	return translateErr(err)
}

var _ TicketRepository = (*PGTicketRepository)(nil)
