package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyway-app/skyway/internal/domain"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Add(ctx context.Context, flight *domain.Flight) error
	AddAll(ctx context.Context, flights []domain.Flight) error
	Update(ctx context.Context, id int64, flight domain.Flight) (*domain.Flight, error)
	Remove(ctx context.Context, id int64) (*domain.Flight, error)
	ListByAirline(ctx context.Context, airlineID int64) ([]domain.Flight, error)
	ListByOriginCountry(ctx context.Context, countryID int64) ([]domain.Flight, error)
	ListByDestinationCountry(ctx context.Context, countryID int64) ([]domain.Flight, error)
	ListByDepartureDate(ctx context.Context, date time.Time) ([]domain.Flight, error)
	ListByLandingDate(ctx context.Context, date time.Time) ([]domain.Flight, error)
	ListByParameters(ctx context.Context, originCountryID, destinationCountryID int64, date time.Time) ([]domain.Flight, error)
	// ListNearNow returns flights arriving into or departing from a country
	// within the window starting at the store's current instant.
	ListNearNow(ctx context.Context, countryID int64, direction domain.FlightDirection, window time.Duration) ([]domain.Flight, error)
}

const flightColumns = `id, airline_company_id, origin_country_id, destination_country_id, departure_time, landing_time, remaining_tickets`

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY departure_time`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()
	return scanFlights(rows)
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id)
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.AirlineCompanyID, &f.OriginCountryID, &f.DestinationCountryID, &f.DepartureTime, &f.LandingTime, &f.RemainingTickets); err != nil {
		return nil, translateErr(err)
	}
	return &f, nil
}

func (r *PGFlightRepository) Add(ctx context.Context, flight *domain.Flight) error {
	if err := flight.Validate(); err != nil {
		return err
	}
	err := r.db.QueryRow(ctx, `INSERT INTO flights (airline_company_id, origin_country_id, destination_country_id, departure_time, landing_time, remaining_tickets)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		flight.AirlineCompanyID, flight.OriginCountryID, flight.DestinationCountryID, flight.DepartureTime, flight.LandingTime, flight.RemainingTickets).Scan(&flight.ID)
	return translateErr(err)
}

func (r *PGFlightRepository) AddAll(ctx context.Context, flights []domain.Flight) error {
	for i := range flights {
		if err := flights[i].Validate(); err != nil {
			return err
		}
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return translateErr(err)
	}
	defer tx.Rollback(ctx)

	for i := range flights {
		f := &flights[i]
		if err := tx.QueryRow(ctx, `INSERT INTO flights (airline_company_id, origin_country_id, destination_country_id, departure_time, landing_time, remaining_tickets)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			f.AirlineCompanyID, f.OriginCountryID, f.DestinationCountryID, f.DepartureTime, f.LandingTime, f.RemainingTickets).Scan(&f.ID); err != nil {
			return translateErr(err)
		}
	}
	return translateErr(tx.Commit(ctx))
}

func (r *PGFlightRepository) Update(ctx context.Context, id int64, flight domain.Flight) (*domain.Flight, error) {
	flight = flight.WithID(id)
	if err := flight.Validate(); err != nil {
		return nil, err
	}
	row := r.db.QueryRow(ctx, `UPDATE flights SET airline_company_id=$2, origin_country_id=$3, destination_country_id=$4, departure_time=$5, landing_time=$6, remaining_tickets=$7
		WHERE id=$1 RETURNING `+flightColumns,
		flight.ID, flight.AirlineCompanyID, flight.OriginCountryID, flight.DestinationCountryID, flight.DepartureTime, flight.LandingTime, flight.RemainingTickets)
	var updated domain.Flight
	if err := row.Scan(&updated.ID, &updated.AirlineCompanyID, &updated.OriginCountryID, &updated.DestinationCountryID, &updated.DepartureTime, &updated.LandingTime, &updated.RemainingTickets); err != nil {
		return nil, translateErr(err)
	}
	return &updated, nil
}

func (r *PGFlightRepository) Remove(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM flights WHERE id=$1 RETURNING `+flightColumns, id)
	var deleted domain.Flight
	if err := row.Scan(&deleted.ID, &deleted.AirlineCompanyID, &deleted.OriginCountryID, &deleted.DestinationCountryID, &deleted.DepartureTime, &deleted.LandingTime, &deleted.RemainingTickets); err != nil {
		return nil, translateErr(err)
	}
	return &deleted, nil
}

func (r *PGFlightRepository) ListByAirline(ctx context.Context, airlineID int64) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights WHERE airline_company_id=$1 ORDER BY departure_time`, airlineID)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()
	return scanFlights(rows)
}

func (r *PGFlightRepository) ListByOriginCountry(ctx context.Context, countryID int64) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights WHERE origin_country_id=$1 ORDER BY departure_time`, countryID)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()
	return scanFlights(rows)
}

func (r *PGFlightRepository) ListByDestinationCountry(ctx context.Context, countryID int64) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights WHERE destination_country_id=$1 ORDER BY departure_time`, countryID)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()
	return scanFlights(rows)
}

func (r *PGFlightRepository) ListByDepartureDate(ctx context.Context, date time.Time) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights WHERE DATE(departure_time)=$1::date ORDER BY departure_time`, date)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()
	return scanFlights(rows)
}

func (r *PGFlightRepository) ListByLandingDate(ctx context.Context, date time.Time) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights WHERE DATE(landing_time)=$1::date ORDER BY landing_time`, date)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()
	return scanFlights(rows)
}

func (r *PGFlightRepository) ListByParameters(ctx context.Context, originCountryID, destinationCountryID int64, date time.Time) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights
		WHERE origin_country_id=$1 AND destination_country_id=$2 AND DATE(departure_time)=$3::date
		ORDER BY departure_time`, originCountryID, destinationCountryID, date)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()
	return scanFlights(rows)
}

func (r *PGFlightRepository) ListNearNow(ctx context.Context, countryID int64, direction domain.FlightDirection, window time.Duration) ([]domain.Flight, error) {
	countryCol, timeCol := "destination_country_id", "landing_time"
	if direction == domain.DirectionDepartures {
		countryCol, timeCol = "origin_country_id", "departure_time"
	}
	// now() is evaluated by the store at query time, not a stored value.
	query := fmt.Sprintf(`SELECT %s FROM flights WHERE %s=$1 AND %s BETWEEN now() AND now() + $2 ORDER BY %s`,
		flightColumns, countryCol, timeCol, timeCol)
	rows, err := r.db.Query(ctx, query, countryID, window)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()
	return scanFlights(rows)
}

func scanFlights(rows pgx.Rows) ([]domain.Flight, error) {
	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.AirlineCompanyID, &f.OriginCountryID, &f.DestinationCountryID, &f.DepartureTime, &f.LandingTime, &f.RemainingTickets); err != nil {
			return nil, translateErr(err)
		}
		flights = append(flights, f)
	}
	return flights, translateErr(rows.Err())
}

var _ FlightRepository = (*PGFlightRepository)(nil)
