package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyway-app/skyway/internal/domain"
)

type AirlineCompanyRepository interface {
	List(ctx context.Context) ([]domain.AirlineCompany, error)
	GetByID(ctx context.Context, id int64) (*domain.AirlineCompany, error)
	Add(ctx context.Context, airline *domain.AirlineCompany) error
	AddAll(ctx context.Context, airlines []domain.AirlineCompany) error
	Update(ctx context.Context, id int64, airline domain.AirlineCompany) (*domain.AirlineCompany, error)
	Remove(ctx context.Context, id int64) (*domain.AirlineCompany, error)
	ListByCountry(ctx context.Context, countryID int64) ([]domain.AirlineCompany, error)
	GetByUsername(ctx context.Context, username string) (*domain.AirlineCompany, error)
}

const airlineColumns = `id, name, country_id, user_id`

type PGAirlineCompanyRepository struct {
	db *pgxpool.Pool
}

func NewAirlineCompanyRepository(db *pgxpool.Pool) AirlineCompanyRepository {
	return &PGAirlineCompanyRepository{db: db}
}

func (r *PGAirlineCompanyRepository) List(ctx context.Context) ([]domain.AirlineCompany, error) {
	rows, err := r.db.Query(ctx, `SELECT `+airlineColumns+` FROM airline_companies`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()
	return scanAirlines(rows)
}

func (r *PGAirlineCompanyRepository) GetByID(ctx context.Context, id int64) (*domain.AirlineCompany, error) {
	row := r.db.QueryRow(ctx, `SELECT `+airlineColumns+` FROM airline_companies WHERE id=$1`, id)
	var a domain.AirlineCompany
	if err := row.Scan(&a.ID, &a.Name, &a.CountryID, &a.UserID); err != nil {
		return nil, translateErr(err)
	}
	return &a, nil
}

func (r *PGAirlineCompanyRepository) Add(ctx context.Context, airline *domain.AirlineCompany) error {
	if err := airline.Validate(); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return translateErr(err)
	}
	defer tx.Rollback(ctx)

	if err := ensureProfileFree(ctx, tx, airline.UserID, "airline_companies"); err != nil {
		return err
	}
	if err := tx.QueryRow(ctx, `INSERT INTO airline_companies (name, country_id, user_id) VALUES ($1, $2, $3) RETURNING id`,
		airline.Name, airline.CountryID, airline.UserID).Scan(&airline.ID); err != nil {
		return translateErr(err)
	}
	return translateErr(tx.Commit(ctx))
}

func (r *PGAirlineCompanyRepository) AddAll(ctx context.Context, airlines []domain.AirlineCompany) error {
	for i := range airlines {
		if err := airlines[i].Validate(); err != nil {
			return err
		}
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return translateErr(err)
	}
	defer tx.Rollback(ctx)

	for i := range airlines {
		a := &airlines[i]
		if err := ensureProfileFree(ctx, tx, a.UserID, "airline_companies"); err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, `INSERT INTO airline_companies (name, country_id, user_id) VALUES ($1, $2, $3) RETURNING id`,
			a.Name, a.CountryID, a.UserID).Scan(&a.ID); err != nil {
			return translateErr(err)
		}
	}
	return translateErr(tx.Commit(ctx))
}

func (r *PGAirlineCompanyRepository) Update(ctx context.Context, id int64, airline domain.AirlineCompany) (*domain.AirlineCompany, error) {
	airline = airline.WithID(id)
	if err := airline.Validate(); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, translateErr(err)
	}
	defer tx.Rollback(ctx)

	if err := ensureProfileFree(ctx, tx, airline.UserID, "airline_companies"); err != nil {
		return nil, err
	}
	row := tx.QueryRow(ctx, `UPDATE airline_companies SET name=$2, country_id=$3, user_id=$4 WHERE id=$1 RETURNING `+airlineColumns,
		airline.ID, airline.Name, airline.CountryID, airline.UserID)
	var updated domain.AirlineCompany
	if err := row.Scan(&updated.ID, &updated.Name, &updated.CountryID, &updated.UserID); err != nil {
		return nil, translateErr(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, translateErr(err)
	}
	return &updated, nil
}

func (r *PGAirlineCompanyRepository) Remove(ctx context.Context, id int64) (*domain.AirlineCompany, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM airline_companies WHERE id=$1 RETURNING `+airlineColumns, id)
	var deleted domain.AirlineCompany
	if err := row.Scan(&deleted.ID, &deleted.Name, &deleted.CountryID, &deleted.UserID); err != nil {
		return nil, translateErr(err)
	}
	return &deleted, nil
}

func (r *PGAirlineCompanyRepository) ListByCountry(ctx context.Context, countryID int64) ([]domain.AirlineCompany, error) {
	rows, err := r.db.Query(ctx, `SELECT `+airlineColumns+` FROM airline_companies WHERE country_id=$1`, countryID)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()
	return scanAirlines(rows)
}

func (r *PGAirlineCompanyRepository) GetByUsername(ctx context.Context, username string) (*domain.AirlineCompany, error) {
	row := r.db.QueryRow(ctx, `SELECT a.id, a.name, a.country_id, a.user_id
		FROM airline_companies a
		JOIN users u ON a.user_id = u.id
		WHERE u.username=$1`, username)
	var a domain.AirlineCompany
	if err := row.Scan(&a.ID, &a.Name, &a.CountryID, &a.UserID); err != nil {
		return nil, translateErr(err)
	}
	return &a, nil
}

func scanAirlines(rows pgx.Rows) ([]domain.AirlineCompany, error) {
	airlines := make([]domain.AirlineCompany, 0)
	for rows.Next() {
		var a domain.AirlineCompany
		if err := rows.Scan(&a.ID, &a.Name, &a.CountryID, &a.UserID); err != nil {
			return nil, translateErr(err)
		}
		airlines = append(airlines, a)
	}
	return airlines, translateErr(rows.Err())
}

var _ AirlineCompanyRepository = (*PGAirlineCompanyRepository)(nil)
