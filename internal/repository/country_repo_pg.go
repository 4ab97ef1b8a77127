package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyway-app/skyway/internal/domain"
)

type CountryRepository interface {
	List(ctx context.Context) ([]domain.Country, error)
	GetByID(ctx context.Context, id int64) (*domain.Country, error)
	Add(ctx context.Context, country *domain.Country) error
	AddAll(ctx context.Context, countries []domain.Country) error
	Update(ctx context.Context, id int64, country domain.Country) (*domain.Country, error)
	Remove(ctx context.Context, id int64) (*domain.Country, error)
}

type PGCountryRepository struct {
	db *pgxpool.Pool
}

func NewCountryRepository(db *pgxpool.Pool) CountryRepository {
	return &PGCountryRepository{db: db}
}

func (r *PGCountryRepository) List(ctx context.Context) ([]domain.Country, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM countries`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	countries := make([]domain.Country, 0)
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, translateErr(err)
		}
		countries = append(countries, c)
	}
	return countries, translateErr(rows.Err())
}

func (r *PGCountryRepository) GetByID(ctx context.Context, id int64) (*domain.Country, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name FROM countries WHERE id=$1`, id)
	var c domain.Country
	if err := row.Scan(&c.ID, &c.Name); err != nil {
		return nil, translateErr(err)
	}
	return &c, nil
}

func (r *PGCountryRepository) Add(ctx context.Context, country *domain.Country) error {
	if err := country.Validate(); err != nil {
		return err
	}
	err := r.db.QueryRow(ctx, `INSERT INTO countries (name) VALUES ($1) RETURNING id`, country.Name).Scan(&country.ID)
	return translateErr(err)
}

func (r *PGCountryRepository) AddAll(ctx context.Context, countries []domain.Country) error {
	for i := range countries {
		if err := countries[i].Validate(); err != nil {
			return err
		}
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return translateErr(err)
	}
	defer tx.Rollback(ctx)

	for i := range countries {
		if err := tx.QueryRow(ctx, `INSERT INTO countries (name) VALUES ($1) RETURNING id`, countries[i].Name).Scan(&countries[i].ID); err != nil {
			return translateErr(err)
		}
	}
	return translateErr(tx.Commit(ctx))
}

func (r *PGCountryRepository) Update(ctx context.Context, id int64, country domain.Country) (*domain.Country, error) {
	country = country.WithID(id)
	if err := country.Validate(); err != nil {
		return nil, err
	}
	row := r.db.QueryRow(ctx, `UPDATE countries SET name=$2 WHERE id=$1 RETURNING id, name`, country.ID, country.Name)
	var updated domain.Country
	if err := row.Scan(&updated.ID, &updated.Name); err != nil {
		return nil, translateErr(err)
	}
	return &updated, nil
}

func (r *PGCountryRepository) Remove(ctx context.Context, id int64) (*domain.Country, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM countries WHERE id=$1 RETURNING id, name`, id)
	var deleted domain.Country
	if err := row.Scan(&deleted.ID, &deleted.Name); err != nil {
		return nil, translateErr(err)
	}
	return &deleted, nil
}

var _ CountryRepository = (*PGCountryRepository)(nil)
