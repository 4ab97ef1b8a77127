package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyway-app/skyway/internal/domain"
)

type AdministratorRepository interface {
	List(ctx context.Context) ([]domain.Administrator, error)
	GetByID(ctx context.Context, id int64) (*domain.Administrator, error)
	Add(ctx context.Context, admin *domain.Administrator) error
	AddAll(ctx context.Context, admins []domain.Administrator) error
	Update(ctx context.Context, id int64, admin domain.Administrator) (*domain.Administrator, error)
	Remove(ctx context.Context, id int64) (*domain.Administrator, error)
}

const administratorColumns = `id, first_name, last_name, user_id`

type PGAdministratorRepository struct {
	db *pgxpool.Pool
}

func NewAdministratorRepository(db *pgxpool.Pool) AdministratorRepository {
	return &PGAdministratorRepository{db: db}
}

func (r *PGAdministratorRepository) List(ctx context.Context) ([]domain.Administrator, error) {
	rows, err := r.db.Query(ctx, `SELECT `+administratorColumns+` FROM administrators`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	admins := make([]domain.Administrator, 0)
	for rows.Next() {
		var a domain.Administrator
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.UserID); err != nil {
			return nil, translateErr(err)
		}
		admins = append(admins, a)
	}
	return admins, translateErr(rows.Err())
}

func (r *PGAdministratorRepository) GetByID(ctx context.Context, id int64) (*domain.Administrator, error) {
	row := r.db.QueryRow(ctx, `SELECT `+administratorColumns+` FROM administrators WHERE id=$1`, id)
	var a domain.Administrator
	if err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.UserID); err != nil {
		return nil, translateErr(err)
	}
	return &a, nil
}

func (r *PGAdministratorRepository) Add(ctx context.Context, admin *domain.Administrator) error {
	if err := admin.Validate(); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return translateErr(err)
	}
	defer tx.Rollback(ctx)

	if err := ensureProfileFree(ctx, tx, admin.UserID, "administrators"); err != nil {
		return err
	}
	if err := tx.QueryRow(ctx, `INSERT INTO administrators (first_name, last_name, user_id) VALUES ($1, $2, $3) RETURNING id`,
		admin.FirstName, admin.LastName, admin.UserID).Scan(&admin.ID); err != nil {
		return translateErr(err)
	}
	return translateErr(tx.Commit(ctx))
}

func (r *PGAdministratorRepository) AddAll(ctx context.Context, admins []domain.Administrator) error {
	for i := range admins {
		if err := admins[i].Validate(); err != nil {
			return err
		}
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return translateErr(err)
	}
	defer tx.Rollback(ctx)

	for i := range admins {
		a := &admins[i]
		if err := ensureProfileFree(ctx, tx, a.UserID, "administrators"); err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, `INSERT INTO administrators (first_name, last_name, user_id) VALUES ($1, $2, $3) RETURNING id`,
			a.FirstName, a.LastName, a.UserID).Scan(&a.ID); err != nil {
			return translateErr(err)
		}
	}
	return translateErr(tx.Commit(ctx))
}

func (r *PGAdministratorRepository) Update(ctx context.Context, id int64, admin domain.Administrator) (*domain.Administrator, error) {
	admin = admin.WithID(id)
	if err := admin.Validate(); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, translateErr(err)
	}
	defer tx.Rollback(ctx)

	if err := ensureProfileFree(ctx, tx, admin.UserID, "administrators"); err != nil {
		return nil, err
	}
	row := tx.QueryRow(ctx, `UPDATE administrators SET first_name=$2, last_name=$3, user_id=$4 WHERE id=$1 RETURNING `+administratorColumns,
		admin.ID, admin.FirstName, admin.LastName, admin.UserID)
	var updated domain.Administrator
	if err := row.Scan(&updated.ID, &updated.FirstName, &updated.LastName, &updated.UserID); err != nil {
		return nil, translateErr(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, translateErr(err)
	}
	return &updated, nil
}

func (r *PGAdministratorRepository) Remove(ctx context.Context, id int64) (*domain.Administrator, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM administrators WHERE id=$1 RETURNING `+administratorColumns, id)
	var deleted domain.Administrator
	if err := row.Scan(&deleted.ID, &deleted.FirstName, &deleted.LastName, &deleted.UserID); err != nil {
		return nil, translateErr(err)
	}
	return &deleted, nil
}

var _ AdministratorRepository = (*PGAdministratorRepository)(nil)
