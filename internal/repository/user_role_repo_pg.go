package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyway-app/skyway/internal/domain"
)

type UserRoleRepository interface {
	List(ctx context.Context) ([]domain.UserRole, error)
	GetByID(ctx context.Context, id int64) (*domain.UserRole, error)
	Add(ctx context.Context, role *domain.UserRole) error
	AddAll(ctx context.Context, roles []domain.UserRole) error
	Update(ctx context.Context, id int64, role domain.UserRole) (*domain.UserRole, error)
	Remove(ctx context.Context, id int64) (*domain.UserRole, error)
}

type PGUserRoleRepository struct {
	db *pgxpool.Pool
}

func NewUserRoleRepository(db *pgxpool.Pool) UserRoleRepository {
	return &PGUserRoleRepository{db: db}
}

func (r *PGUserRoleRepository) List(ctx context.Context) ([]domain.UserRole, error) {
	rows, err := r.db.Query(ctx, `SELECT id, role_name FROM user_roles`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	roles := make([]domain.UserRole, 0)
	for rows.Next() {
		var ur domain.UserRole
		if err := rows.Scan(&ur.ID, &ur.RoleName); err != nil {
			return nil, translateErr(err)
		}
		roles = append(roles, ur)
	}
	return roles, translateErr(rows.Err())
}

func (r *PGUserRoleRepository) GetByID(ctx context.Context, id int64) (*domain.UserRole, error) {
	row := r.db.QueryRow(ctx, `SELECT id, role_name FROM user_roles WHERE id=$1`, id)
	var ur domain.UserRole
	if err := row.Scan(&ur.ID, &ur.RoleName); err != nil {
		return nil, translateErr(err)
	}
	return &ur, nil
}

func (r *PGUserRoleRepository) Add(ctx context.Context, role *domain.UserRole) error {
	if err := role.Validate(); err != nil {
		return err
	}
	err := r.db.QueryRow(ctx, `INSERT INTO user_roles (role_name) VALUES ($1) RETURNING id`, role.RoleName).Scan(&role.ID)
	return translateErr(err)
}

func (r *PGUserRoleRepository) AddAll(ctx context.Context, roles []domain.UserRole) error {
	for i := range roles {
		if err := roles[i].Validate(); err != nil {
			return err
		}
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return translateErr(err)
	}
	defer tx.Rollback(ctx)

	for i := range roles {
		if err := tx.QueryRow(ctx, `INSERT INTO user_roles (role_name) VALUES ($1) RETURNING id`, roles[i].RoleName).Scan(&roles[i].ID); err != nil {
			return translateErr(err)
		}
	}
	return translateErr(tx.Commit(ctx))
}

func (r *PGUserRoleRepository) Update(ctx context.Context, id int64, role domain.UserRole) (*domain.UserRole, error) {
	role = role.WithID(id)
	if err := role.Validate(); err != nil {
		return nil, err
	}
	row := r.db.QueryRow(ctx, `UPDATE user_roles SET role_name=$2 WHERE id=$1 RETURNING id, role_name`, role.ID, role.RoleName)
	var updated domain.UserRole
	if err := row.Scan(&updated.ID, &updated.RoleName); err != nil {
		return nil, translateErr(err)
	}
	return &updated, nil
}

func (r *PGUserRoleRepository) Remove(ctx context.Context, id int64) (*domain.UserRole, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM user_roles WHERE id=$1 RETURNING id, role_name`, id)
	var deleted domain.UserRole
	if err := row.Scan(&deleted.ID, &deleted.RoleName); err != nil {
		return nil, translateErr(err)
	}
	return &deleted, nil
}

var _ UserRoleRepository = (*PGUserRoleRepository)(nil)
