package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyway-app/skyway/internal/domain"
)

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Add(ctx context.Context, user *domain.User) error
	AddAll(ctx context.Context, users []domain.User) error
	Update(ctx context.Context, id int64, user domain.User) (*domain.User, error)
	Remove(ctx context.Context, id int64) (*domain.User, error)
	// ResolveLogin matches username and password exactly and joins the
	// role name in the same statement. ErrNotFound on no match, with no
	// distinction between a wrong username and a wrong password.
	ResolveLogin(ctx context.Context, username, password string) (*domain.LoginIdentity, error)
}

const userColumns = `id, username, password, email, role_id`

type PGUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &PGUserRepository{db: db}
}

func (r *PGUserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.RoleID); err != nil {
			return nil, translateErr(err)
		}
		users = append(users, u)
	}
	return users, translateErr(rows.Err())
}

func (r *PGUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.RoleID); err != nil {
		return nil, translateErr(err)
	}
	return &u, nil
}

func (r *PGUserRepository) Add(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	err := r.db.QueryRow(ctx, `INSERT INTO users (username, password, email, role_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		user.Username, user.Password, user.Email, user.RoleID).Scan(&user.ID)
	return translateErr(err)
}

func (r *PGUserRepository) AddAll(ctx context.Context, users []domain.User) error {
	for i := range users {
		if err := users[i].Validate(); err != nil {
			return err
		}
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return translateErr(err)
	}
	defer tx.Rollback(ctx)

	for i := range users {
		u := &users[i]
		if err := tx.QueryRow(ctx, `INSERT INTO users (username, password, email, role_id) VALUES ($1, $2, $3, $4) RETURNING id`,
			u.Username, u.Password, u.Email, u.RoleID).Scan(&u.ID); err != nil {
			return translateErr(err)
		}
	}
	return translateErr(tx.Commit(ctx))
}

func (r *PGUserRepository) Update(ctx context.Context, id int64, user domain.User) (*domain.User, error) {
	user = user.WithID(id)
	if err := user.Validate(); err != nil {
		return nil, err
	}
	row := r.db.QueryRow(ctx, `UPDATE users SET username=$2, password=$3, email=$4, role_id=$5 WHERE id=$1 RETURNING `+userColumns,
		user.ID, user.Username, user.Password, user.Email, user.RoleID)
	var updated domain.User
	if err := row.Scan(&updated.ID, &updated.Username, &updated.Password, &updated.Email, &updated.RoleID); err != nil {
		return nil, translateErr(err)
	}
	return &updated, nil
}

func (r *PGUserRepository) Remove(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM users WHERE id=$1 RETURNING `+userColumns, id)
	var deleted domain.User
	if err := row.Scan(&deleted.ID, &deleted.Username, &deleted.Password, &deleted.Email, &deleted.RoleID); err != nil {
		return nil, translateErr(err)
	}
	return &deleted, nil
}

func (r *PGUserRepository) ResolveLogin(ctx context.Context, username, password string) (*domain.LoginIdentity, error) {
	row := r.db.QueryRow(ctx, `SELECT u.id, u.username, ur.role_name
		FROM users u
		JOIN user_roles ur ON u.role_id = ur.id
		WHERE u.username=$1 AND u.password=$2`, username, password)
	var identity domain.LoginIdentity
	if err := row.Scan(&identity.UserID, &identity.Username, &identity.RoleName); err != nil {
		return nil, translateErr(err)
	}
	return &identity, nil
}

var _ UserRepository = (*PGUserRepository)(nil)
