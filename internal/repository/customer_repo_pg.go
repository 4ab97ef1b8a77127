package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyway-app/skyway/internal/domain"
)

type CustomerRepository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Add(ctx context.Context, customer *domain.Customer) error
	AddAll(ctx context.Context, customers []domain.Customer) error
	Update(ctx context.Context, id int64, customer domain.Customer) (*domain.Customer, error)
	Remove(ctx context.Context, id int64) (*domain.Customer, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Customer, error)
}

const customerColumns = `id, first_name, last_name, address, phone_no, credit_card_no, user_id`

type PGCustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) CustomerRepository {
	return &PGCustomerRepository{db: db}
}

func (r *PGCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.Query(ctx, `SELECT `+customerColumns+` FROM customers`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Address, &c.PhoneNo, &c.CreditCardNo, &c.UserID); err != nil {
			return nil, translateErr(err)
		}
		customers = append(customers, c)
	}
	return customers, translateErr(rows.Err())
}

func (r *PGCustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id=$1`, id)
	var c domain.Customer
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Address, &c.PhoneNo, &c.CreditCardNo, &c.UserID); err != nil {
		return nil, translateErr(err)
	}
	return &c, nil
}

func (r *PGCustomerRepository) Add(ctx context.Context, customer *domain.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return translateErr(err)
	}
	defer tx.Rollback(ctx)

	if err := ensureProfileFree(ctx, tx, customer.UserID, "customers"); err != nil {
		return err
	}
	if err := tx.QueryRow(ctx, `INSERT INTO customers (first_name, last_name, address, phone_no, credit_card_no, user_id)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		customer.FirstName, customer.LastName, customer.Address, customer.PhoneNo, customer.CreditCardNo, customer.UserID).Scan(&customer.ID); err != nil {
		return translateErr(err)
	}
	return translateErr(tx.Commit(ctx))
}

func (r *PGCustomerRepository) AddAll(ctx context.Context, customers []domain.Customer) error {
	for i := range customers {
		if err := customers[i].Validate(); err != nil {
			return err
		}
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return translateErr(err)
	}
	defer tx.Rollback(ctx)

	for i := range customers {
		c := &customers[i]
		if err := ensureProfileFree(ctx, tx, c.UserID, "customers"); err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, `INSERT INTO customers (first_name, last_name, address, phone_no, credit_card_no, user_id)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			c.FirstName, c.LastName, c.Address, c.PhoneNo, c.CreditCardNo, c.UserID).Scan(&c.ID); err != nil {
			return translateErr(err)
		}
	}
	return translateErr(tx.Commit(ctx))
}

func (r *PGCustomerRepository) Update(ctx context.Context, id int64, customer domain.Customer) (*domain.Customer, error) {
	customer = customer.WithID(id)
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, translateErr(err)
	}
	defer tx.Rollback(ctx)

	if err := ensureProfileFree(ctx, tx, customer.UserID, "customers"); err != nil {
		return nil, err
	}
	row := tx.QueryRow(ctx, `UPDATE customers SET first_name=$2, last_name=$3, address=$4, phone_no=$5, credit_card_no=$6, user_id=$7
		WHERE id=$1 RETURNING `+customerColumns,
		customer.ID, customer.FirstName, customer.LastName, customer.Address, customer.PhoneNo, customer.CreditCardNo, customer.UserID)
	var updated domain.Customer
	if err := row.Scan(&updated.ID, &updated.FirstName, &updated.LastName, &updated.Address, &updated.PhoneNo, &updated.CreditCardNo, &updated.UserID); err != nil {
		return nil, translateErr(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, translateErr(err)
	}
	return &updated, nil
}

func (r *PGCustomerRepository) Remove(ctx context.Context, id int64) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM customers WHERE id=$1 RETURNING `+customerColumns, id)
	var deleted domain.Customer
	if err := row.Scan(&deleted.ID, &deleted.FirstName, &deleted.LastName, &deleted.Address, &deleted.PhoneNo, &deleted.CreditCardNo, &deleted.UserID); err != nil {
		return nil, translateErr(err)
	}
	return &deleted, nil
}

func (r *PGCustomerRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE user_id=$1`, userID)
	var c domain.Customer
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Address, &c.PhoneNo, &c.CreditCardNo, &c.UserID); err != nil {
		return nil, translateErr(err)
	}
	return &c, nil
}

var _ CustomerRepository = (*PGCustomerRepository)(nil)
