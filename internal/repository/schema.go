package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Referential integrity relies on the default RESTRICT behavior of the
// foreign keys below: deleting a referenced row fails while dependents exist.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS countries (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS user_roles (
		id BIGSERIAL PRIMARY KEY,
		role_name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		role_id BIGINT NOT NULL REFERENCES user_roles(id)
	)`,
	`CREATE TABLE IF NOT EXISTS administrators (
		id BIGSERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		user_id BIGINT NOT NULL UNIQUE REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS airline_companies (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		country_id BIGINT NOT NULL REFERENCES countries(id),
		user_id BIGINT NOT NULL UNIQUE REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id BIGSERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		phone_no TEXT NOT NULL UNIQUE,
		credit_card_no TEXT NOT NULL UNIQUE,
		user_id BIGINT NOT NULL UNIQUE REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS flights (
		id BIGSERIAL PRIMARY KEY,
		airline_company_id BIGINT NOT NULL REFERENCES airline_companies(id),
		origin_country_id BIGINT NOT NULL REFERENCES countries(id),
		destination_country_id BIGINT NOT NULL REFERENCES countries(id),
		departure_time TIMESTAMPTZ NOT NULL,
		landing_time TIMESTAMPTZ NOT NULL,
		remaining_tickets INT NOT NULL,
		CHECK (origin_country_id <> destination_country_id),
		CHECK (departure_time < landing_time),
		CHECK (remaining_tickets >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS tickets (
		id BIGSERIAL PRIMARY KEY,
		flight_id BIGINT NOT NULL REFERENCES flights(id),
		customer_id BIGINT NOT NULL REFERENCES customers(id),
		UNIQUE (flight_id, customer_id)
	)`,
}

// CreateSchema creates all tables if they do not exist yet. It runs at
// startup; there is no migration tooling beyond this.
func CreateSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", translateErr(err))
		}
	}
	return nil
}
