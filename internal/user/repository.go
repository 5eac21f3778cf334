package user

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const userColumns = `id, email, name, phone_number, created_at, updated_at`

type PostgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert inserts the subject on first sight and refreshes the profile
// fields on every later call. COALESCE keeps existing values when the
// caller sends a partial update.
func (r *PostgresRepository) Upsert(ctx context.Context, id string, email, name, phoneNumber *string) (*User, error) {
	query := `
		INSERT INTO users (id, email, name, phone_number)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET email        = COALESCE(EXCLUDED.email, users.email),
		    name         = COALESCE(EXCLUDED.name, users.name),
		    phone_number = COALESCE(EXCLUDED.phone_number, users.phone_number),
		    updated_at   = NOW()
		RETURNING ` + userColumns

	var u User
	err := r.db.GetContext(ctx, &u, query, id, email, name, phoneNumber)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var u User
	err := r.db.GetContext(ctx, &u, query, id)
	if err != nil {
		return nil, err
	}

	return &u, nil
}
