package gym

import (
	"context"

	"github.com/pras75299/gymapp/internal/db"

	"github.com/jmoiron/sqlx"
)

type PostgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateGym(ctx context.Context, name string, location *string, qrIdentifier string) (*Gym, error) {
	query := `
		INSERT INTO gyms (name, location, qr_identifier)
		VALUES ($1, $2, $3)
		RETURNING id, name, location, qr_identifier, created_at
	`

	var gym Gym
	err := r.db.GetContext(ctx, &gym, query, name, location, qrIdentifier)
	if err != nil {
		return nil, err
	}

	return &gym, nil
}

func (r *PostgresRepository) QRIdentifierExists(ctx context.Context, qrIdentifier string) (bool, error) {
	return db.Exists(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM gyms WHERE qr_identifier = $1)`, qrIdentifier)
}

func (r *PostgresRepository) GetAllGyms(ctx context.Context) ([]Gym, error) {
	query := `
		SELECT id, name, location, qr_identifier, created_at
		FROM gyms
		ORDER BY created_at DESC
	`

	var gyms []Gym
	err := r.db.SelectContext(ctx, &gyms, query)
	if err != nil {
		return nil, err
	}

	return gyms, nil
}

func (r *PostgresRepository) GetGymByID(ctx context.Context, id int) (*Gym, error) {
	query := `
		SELECT id, name, location, qr_identifier, created_at
		FROM gyms
		WHERE id = $1
	`

	var gym Gym
	err := r.db.GetContext(ctx, &gym, query, id)
	if err != nil {
		return nil, err
	}

	return &gym, nil
}

func (r *PostgresRepository) GetGymByQRIdentifier(ctx context.Context, qrIdentifier string) (*Gym, error) {
	query := `
		SELECT id, name, location, qr_identifier, created_at
		FROM gyms
		WHERE qr_identifier = $1
	`

	var gym Gym
	err := r.db.GetContext(ctx, &gym, query, qrIdentifier)
	if err != nil {
		return nil, err
	}

	return &gym, nil
}

func (r *PostgresRepository) CreatePassType(ctx context.Context, gymID int, name string, durationDays int, priceCents int64, currency string) (*PassType, error) {
	query := `
		INSERT INTO pass_types (gym_id, name, duration_days, price_cents, currency)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, gym_id, name, duration_days, price_cents, currency, created_at
	`

	var passType PassType
	err := r.db.GetContext(ctx, &passType, query, gymID, name, durationDays, priceCents, currency)
	if err != nil {
		return nil, err
	}

	return &passType, nil
}

func (r *PostgresRepository) GetPassTypesByGym(ctx context.Context, gymID int) ([]PassType, error) {
	query := `
		SELECT id, gym_id, name, duration_days, price_cents, currency, created_at
		FROM pass_types
		WHERE gym_id = $1
		ORDER BY duration_days ASC
	`

	var passTypes []PassType
	err := r.db.SelectContext(ctx, &passTypes, query, gymID)
	if err != nil {
		return nil, err
	}

	return passTypes, nil
}

func (r *PostgresRepository) GetPassTypeByID(ctx context.Context, id int) (*PassType, error) {
	query := `
		SELECT id, gym_id, name, duration_days, price_cents, currency, created_at
		FROM pass_types
		WHERE id = $1
	`

	var passType PassType
	err := r.db.GetContext(ctx, &passType, query, id)
	if err != nil {
		return nil, err
	}

	return &passType, nil
}
