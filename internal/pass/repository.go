package pass

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

const passColumns = `id, pass_type_id, user_id, device_id, purchase_date, expiry_date, payment_status, payment_intent_id, qr_code_value, is_active`

const detailColumns = `
	pp.id, pp.pass_type_id, pp.user_id, pp.device_id, pp.purchase_date,
	pp.expiry_date, pp.payment_status, pp.payment_intent_id, pp.qr_code_value,
	pp.is_active,
	pt.name AS pass_type_name, pt.duration_days, pt.price_cents, pt.currency,
	u.name AS holder_name, u.email AS holder_email`

type PostgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, id string, passTypeID int, userID, deviceID *string, expiryDate time.Time, qrCodeValue string) (*PurchasedPass, error) {
	query := `
		INSERT INTO purchased_passes (id, pass_type_id, user_id, device_id, purchase_date, expiry_date, payment_status, qr_code_value, is_active)
		VALUES ($1, $2, $3, $4, NOW(), $5, 'pending', $6, FALSE)
		RETURNING ` + passColumns

	var pass PurchasedPass
	err := r.db.GetContext(ctx, &pass, query, id, passTypeID, userID, deviceID, expiryDate, qrCodeValue)
	if err != nil {
		return nil, err
	}

	return &pass, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM purchased_passes WHERE id = $1`, id)
	return err
}

func (r *PostgresRepository) SetPaymentIntentID(ctx context.Context, id, paymentIntentID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE purchased_passes
		SET payment_intent_id = $2
		WHERE id = $1
	`, id, paymentIntentID)
	return err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*PurchasedPass, error) {
	query := `SELECT ` + passColumns + ` FROM purchased_passes WHERE id = $1`

	var pass PurchasedPass
	err := r.db.GetContext(ctx, &pass, query, id)
	if err != nil {
		return nil, err
	}

	return &pass, nil
}

func (r *PostgresRepository) GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (*PurchasedPass, error) {
	query := `SELECT ` + passColumns + ` FROM purchased_passes WHERE payment_intent_id = $1`

	var pass PurchasedPass
	err := r.db.GetContext(ctx, &pass, query, paymentIntentID)
	if err != nil {
		return nil, err
	}

	return &pass, nil
}

func (r *PostgresRepository) GetDetails(ctx context.Context, id string) (*PassDetails, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM purchased_passes pp
		JOIN pass_types pt ON pt.id = pp.pass_type_id
		LEFT JOIN users u ON u.id = pp.user_id
		WHERE pp.id = $1
	`

	var details PassDetails
	err := r.db.GetContext(ctx, &details, query, id)
	if err != nil {
		return nil, err
	}

	return &details, nil
}

func (r *PostgresRepository) MarkSucceeded(ctx context.Context, id, paymentIntentID, qrCodeValue string, expiryDate time.Time) (*PurchasedPass, error) {
	// The status guard keeps the transition one-way: a pass that already
	// succeeded is never rewritten.
	query := `
		UPDATE purchased_passes
		SET payment_status = 'succeeded',
		    payment_intent_id = $2,
		    qr_code_value = $3,
		    expiry_date = $4,
		    is_active = TRUE
		WHERE id = $1 AND payment_status <> 'succeeded'
		RETURNING ` + passColumns

	var pass PurchasedPass
	err := r.db.GetContext(ctx, &pass, query, id, paymentIntentID, qrCodeValue, expiryDate)
	if err != nil {
		return nil, err
	}

	return &pass, nil
}

func (r *PostgresRepository) ListActive(ctx context.Context, userID, deviceID *string) ([]PassDetails, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM purchased_passes pp
		JOIN pass_types pt ON pt.id = pp.pass_type_id
		LEFT JOIN users u ON u.id = pp.user_id
		WHERE pp.is_active = TRUE
		  AND pp.payment_status = 'succeeded'
		  AND pp.expiry_date > NOW()
	`
	args := []interface{}{}

	if userID != nil && deviceID != nil {
		query += ` AND (pp.user_id = $1 OR pp.device_id = $2)`
		args = append(args, *userID, *deviceID)
	} else if userID != nil {
		query += ` AND pp.user_id = $1`
		args = append(args, *userID)
	} else if deviceID != nil {
		query += ` AND pp.device_id = $1`
		args = append(args, *deviceID)
	}

	query += ` ORDER BY pp.purchase_date DESC`

	passes := []PassDetails{}
	err := r.db.SelectContext(ctx, &passes, query, args...)
	if err != nil {
		return nil, err
	}

	return passes, nil
}
