package pass

import "time"

type PaymentStatus string

const (
	StatusPending   PaymentStatus = "pending"
	StatusSucceeded PaymentStatus = "succeeded"
	StatusFailed    PaymentStatus = "failed"
)

// PurchasedPass is one holder's instance of a pass type. is_active is only
// ever true once payment succeeded; validity for entry is derived at read
// time from is_active, payment_status and expiry_date.
type PurchasedPass struct {
	ID              string        `db:"id" json:"id"`
	PassTypeID      int           `db:"pass_type_id" json:"pass_type_id"`
	UserID          *string       `db:"user_id" json:"user_id,omitempty"`
	DeviceID        *string       `db:"device_id" json:"device_id,omitempty"`
	PurchaseDate    time.Time     `db:"purchase_date" json:"purchase_date"`
	ExpiryDate      time.Time     `db:"expiry_date" json:"expiry_date"`
	PaymentStatus   PaymentStatus `db:"payment_status" json:"payment_status"`
	PaymentIntentID *string       `db:"payment_intent_id" json:"payment_intent_id,omitempty"`
	QRCodeValue     *string       `db:"qr_code_value" json:"qr_code_value,omitempty"`
	IsActive        bool          `db:"is_active" json:"is_active"`
}

// PassDetails joins a purchased pass with its catalog entry and holder.
type PassDetails struct {
	PurchasedPass
	PassTypeName string  `db:"pass_type_name" json:"pass_type_name"`
	DurationDays int     `db:"duration_days" json:"duration_days"`
	PriceCents   int64   `db:"price_cents" json:"price_cents"`
	Currency     string  `db:"currency" json:"currency"`
	HolderName   *string `db:"holder_name" json:"holder_name,omitempty"`
	HolderEmail  *string `db:"holder_email" json:"holder_email,omitempty"`
}

type PurchaseRequest struct {
	PassTypeID int     `json:"pass_type_id" binding:"required"`
	DeviceID   *string `json:"device_id,omitempty"`
}

// PurchaseResult carries what the mobile client needs to open the provider's
// checkout: our pass id plus the external order.
type PurchaseResult struct {
	PassID   string `json:"pass_id"`
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

type ConfirmRequest struct {
	PassID    string `json:"pass_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
}

type StatusResponse struct {
	Status      PaymentStatus `json:"status"`
	QRCodeValue string        `json:"qr_code_value,omitempty"`
	ExpiryDate  *time.Time    `json:"expiry_date,omitempty"`
}
