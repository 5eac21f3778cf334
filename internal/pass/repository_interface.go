package pass

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, id string, passTypeID int, userID, deviceID *string, expiryDate time.Time, qrCodeValue string) (*PurchasedPass, error)
	Delete(ctx context.Context, id string) error
	SetPaymentIntentID(ctx context.Context, id, paymentIntentID string) error
	GetByID(ctx context.Context, id string) (*PurchasedPass, error)
	GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (*PurchasedPass, error)
	GetDetails(ctx context.Context, id string) (*PassDetails, error)
	MarkSucceeded(ctx context.Context, id, paymentIntentID, qrCodeValue string, expiryDate time.Time) (*PurchasedPass, error)
	ListActive(ctx context.Context, userID, deviceID *string) ([]PassDetails, error)
}
