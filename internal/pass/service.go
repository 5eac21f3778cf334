package pass

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pras75299/gymapp/internal/email"
	"github.com/pras75299/gymapp/internal/gym"
	"github.com/pras75299/gymapp/internal/logger"
	"github.com/pras75299/gymapp/internal/metrics"
	"github.com/pras75299/gymapp/internal/payment"
	"github.com/pras75299/gymapp/internal/qrcode"

	"github.com/google/uuid"
)

var (
	ErrPassNotFound     = errors.New("pass not found")
	ErrPassTypeNotFound = errors.New("pass type not found")
)

type Service interface {
	CreatePendingPurchase(ctx context.Context, passTypeID int, userID, deviceID *string) (*PurchaseResult, error)
	ConfirmPayment(ctx context.Context, passID, paymentID string) (*PurchasedPass, error)
	MarkCaptured(ctx context.Context, orderID, paymentID string) error
	GetStatus(ctx context.Context, passID string) (*StatusResponse, error)
	GetActivePasses(ctx context.Context, userID, deviceID *string) ([]PassDetails, error)
	GetDetails(ctx context.Context, passID string) (*PassDetails, error)
}

type service struct {
	repo    Repository
	gymRepo gym.Repository
	gateway payment.Gateway
	signer  *qrcode.Signer
	email   *email.Service
	keyID   string
}

func NewService(repo Repository, gymRepo gym.Repository, gateway payment.Gateway, signer *qrcode.Signer, emailService *email.Service, razorpayKeyID string) Service {
	return &service{
		repo:    repo,
		gymRepo: gymRepo,
		gateway: gateway,
		signer:  signer,
		email:   emailService,
		keyID:   razorpayKeyID,
	}
}

// CreatePendingPurchase writes a pending pass and opens the external order
// for it. The pass id doubles as the order receipt so webhook deliveries can
// be reconciled. The placeholder QR value is replaced with a signed token
// once payment succeeds; until then it authorizes nothing.
func (s *service) CreatePendingPurchase(ctx context.Context, passTypeID int, userID, deviceID *string) (*PurchaseResult, error) {
	passType, err := s.gymRepo.GetPassTypeByID(ctx, passTypeID)
	if err != nil {
		return nil, ErrPassTypeNotFound
	}

	gymRecord, err := s.gymRepo.GetGymByID(ctx, passType.GymID)
	if err != nil {
		return nil, fmt.Errorf("failed to load gym for pass type %d: %w", passTypeID, err)
	}

	passID := uuid.NewString()
	expiryDate := time.Now().AddDate(0, 0, passType.DurationDays)

	pass, err := s.repo.Create(ctx, passID, passTypeID, userID, deviceID, expiryDate, uuid.NewString())
	if err != nil {
		return nil, err
	}

	order, err := s.gateway.CreateOrder(ctx, passType.PriceCents, passType.Currency, pass.ID, map[string]string{
		"purchased_pass_id": pass.ID,
		"gym_name":          gymRecord.Name,
		"pass_name":         passType.Name,
	})
	if err != nil {
		// Compensate: without an order the pending row can never be paid,
		// so remove it rather than leave it orphaned.
		if delErr := s.repo.Delete(ctx, pass.ID); delErr != nil {
			logger.Error("Failed to delete orphaned pending pass", "pass_id", pass.ID, "error", delErr)
		}
		metrics.RecordGatewayError()
		return nil, err
	}

	if err := s.repo.SetPaymentIntentID(ctx, pass.ID, order.ID); err != nil {
		return nil, err
	}

	logger.Info("Pending purchase created",
		"pass_id", pass.ID,
		"pass_type", passType.Name,
		"order_id", order.ID,
	)
	metrics.RecordPassPurchase(passType.Name)

	return &PurchaseResult{
		PassID:   pass.ID,
		OrderID:  order.ID,
		Amount:   passType.PriceCents,
		Currency: passType.Currency,
		KeyID:    s.keyID,
	}, nil
}

// ConfirmPayment transitions a pass to succeeded. Idempotent per pass: the
// first success wins, and repeat calls return the stored record without
// touching the QR token or the expiry window.
func (s *service) ConfirmPayment(ctx context.Context, passID, paymentID string) (*PurchasedPass, error) {
	pass, err := s.repo.GetByID(ctx, passID)
	if err != nil {
		return nil, ErrPassNotFound
	}

	if pass.PaymentStatus == StatusSucceeded {
		return pass, nil
	}

	return s.activate(ctx, pass, paymentID)
}

// MarkCaptured applies a provider-delivered payment.captured event, resolved
// by the external order id. Replays for an already-succeeded pass are no-ops.
func (s *service) MarkCaptured(ctx context.Context, orderID, paymentID string) error {
	pass, err := s.repo.GetByPaymentIntentID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return payment.ErrUnknownOrder
		}
		return err
	}

	if pass.PaymentStatus == StatusSucceeded {
		return nil
	}

	// Keep the order id as the stored intent; the provider's payment id is
	// not the reconciliation key.
	_, err = s.activate(ctx, pass, orderID)
	return err
}

func (s *service) activate(ctx context.Context, pass *PurchasedPass, paymentIntentID string) (*PurchasedPass, error) {
	passType, err := s.gymRepo.GetPassTypeByID(ctx, pass.PassTypeID)
	if err != nil {
		return nil, err
	}

	qrToken, err := s.signer.Encode(pass.ID)
	if err != nil {
		return nil, err
	}

	// Expiry counts from confirmation, not purchase, so checkout delays do
	// not shorten the usable window.
	expiryDate := time.Now().AddDate(0, 0, passType.DurationDays)

	updated, err := s.repo.MarkSucceeded(ctx, pass.ID, paymentIntentID, qrToken, expiryDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Lost a confirm/webhook race; the other writer's result stands.
			return s.repo.GetByID(ctx, pass.ID)
		}
		return nil, err
	}

	logger.Info("Pass activated",
		"pass_id", updated.ID,
		"expiry_date", updated.ExpiryDate,
	)

	s.sendReceipt(ctx, updated, passType)

	return updated, nil
}

func (s *service) sendReceipt(ctx context.Context, pass *PurchasedPass, passType *gym.PassType) {
	if s.email == nil || pass.UserID == nil {
		return
	}

	details, err := s.repo.GetDetails(ctx, pass.ID)
	if err != nil || details.HolderEmail == nil {
		return
	}

	name := ""
	if details.HolderName != nil {
		name = *details.HolderName
	}

	if err := s.email.SendPassReceipt(ctx, *details.HolderEmail, name, passType.Name, pass.ExpiryDate); err != nil {
		logger.Error("Failed to queue receipt email", "pass_id", pass.ID, "error", err)
	}
}

func (s *service) GetStatus(ctx context.Context, passID string) (*StatusResponse, error) {
	pass, err := s.repo.GetByID(ctx, passID)
	if err != nil {
		return nil, ErrPassNotFound
	}

	resp := &StatusResponse{Status: pass.PaymentStatus}
	if pass.PaymentStatus == StatusSucceeded && pass.QRCodeValue != nil {
		resp.QRCodeValue = *pass.QRCodeValue
		resp.ExpiryDate = &pass.ExpiryDate
	}

	return resp, nil
}

func (s *service) GetActivePasses(ctx context.Context, userID, deviceID *string) ([]PassDetails, error) {
	return s.repo.ListActive(ctx, userID, deviceID)
}

func (s *service) GetDetails(ctx context.Context, passID string) (*PassDetails, error) {
	details, err := s.repo.GetDetails(ctx, passID)
	if err != nil {
		return nil, ErrPassNotFound
	}
	return details, nil
}
