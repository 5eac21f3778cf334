package validation

import (
	"context"
	"errors"
	"time"

	"github.com/pras75299/gymapp/internal/metrics"
	"github.com/pras75299/gymapp/internal/pass"
	"github.com/pras75299/gymapp/internal/qrcode"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid pass identifier")
	ErrPassNotFound = errors.New("pass not found")
)

const (
	ReasonExpired      = "expired"
	ReasonNotPaid      = "payment not completed"
	ReasonNotActivated = "not activated"
)

// Result is what a staff scanner sees. For an invalid pass only Valid and
// Reason are populated; payment and holder details never leak through a
// failed check.
type Result struct {
	Valid        bool       `json:"valid"`
	Reason       string     `json:"reason,omitempty"`
	PassID       string     `json:"pass_id,omitempty"`
	PassTypeName string     `json:"pass_type_name,omitempty"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	RemainingMin int64      `json:"remaining_minutes,omitempty"`
	RemainingHrs int64      `json:"remaining_hours,omitempty"`
	Amount       int64      `json:"amount,omitempty"`
	Currency     string     `json:"currency,omitempty"`
	Status       string     `json:"status,omitempty"`
	HolderName   *string    `json:"holder_name,omitempty"`
	HolderEmail  *string    `json:"holder_email,omitempty"`
}

type Service interface {
	Validate(ctx context.Context, raw string) (*Result, error)
}

type service struct {
	passes pass.Service
	signer *qrcode.Signer
	now    func() time.Time
}

func NewService(passes pass.Service, signer *qrcode.Signer) Service {
	return &service{
		passes: passes,
		signer: signer,
		now:    time.Now,
	}
}

// Validate checks a scanned QR payload or a bare pass id for entry. A pass
// admits when it is active, its payment succeeded and it has not expired;
// any other state yields only a coarse reason.
func (s *service) Validate(ctx context.Context, raw string) (*Result, error) {
	passID, err := s.resolvePassID(raw)
	if err != nil {
		metrics.RecordPassValidation("invalid_input")
		return nil, err
	}

	details, err := s.passes.GetDetails(ctx, passID)
	if err != nil {
		metrics.RecordPassValidation("not_found")
		return nil, ErrPassNotFound
	}

	now := s.now()

	// Expiry is checked first: an expired pass reads expired even when its
	// flags were never cleaned up.
	if !details.ExpiryDate.After(now) {
		metrics.RecordPassValidation("expired")
		return &Result{Valid: false, Reason: ReasonExpired}, nil
	}
	if details.PaymentStatus != pass.StatusSucceeded {
		metrics.RecordPassValidation("not_paid")
		return &Result{Valid: false, Reason: ReasonNotPaid}, nil
	}
	if !details.IsActive {
		metrics.RecordPassValidation("not_activated")
		return &Result{Valid: false, Reason: ReasonNotActivated}, nil
	}

	remaining := details.ExpiryDate.Sub(now)
	remainingMin := int64((remaining + time.Minute - 1) / time.Minute)
	remainingHrs := (remainingMin + 59) / 60

	metrics.RecordPassValidation("valid")

	purchaseDate := details.PurchaseDate
	expiryDate := details.ExpiryDate

	return &Result{
		Valid:        true,
		PassID:       details.ID,
		PassTypeName: details.PassTypeName,
		PurchaseDate: &purchaseDate,
		ExpiryDate:   &expiryDate,
		RemainingMin: remainingMin,
		RemainingHrs: remainingHrs,
		Amount:       details.PriceCents,
		Currency:     details.Currency,
		Status:       string(details.PaymentStatus),
		HolderName:   details.HolderName,
		HolderEmail:  details.HolderEmail,
	}, nil
}

// resolvePassID accepts either the signed QR token or a bare pass uuid, so
// scanners can fall back to manual entry of the printed id.
func (s *service) resolvePassID(raw string) (string, error) {
	if raw == "" {
		return "", ErrInvalidInput
	}

	if passID, err := s.signer.Decode(raw); err == nil {
		return passID, nil
	}

	if id, err := uuid.Parse(raw); err == nil {
		return id.String(), nil
	}

	return "", ErrInvalidInput
}
