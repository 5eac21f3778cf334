// Package payment wraps the external payment provider: opening orders for
// pass purchases and authenticating the provider's webhook callbacks.
package payment

import (
	"context"
	"errors"
)

var (
	ErrGateway = errors.New("payment gateway request failed")

	// ErrUnknownOrder is returned by the capture handler when no purchased
	// pass reconciles to the order id a webhook reports.
	ErrUnknownOrder = errors.New("no pass for order id")
)

// Order is the provider-side order opened for a pending purchase.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Gateway opens external payment orders. Amounts are in minor units
// (paise for INR). The receipt is the purchased pass id, used to reconcile
// the order back to the pass.
type Gateway interface {
	CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string, notes map[string]string) (*Order, error)
}
