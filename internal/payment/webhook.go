package payment

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/pras75299/gymapp/internal/api"
	"github.com/pras75299/gymapp/internal/logger"
	"github.com/pras75299/gymapp/internal/metrics"

	"github.com/gin-gonic/gin"
)

const SignatureHeader = "X-Razorpay-Signature"

const eventPaymentCaptured = "payment.captured"

type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// CaptureHandler is implemented by the pass lifecycle service; it marks the
// pass reconciled to the given order as paid.
type CaptureHandler interface {
	MarkCaptured(ctx context.Context, orderID, paymentID string) error
}

type WebhookHandler struct {
	secret  string
	capture CaptureHandler
}

func NewWebhookHandler(secret string, capture CaptureHandler) *WebhookHandler {
	return &WebhookHandler{
		secret:  secret,
		capture: capture,
	}
}

// @Summary      Payment provider webhook
// @Description  Receives provider events; only payment.captured changes state
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-Razorpay-Signature header string true "HMAC-SHA256 of the raw body"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Router       /api/webhook [post]
func (h *WebhookHandler) Handle(c *gin.Context) {
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Failed to read body"})
		return
	}

	// The signature covers the exact raw bytes; verify before parsing.
	if !VerifySignature(rawBody, c.GetHeader(SignatureHeader), h.secret) {
		logger.Error("Webhook rejected: signature mismatch", "client_ip", c.ClientIP())
		metrics.RecordWebhookSignatureFailure()
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid signature"})
		return
	}

	var event webhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Malformed payload"})
		return
	}

	if event.Event != eventPaymentCaptured {
		// Unhandled event types are acknowledged so the provider stops
		// redelivering them.
		logger.Debug("Ignoring webhook event", "event", event.Event)
		c.JSON(http.StatusOK, api.MessageResponse{Message: "ignored"})
		return
	}

	orderID := event.Payload.Payment.Entity.OrderID
	paymentID := event.Payload.Payment.Entity.ID
	if orderID == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing order id"})
		return
	}

	if err := h.capture.MarkCaptured(c.Request.Context(), orderID, paymentID); err != nil {
		if errors.Is(err, ErrUnknownOrder) {
			// An unknown order id will never resolve; acknowledge so the
			// provider stops redelivering.
			logger.Error("Webhook for unknown order", "order_id", orderID)
			c.JSON(http.StatusOK, api.MessageResponse{Message: "ignored"})
			return
		}
		logger.Error("Failed to apply captured payment", "order_id", orderID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to process event"})
		return
	}

	metrics.RecordPaymentConfirmation("webhook")
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}
