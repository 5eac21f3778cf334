package payment

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/pras75299/gymapp/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type MockCaptureHandler struct {
	mock.Mock
}

func (m *MockCaptureHandler) MarkCaptured(ctx context.Context, orderID, paymentID string) error {
	args := m.Called(ctx, orderID, paymentID)
	return args.Error(0)
}

const webhookSecret = "webhook-secret"

func capturedEventBody(orderID, paymentID string) []byte {
	return []byte(fmt.Sprintf(
		`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"%s","order_id":"%s"}}}}`,
		paymentID, orderID,
	))
}

func postWebhook(handler *WebhookHandler, body []byte, signature string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/webhook", handler.Handle)

	req := httptest.NewRequest("POST", "/api/webhook", bytes.NewReader(body))
	if signature != "" {
		req.Header.Set(SignatureHeader, signature)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWebhook_PaymentCaptured(t *testing.T) {
	capture := new(MockCaptureHandler)
	capture.On("MarkCaptured", mock.Anything, "order_123", "pay_456").Return(nil)

	handler := NewWebhookHandler(webhookSecret, capture)
	body := capturedEventBody("order_123", "pay_456")

	w := postWebhook(handler, body, signBody(body, webhookSecret))

	assert.Equal(t, http.StatusOK, w.Code)
	capture.AssertExpectations(t)
}

func TestWebhook_TamperedBodyRejected(t *testing.T) {
	capture := new(MockCaptureHandler)
	handler := NewWebhookHandler(webhookSecret, capture)

	original := capturedEventBody("order_123", "pay_456")
	tampered := capturedEventBody("order_attacker", "pay_456")

	w := postWebhook(handler, tampered, signBody(original, webhookSecret))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	capture.AssertNotCalled(t, "MarkCaptured", mock.Anything, mock.Anything, mock.Anything)
}

func TestWebhook_MissingSignatureRejected(t *testing.T) {
	capture := new(MockCaptureHandler)
	handler := NewWebhookHandler(webhookSecret, capture)
	body := capturedEventBody("order_123", "pay_456")

	w := postWebhook(handler, body, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhook_UnrecognizedEventAcknowledged(t *testing.T) {
	capture := new(MockCaptureHandler)
	handler := NewWebhookHandler(webhookSecret, capture)

	body := []byte(`{"event":"payment.failed","payload":{}}`)
	w := postWebhook(handler, body, signBody(body, webhookSecret))

	assert.Equal(t, http.StatusOK, w.Code)
	capture.AssertNotCalled(t, "MarkCaptured", mock.Anything, mock.Anything, mock.Anything)
}

func TestWebhook_UnknownOrderAcknowledged(t *testing.T) {
	capture := new(MockCaptureHandler)
	capture.On("MarkCaptured", mock.Anything, "order_unknown", "pay_456").Return(ErrUnknownOrder)

	handler := NewWebhookHandler(webhookSecret, capture)
	body := capturedEventBody("order_unknown", "pay_456")

	w := postWebhook(handler, body, signBody(body, webhookSecret))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhook_StoreFailureReturns500(t *testing.T) {
	capture := new(MockCaptureHandler)
	capture.On("MarkCaptured", mock.Anything, "order_123", "pay_456").Return(assert.AnError)

	handler := NewWebhookHandler(webhookSecret, capture)
	body := capturedEventBody("order_123", "pay_456")

	w := postWebhook(handler, body, signBody(body, webhookSecret))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
