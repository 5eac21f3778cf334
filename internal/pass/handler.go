package pass

import (
	"errors"
	"net/http"

	"github.com/pras75299/gymapp/internal/api"
	"github.com/pras75299/gymapp/internal/auth"
	"github.com/pras75299/gymapp/internal/metrics"
	"github.com/pras75299/gymapp/internal/payment"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeviceIDHeader carries the anonymous device scope for clients that have
// not signed in.
const DeviceIDHeader = "X-Device-Id"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

func callerScope(c *gin.Context) (userID, deviceID *string) {
	if id, ok := auth.GetUserID(c); ok {
		userID = &id
	}
	if d := c.GetHeader(DeviceIDHeader); d != "" {
		deviceID = &d
	}
	return userID, deviceID
}

// @Summary      Purchase a pass
// @Description  Creates a pending purchased pass and opens an external payment order
// @Tags         passes
// @Accept       json
// @Produce      json
// @Param        X-Device-Id header string false "Anonymous device identifier"
// @Param        request body pass.PurchaseRequest true "Purchase payload"
// @Success      200 {object} pass.PurchaseResult
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      502 {object} api.ErrorResponse
// @Router       /api/passes/purchase [post]
func (h *Handler) Purchase(c *gin.Context) {
	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	userID, deviceID := callerScope(c)
	if req.DeviceID != nil {
		deviceID = req.DeviceID
	}

	ctx := c.Request.Context()
	result, err := h.service.CreatePendingPurchase(ctx, req.PassTypeID, userID, deviceID)
	if err != nil {
		switch {
		case errors.Is(err, ErrPassTypeNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Pass type not found"})
		case errors.Is(err, payment.ErrGateway):
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "Payment provider unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create purchase"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary      Confirm a payment
// @Description  Marks a pass paid and issues its QR token; idempotent per pass
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body pass.ConfirmRequest true "Confirmation payload"
// @Success      200 {object} pass.PurchasedPass
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/payments/confirm [post]
func (h *Handler) Confirm(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing required fields: pass_id and payment_id"})
		return
	}

	if _, err := uuid.Parse(req.PassID); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid pass id"})
		return
	}

	ctx := c.Request.Context()
	pass, err := h.service.ConfirmPayment(ctx, req.PassID, req.PaymentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrPassNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Pass not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to confirm payment"})
		}
		return
	}

	metrics.RecordPaymentConfirmation("confirm")
	c.JSON(http.StatusOK, pass)
}

// @Summary      Poll a pass's payment status
// @Tags         passes
// @Produce      json
// @Param        passId path string true "Purchased pass ID"
// @Success      200 {object} pass.StatusResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/passes/{passId}/status [get]
func (h *Handler) Status(c *gin.Context) {
	passID := c.Param("passId")
	if _, err := uuid.Parse(passID); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid pass id"})
		return
	}

	ctx := c.Request.Context()
	status, err := h.service.GetStatus(ctx, passID)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Pass not found"})
		return
	}

	c.JSON(http.StatusOK, status)
}

// @Summary      List the caller's active passes
// @Description  Scope comes from the bearer token and/or the X-Device-Id header
// @Tags         passes
// @Produce      json
// @Param        X-Device-Id header string false "Anonymous device identifier"
// @Success      200 {array} pass.PassDetails
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/passes/active [get]
func (h *Handler) ListActive(c *gin.Context) {
	userID, deviceID := callerScope(c)
	if userID == nil && deviceID == nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing device or user identity"})
		return
	}

	ctx := c.Request.Context()
	passes, err := h.service.GetActivePasses(ctx, userID, deviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch passes"})
		return
	}

	c.JSON(http.StatusOK, passes)
}
