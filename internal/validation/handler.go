package validation

import (
	"errors"
	"net/http"

	"github.com/pras75299/gymapp/internal/api"
	"github.com/pras75299/gymapp/internal/logger"
	"github.com/pras75299/gymapp/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	limiter ratelimit.Limiter
}

func NewHandler(service Service, limiter ratelimit.Limiter) *Handler {
	return &Handler{
		service: service,
		limiter: limiter,
	}
}

// RateLimit guards the validation endpoint per caller IP. When the limiter
// backend fails the request is allowed through; a broken Redis must not
// lock the front door.
func (h *Handler) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := h.limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Error("Rate limiter unavailable", "client_ip", c.ClientIP(), "error", err)
			c.Next()
			return
		}
		if !allowed {
			c.JSON(http.StatusTooManyRequests, api.ErrorResponse{Error: "Too many validation requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// @Summary      Validate a pass for entry
// @Description  Accepts a scanned QR payload or a bare pass id and reports whether the pass admits
// @Tags         validation
// @Produce      json
// @Param        pass_id query string true "Scanned QR payload or pass id"
// @Success      200 {object} validation.Result
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      429 {object} api.ErrorResponse
// @Router       /api/validate [get]
func (h *Handler) Validate(c *gin.Context) {
	raw := c.Query("pass_id")

	result, err := h.service.Validate(c.Request.Context(), raw)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid pass identifier"})
		case errors.Is(err, ErrPassNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Pass not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Validation failed"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
