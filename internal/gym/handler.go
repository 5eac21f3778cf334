package gym

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"github.com/pras75299/gymapp/internal/api"

	"github.com/gin-gonic/gin"
)

var qrIdentifierPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// @Summary      Fetch a gym and its pass catalog by QR identifier
// @Description  Resolves the identifier scanned from a gym's QR poster
// @Tags         gyms
// @Produce      json
// @Param        qrIdentifier path string true "Gym QR identifier"
// @Success      200 {object} gym.GymWithPasses
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/gym/{qrIdentifier} [get]
func (h *Handler) GetByQRIdentifier(c *gin.Context) {
	qrIdentifier := c.Param("qrIdentifier")
	if !qrIdentifierPattern.MatchString(qrIdentifier) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid QR identifier"})
		return
	}

	ctx := c.Request.Context()
	gym, err := h.service.GetGymByQRIdentifier(ctx, qrIdentifier)
	if err != nil {
		switch err {
		case ErrGymNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch gym"})
		}
		return
	}

	c.JSON(http.StatusOK, gym)
}

// @Summary      Create a gym
// @Description  Admin-only: register a gym and its scannable identifier
// @Tags         admin,gyms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body gym.CreateGymRequest true "Gym payload"
// @Success      201 {object} gym.Gym
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/admin/gyms [post]
func (h *Handler) CreateGym(c *gin.Context) {
	var req CreateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if !qrIdentifierPattern.MatchString(req.QRIdentifier) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid QR identifier"})
		return
	}

	ctx := c.Request.Context()
	gym, err := h.service.CreateGym(ctx, req)
	if err != nil {
		if errors.Is(err, ErrDuplicateQRIdentifier) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "QR identifier already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create gym"})
		return
	}

	c.JSON(http.StatusCreated, gym)
}

// @Summary      List gyms
// @Tags         admin,gyms
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} gym.Gym
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/admin/gyms [get]
func (h *Handler) ListGyms(c *gin.Context) {
	ctx := c.Request.Context()
	gyms, err := h.service.GetAllGyms(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch gyms"})
		return
	}

	c.JSON(http.StatusOK, gyms)
}

// @Summary      Create a pass type
// @Description  Admin-only: add a purchasable pass to a gym's catalog
// @Tags         admin,gyms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        gymID path int true "Gym ID"
// @Param        request body gym.CreatePassTypeRequest true "Pass type payload"
// @Success      201 {object} gym.PassType
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/admin/gyms/{gymID}/passes [post]
func (h *Handler) CreatePassType(c *gin.Context) {
	gymIDStr := c.Param("gymID")
	gymID, err := strconv.Atoi(gymIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid gym ID"})
		return
	}

	var req CreatePassTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	passType, err := h.service.CreatePassType(ctx, gymID, req)
	if err != nil {
		switch err {
		case ErrGymNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create pass type"})
		}
		return
	}

	c.JSON(http.StatusCreated, passType)
}
