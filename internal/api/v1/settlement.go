package v1

import (
	"net/http"
	"time"

	"github.com/flexprice/rentalbilling/internal/api/dto"
	ierr "github.com/flexprice/rentalbilling/internal/errors"
	"github.com/flexprice/rentalbilling/internal/logger"
	"github.com/flexprice/rentalbilling/internal/service"
	"github.com/gin-gonic/gin"
)

type SettlementHandler struct {
	service service.SettlementService
	log     *logger.Logger
}

func NewSettlementHandler(service service.SettlementService, log *logger.Logger) *SettlementHandler {
	return &SettlementHandler{service: service, log: log}
}

// @Summary Preview a settlement
// @Description Compute the final bill for a booking and drop without recording anything
// @Tags Settlements
// @Accept json
// @Produce json
// @Param request body dto.SettleBookingRequest true "Booking and drop"
// @Success 200 {object} settlement.Result
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /settlements/preview [post]
func (h *SettlementHandler) Preview(c *gin.Context) {
	var req dto.SettleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}
	defaultDropTime(&req, time.Now().UTC())

	resp, err := h.service.Settle(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Settle a batch of bookings
// @Description Settle independent bookings concurrently. Items are reported in request order.
// @Tags Settlements
// @Accept json
// @Produce json
// @Param request body dto.SettleBatchRequest true "Bookings and drops"
// @Success 200 {object} dto.SettleBatchResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /settlements/batch [post]
func (h *SettlementHandler) Batch(c *gin.Context) {
	var req dto.SettleBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	now := time.Now().UTC()
	for i := range req.Items {
		defaultDropTime(&req.Items[i], now)
	}

	resp, err := h.service.SettleBatch(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// a drop recorded without a time is taken to happen now
func defaultDropTime(req *dto.SettleBookingRequest, now time.Time) {
	if req.Drop.DropTime.IsZero() {
		req.Drop.DropTime = now
	}
}
