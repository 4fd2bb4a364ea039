package v1

import (
	"net/http"
	"time"

	"github.com/flexprice/rentalbilling/internal/api/dto"
	ierr "github.com/flexprice/rentalbilling/internal/errors"
	"github.com/flexprice/rentalbilling/internal/logger"
	"github.com/flexprice/rentalbilling/internal/service"
	"github.com/flexprice/rentalbilling/internal/types"
	"github.com/gin-gonic/gin"
)

type DropHandler struct {
	service service.DropService
	log     *logger.Logger
}

func NewDropHandler(service service.DropService, log *logger.Logger) *DropHandler {
	return &DropHandler{service: service, log: log}
}

// @Summary Submit a drop
// @Description Settle a booking and record the drop with the booking system
// @Tags Drops
// @Accept json
// @Produce json
// @Param request body dto.SubmitDropRequest true "Booking and drop"
// @Success 201 {object} dto.DropReceiptResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 502 {object} ierr.ErrorResponse
// @Router /drops [post]
func (h *DropHandler) SubmitDrop(c *gin.Context) {
	var req dto.SubmitDropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	now := time.Now().UTC()
	defaultDropTime(&req.SettleBookingRequest, now)
	req.SubmittedAt = now
	req.IdempotencyKey = c.GetHeader(types.HeaderIdempotencyKey)

	resp, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
