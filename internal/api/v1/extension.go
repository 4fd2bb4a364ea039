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

type ExtensionHandler struct {
	service service.ExtensionService
	log     *logger.Logger
}

func NewExtensionHandler(service service.ExtensionService, log *logger.Logger) *ExtensionHandler {
	return &ExtensionHandler{service: service, log: log}
}

// @Summary Quote an extension
// @Description Price moving a booking's end time under its rate plan, GST shown separately
// @Tags Extensions
// @Accept json
// @Produce json
// @Param request body dto.QuoteExtensionRequest true "Current and proposed end time"
// @Success 200 {object} settlement.ExtensionQuote
// @Failure 400 {object} ierr.ErrorResponse
// @Router /extensions/quote [post]
func (h *ExtensionHandler) Quote(c *gin.Context) {
	var req dto.QuoteExtensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.Quote(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Request an extension
// @Description Record an extension request. Seller requests are approved immediately.
// @Tags Extensions
// @Accept json
// @Produce json
// @Param request body dto.ApproveExtensionRequest true "Extension request"
// @Success 201 {object} booking.ExtensionRequest
// @Failure 400 {object} ierr.ErrorResponse
// @Router /extensions/approve [post]
func (h *ExtensionHandler) Approve(c *gin.Context) {
	var req dto.ApproveExtensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}
	req.RequestedAt = time.Now().UTC()
	req.IdempotencyKey = c.GetHeader(types.HeaderIdempotencyKey)

	resp, err := h.service.Approve(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
