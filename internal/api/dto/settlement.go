package dto

import (
	"time"

	"github.com/flexprice/rentalbilling/internal/domain/booking"
	"github.com/flexprice/rentalbilling/internal/domain/settlement"
	ierr "github.com/flexprice/rentalbilling/internal/errors"
	"github.com/flexprice/rentalbilling/internal/validator"
)

// MaxBatchSize bounds the number of bookings settled in one batch call
const MaxBatchSize = 500

// SettleBookingRequest carries a booking snapshot and the drop that closes it
type SettleBookingRequest struct {
	Booking booking.Booking   `json:"booking"`
	Drop    booking.DropInput `json:"drop"`
}

func (r *SettleBookingRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type SettleBatchRequest struct {
	Items []SettleBookingRequest `json:"items" validate:"required,min=1,max=500"`
}

func (r *SettleBatchRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// BatchSettlementItem is the outcome for one booking of a batch, in request order.
// Exactly one of Result and Error is set.
type BatchSettlementItem struct {
	BookingID string             `json:"bookingId"`
	Result    *settlement.Result `json:"result,omitempty"`
	Error     *ierr.ErrorDetail  `json:"error,omitempty"`
}

type SettleBatchResponse struct {
	Items     []BatchSettlementItem `json:"items"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
}

// NewBatchError converts a per item failure into its reported form
func NewBatchError(err error) *ierr.ErrorDetail {
	if err == nil {
		return nil
	}
	detail := ierr.NewErrorDetail(err)
	return &detail
}

// SubmitDropRequest settles a booking and records the drop with the booking system
type SubmitDropRequest struct {
	SettleBookingRequest

	// SubmittedAt and IdempotencyKey are taken from the request by the handler
	SubmittedAt    time.Time `json:"-"`
	IdempotencyKey string    `json:"-"`
}

func (r *SubmitDropRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type DropReceiptResponse struct {
	EventID        string             `json:"eventId"`
	ReceiptNumber  string             `json:"receiptNumber"`
	BookingID      string             `json:"bookingId"`
	IdempotencyKey string             `json:"idempotencyKey"`
	Currency       string             `json:"currency"`
	Settlement     *settlement.Result `json:"settlement"`
	SubmittedAt    time.Time          `json:"submittedAt"`
}
