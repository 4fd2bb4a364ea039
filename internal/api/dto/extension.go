package dto

import (
	"time"

	"github.com/flexprice/rentalbilling/internal/domain/rateplan"
	ierr "github.com/flexprice/rentalbilling/internal/errors"
	"github.com/flexprice/rentalbilling/internal/types"
	"github.com/flexprice/rentalbilling/internal/validator"
)

// QuoteExtensionRequest asks for the price of moving a booking's end time
type QuoteExtensionRequest struct {
	BookingID           string             `json:"bookingId"`
	CurrentEndDateTime  time.Time          `json:"currentEndDateTime" validate:"required"`
	ProposedEndDateTime time.Time          `json:"proposedEndDateTime" validate:"required"`
	RateType            string             `json:"rateType"`
	RatePlanUsed        rateplan.RawParams `json:"ratePlanUsed"`
}

func (r *QuoteExtensionRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ApproveExtensionRequest turns a quote into an extension request on the booking
type ApproveExtensionRequest struct {
	QuoteExtensionRequest

	CreatedBy types.ExtensionInitiator `json:"createdBy" validate:"required,oneof=customer seller"`
	Reason    string                   `json:"reason,omitempty" validate:"omitempty,max=500"`

	// RequestedAt and IdempotencyKey are taken from the request by the handler
	RequestedAt    time.Time `json:"-"`
	IdempotencyKey string    `json:"-"`
}

func (r *ApproveExtensionRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.BookingID == "" {
		return ierr.NewError("booking id is required").
			WithHint("Extensions can only be recorded against a booking").
			WithReportableDetails(map[string]any{"bookingId": "required"}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
