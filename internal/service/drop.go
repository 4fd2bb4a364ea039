package service

import (
	"context"

	"github.com/flexprice/rentalbilling/internal/api/dto"
	ierr "github.com/flexprice/rentalbilling/internal/errors"
	"github.com/flexprice/rentalbilling/internal/idempotency"
	"github.com/flexprice/rentalbilling/internal/submission"
	"github.com/flexprice/rentalbilling/internal/types"
)

// DropService closes a booking: it settles the drop and hands the result to
// the booking system. Only one submission per booking may be in flight.
type DropService interface {
	Submit(ctx context.Context, req dto.SubmitDropRequest) (*dto.DropReceiptResponse, error)
}

type dropService struct {
	ServiceParams
	settlements SettlementService
}

func NewDropService(params ServiceParams, settlements SettlementService) DropService {
	return &dropService{ServiceParams: params, settlements: settlements}
}

func (s *dropService) Submit(ctx context.Context, req dto.SubmitDropRequest) (*dto.DropReceiptResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	bookingID := req.Booking.ID
	ctx = types.SetBookingID(ctx, bookingID)

	token, err := s.InFlight.Acquire(bookingID)
	if err != nil {
		return nil, err
	}
	defer s.InFlight.Release(bookingID, token)

	result, err := s.settlements.Settle(ctx, req.SettleBookingRequest)
	if err != nil {
		return nil, err
	}

	// one drop per booking, so retries of the same drop share a key
	key := s.Idempotency.KeyFromHeader(req.IdempotencyKey, idempotency.ScopeBookingDrop, map[string]interface{}{
		"booking_id": bookingID,
	})

	event := &submission.DropEvent{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DROP_EVENT),
		ReceiptNumber:  types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_DROP_RECEIPT),
		BookingID:      bookingID,
		IdempotencyKey: key,
		Currency:       s.currency(),
		Drop:           req.Drop,
		Settlement:     result,
		SubmittedAt:    req.SubmittedAt,
	}

	if err := s.DropSubmitter.SubmitDrop(ctx, event); err != nil {
		s.log(ctx).Errorw("failed to submit drop",
			"booking_id", bookingID,
			"idempotency_key", event.IdempotencyKey,
			"error", err,
		)
		return nil, ierr.WithError(err).
			WithHint("The drop could not be recorded, please retry").
			WithReportableDetails(map[string]any{"idempotencyKey": event.IdempotencyKey}).
			Mark(ierr.ErrHTTPClient)
	}

	s.log(ctx).Infow("drop submitted",
		"booking_id", bookingID,
		"receipt_number", event.ReceiptNumber,
		"final_amount", result.FinalAmount.String(),
		"status", result.Status,
	)

	return &dto.DropReceiptResponse{
		EventID:        event.ID,
		ReceiptNumber:  event.ReceiptNumber,
		BookingID:      bookingID,
		IdempotencyKey: event.IdempotencyKey,
		Currency:       event.Currency,
		Settlement:     result,
		SubmittedAt:    event.SubmittedAt,
	}, nil
}

func (s *dropService) currency() string {
	if s.Config == nil || s.Config.Billing.Currency == "" {
		return types.DEFAULT_CURRENCY
	}
	return s.Config.Billing.Currency
}
