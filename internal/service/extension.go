package service

import (
	"context"
	"time"

	"github.com/flexprice/rentalbilling/internal/api/dto"
	"github.com/flexprice/rentalbilling/internal/domain/booking"
	"github.com/flexprice/rentalbilling/internal/domain/rateplan"
	"github.com/flexprice/rentalbilling/internal/domain/settlement"
	ierr "github.com/flexprice/rentalbilling/internal/errors"
	"github.com/flexprice/rentalbilling/internal/idempotency"
	"github.com/flexprice/rentalbilling/internal/types"
	"github.com/shopspring/decimal"
)

var (
	// DefaultExtensionHourlyRate applies when the plan yields no usable hourly rate
	DefaultExtensionHourlyRate = decimal.NewFromInt(50)
	// DefaultExtensionKmPerHour applies when the plan yields no usable km allowance
	DefaultExtensionKmPerHour = decimal.NewFromInt(10)
	// PackageExtensionHourlyRate is the per hour rate for 24 hour and daily plans
	// that do not carry an explicit ratePerHour
	PackageExtensionHourlyRate = decimal.NewFromInt(3)
)

// ExtensionService prices and records requests to extend a booking
type ExtensionService interface {
	Quote(ctx context.Context, req dto.QuoteExtensionRequest) (*settlement.ExtensionQuote, error)
	Approve(ctx context.Context, req dto.ApproveExtensionRequest) (*booking.ExtensionRequest, error)
}

type extensionService struct {
	ServiceParams
	ratePlans RatePlanService
}

func NewExtensionService(params ServiceParams, ratePlans RatePlanService) ExtensionService {
	return &extensionService{ServiceParams: params, ratePlans: ratePlans}
}

func (s *extensionService) Quote(ctx context.Context, req dto.QuoteExtensionRequest) (*settlement.ExtensionQuote, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx = types.SetBookingID(ctx, req.BookingID)
	plan := s.ratePlans.Resolve(ctx, req.RateType, req.RatePlanUsed)

	quote := QuoteExtension(plan, req.CurrentEndDateTime, req.ProposedEndDateTime)
	if quote == nil {
		return nil, ierr.NewError("proposed end time does not extend the booking").
			WithHint("The new end time must be later than the current end time").
			WithReportableDetails(map[string]any{
				"currentEndDateTime":  req.CurrentEndDateTime,
				"proposedEndDateTime": req.ProposedEndDateTime,
			}).
			Mark(ierr.ErrInvalidExtensionWindow)
	}

	s.log(ctx).Debugw("priced extension quote",
		"booking_id", req.BookingID,
		"rate_plan_kind", plan.Kind,
		"extra_hours", quote.ExtraHours.String(),
		"total_amount", quote.TotalAmount.String(),
	)

	return quote, nil
}

// Approve re-prices the extension and turns it into a request. Seller raised
// extensions are approved immediately, customer ones wait for confirmation.
func (s *extensionService) Approve(ctx context.Context, req dto.ApproveExtensionRequest) (*booking.ExtensionRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	quote, err := s.Quote(ctx, req.QuoteExtensionRequest)
	if err != nil {
		return nil, err
	}

	ext := NewExtensionRequest(quote, req.CreatedBy, req.Reason, req.RequestedAt)
	ext.IdempotencyKey = s.extensionKey(req)

	s.log(ctx).Infow("extension request recorded",
		"booking_id", req.BookingID,
		"extension_id", ext.ID,
		"status", ext.Status,
		"created_by", ext.CreatedBy,
		"auto_approved", ext.AutoApproved,
	)

	return ext, nil
}

// extensionKey identifies an extension by booking and requested end time so a
// resubmitted request is recognized as the same one
func (s *extensionService) extensionKey(req dto.ApproveExtensionRequest) string {
	if s.Idempotency == nil {
		return ""
	}
	return s.Idempotency.KeyFromHeader(req.IdempotencyKey, idempotency.ScopeExtension, map[string]interface{}{
		"booking_id":    req.BookingID,
		"requested_end": req.ProposedEndDateTime.UTC().Format(time.RFC3339Nano),
	})
}

// QuoteExtension prices moving the end of a booking from currentEnd to
// proposedEnd. It returns nil when proposedEnd does not come after currentEnd.
// Extensions are billed in whole hours so the window is rounded up.
func QuoteExtension(plan *rateplan.Plan, currentEnd, proposedEnd time.Time) *settlement.ExtensionQuote {
	if !proposedEnd.After(currentEnd) {
		return nil
	}

	ms := proposedEnd.Sub(currentEnd).Milliseconds()
	extraHours := decimal.NewFromInt(ms).Div(types.MillisecondsPerHour).Ceil()
	if extraHours.IsZero() {
		// sub millisecond extension still costs an hour
		extraHours = decimal.NewFromInt(1)
	}

	hourlyRate, kmPerHour := ExtensionRates(plan)

	additionalAmount := extraHours.Mul(hourlyRate)
	gstAmount := additionalAmount.Mul(types.GSTRate)

	return &settlement.ExtensionQuote{
		CurrentEndDateTime: currentEnd,
		NewEndDateTime:     proposedEnd,
		RatePlanKind:       plan.Kind,
		ExtraHours:         extraHours,
		HourlyRate:         types.RoundMoney(hourlyRate),
		KmPerHour:          kmPerHour,
		AdditionalAmount:   types.RoundMoney(additionalAmount),
		GstAmount:          types.RoundMoney(gstAmount),
		TotalAmount:        types.RoundMoney(additionalAmount.Add(gstAmount)),
		AdditionalKmLimit:  types.RoundKm(extraHours.Mul(kmPerHour)),
		Warnings:           plan.Warnings,
	}
}

// ExtensionRates derives the per hour rate and per hour km allowance used to
// price an extension under plan
func ExtensionRates(plan *rateplan.Plan) (hourlyRate, kmPerHour decimal.Decimal) {
	p := plan.Params

	switch plan.Kind {
	case types.RATE_PLAN_KIND_HOURLY:
		hourlyRate = p.RatePerHour
		kmPerHour = p.KmFreePerHour

	case types.RATE_PLAN_KIND_TWELVE_HOUR:
		if plan.Raw.RatePerHour != nil {
			hourlyRate = *plan.Raw.RatePerHour
		} else {
			hourlyRate = p.BaseRate.Div(twelveHours)
		}
		kmPerHour = p.KmLimit.Div(twelveHours).Round(0)

	case types.RATE_PLAN_KIND_TWENTY_FOUR_HOUR:
		hourlyRate = packageHourlyRate(plan.Raw)
		kmPerHour = p.KmLimit.Div(twentyFourHours).Round(0)

	case types.RATE_PLAN_KIND_DAILY:
		hourlyRate = packageHourlyRate(plan.Raw)
		kmPerHour = p.KmLimitPerDay.Div(twentyFourHours).Round(0)

	default:
		hourlyRate = p.RatePerHour
	}

	if !hourlyRate.IsPositive() {
		hourlyRate = DefaultExtensionHourlyRate
	}
	if !kmPerHour.IsPositive() {
		kmPerHour = DefaultExtensionKmPerHour
	}
	return hourlyRate, kmPerHour
}

func packageHourlyRate(raw rateplan.RawParams) decimal.Decimal {
	if raw.RatePerHour != nil {
		return *raw.RatePerHour
	}
	return PackageExtensionHourlyRate
}

// NewExtensionRequest records an accepted quote as an extension request
func NewExtensionRequest(
	quote *settlement.ExtensionQuote,
	createdBy types.ExtensionInitiator,
	reason string,
	requestedAt time.Time,
) *booking.ExtensionRequest {
	ext := &booking.ExtensionRequest{
		ID:                   types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EXTENSION_REQUEST),
		RequestedEndDateTime: quote.NewEndDateTime,
		AdditionalHours:      quote.ExtraHours,
		AdditionalAmount:     quote.AdditionalAmount,
		AdditionalGst:        quote.GstAmount,
		AdditionalKmLimit:    quote.AdditionalKmLimit,
		Status:               types.ExtensionStatusPending,
		CreatedBy:            createdBy,
		Reason:               reason,
		CreatedAt:            requestedAt,
	}

	if createdBy == types.ExtensionInitiatorSeller {
		ext.Status = types.ExtensionStatusApproved
		ext.AutoApproved = true
	}

	return ext
}
