package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/flexprice/rentalbilling/internal/api/dto"
	"github.com/flexprice/rentalbilling/internal/domain/booking"
	"github.com/flexprice/rentalbilling/internal/domain/settlement"
	ierr "github.com/flexprice/rentalbilling/internal/errors"
	"github.com/flexprice/rentalbilling/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/sourcegraph/conc/iter"
)

// SettlementService reconciles a booking's trip charge with its extensions,
// ad-hoc charges and payments. Every call is a pure function of its input.
type SettlementService interface {
	ValidateDrop(b *booking.Booking, drop *booking.DropInput) error
	Settle(ctx context.Context, req dto.SettleBookingRequest) (*settlement.Result, error)
	SettleBatch(ctx context.Context, req dto.SettleBatchRequest) (*dto.SettleBatchResponse, error)
}

type settlementService struct {
	ServiceParams
	ratePlans RatePlanService
	charges   ChargeService
}

func NewSettlementService(params ServiceParams, ratePlans RatePlanService, charges ChargeService) SettlementService {
	return &settlementService{
		ServiceParams: params,
		ratePlans:     ratePlans,
		charges:       charges,
	}
}

// ValidateDrop checks the operator input before anything is computed. All
// problems are reported together, keyed by field.
func (s *settlementService) ValidateDrop(b *booking.Booking, drop *booking.DropInput) error {
	details := make(map[string]any)

	if drop.EndMeterReading == nil {
		details["endMeterReading"] = "end meter reading is required"
	} else if drop.EndMeterReading.LessThan(b.VehicleHandover.StartMeterReading) {
		details["endMeterReading"] = fmt.Sprintf(
			"end meter reading %s is below the start reading %s",
			drop.EndMeterReading.String(), b.VehicleHandover.StartMeterReading.String(),
		)
	}

	if drop.DropTime.IsZero() {
		details["dropTime"] = "drop time is required"
	}

	if drop.VehicleCondition == types.VehicleConditionDamaged && strings.TrimSpace(drop.DamageNotes) == "" {
		details["damageNotes"] = "damage notes are required when the vehicle is damaged"
	}

	if len(details) == 0 {
		return nil
	}

	return ierr.NewError("drop input is invalid").
		WithHint("Please correct the drop details before settling").
		WithReportableDetails(details).
		Mark(ierr.ErrValidation)
}

func (s *settlementService) Settle(ctx context.Context, req dto.SettleBookingRequest) (*settlement.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b, drop := &req.Booking, &req.Drop
	ctx = types.SetBookingID(ctx, b.ID)

	if err := s.ValidateDrop(b, drop); err != nil {
		return nil, err
	}

	plan := s.ratePlans.Resolve(ctx, b.RateType, b.RatePlanUsed)
	hours := ElapsedHours(b.Window(drop))
	km := DistanceTraveled(b.MeterReading(drop))
	charges := s.charges.Calculate(plan, hours, km)

	result := Reconcile(settlement.ReconcileInput{
		Charges:          charges,
		Extensions:       b.ExtensionRequests,
		Addons:           b.Addons,
		AdditionalCharge: drop.AdditionalCharge,
		Payments:         b.Payments,
		Warnings:         s.settlementWarnings(ctx, b, plan.Warnings),
	})

	s.log(ctx).Debugw("settled booking",
		"booking_id", b.ID,
		"rate_plan_kind", plan.Kind,
		"hours", hours.String(),
		"km", km.String(),
		"final_amount", result.FinalAmount.String(),
		"total_paid", result.TotalPaid.String(),
		"status", result.Status,
	)

	return result, nil
}

// settlementWarnings appends a warning for every extension or payment whose
// status is not recognized. Such entries are left out of the totals.
func (s *settlementService) settlementWarnings(ctx context.Context, b *booking.Booking, planWarnings []string) []string {
	var warnings []string
	warnings = append(warnings, planWarnings...)

	for _, e := range b.ExtensionRequests {
		if err := e.Status.Validate(); err != nil {
			s.log(ctx).Warnw("ignoring extension with unrecognized status",
				"booking_id", b.ID,
				"extension_id", e.ID,
				"status", e.Status,
			)
			warnings = append(warnings, fmt.Sprintf("extension %s has unrecognized status %q and was not charged", e.ID, e.Status))
		}
	}

	for i, p := range b.Payments {
		if err := p.Status.Validate(); err != nil {
			s.log(ctx).Warnw("ignoring payment with unrecognized status",
				"booking_id", b.ID,
				"payment_index", i,
				"status", p.Status,
			)
			warnings = append(warnings, fmt.Sprintf("payment %d has unrecognized status %q and was not counted", i, p.Status))
		}
	}

	return warnings
}

// SettleBatch settles independent bookings concurrently. Results keep the
// order of the request and one failing item does not affect the others.
func (s *settlementService) SettleBatch(ctx context.Context, req dto.SettleBatchRequest) (*dto.SettleBatchResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	items := iter.Map(req.Items, func(item *dto.SettleBookingRequest) dto.BatchSettlementItem {
		result, err := s.Settle(ctx, *item)
		if err != nil {
			return dto.BatchSettlementItem{
				BookingID: item.Booking.ID,
				Error:     dto.NewBatchError(err),
			}
		}
		return dto.BatchSettlementItem{BookingID: item.Booking.ID, Result: result}
	})

	failed := lo.CountBy(items, func(item dto.BatchSettlementItem) bool {
		return item.Error != nil
	})

	return &dto.SettleBatchResponse{
		Items:     items,
		Succeeded: len(items) - failed,
		Failed:    failed,
	}, nil
}

// Reconcile aggregates the trip charge, approved extensions, the additional
// charge and successful payments into a result. GST recorded on extensions is
// not part of the final amount.
func Reconcile(in settlement.ReconcileInput) *settlement.Result {
	extensionCharges := lo.Reduce(booking.ApprovedExtensions(in.Extensions),
		func(agg decimal.Decimal, e booking.ExtensionRequest, _ int) decimal.Decimal {
			return agg.Add(e.AdditionalAmount)
		}, decimal.Zero)

	totalPaid := lo.Reduce(booking.SuccessfulPayments(in.Payments),
		func(agg decimal.Decimal, p booking.Payment, _ int) decimal.Decimal {
			return agg.Add(p.Amount)
		}, decimal.Zero)

	additionalCharges := decimal.Zero
	if in.AdditionalCharge != nil {
		additionalCharges = in.AdditionalCharge.Amount
	}

	c := in.Charges
	finalAmount := c.TimeCharge.
		Add(c.ExtraKmCharge).
		Add(extensionCharges).
		Add(additionalCharges)
	// rounded from the exact difference, so it can be a cent off the
	// difference of the rounded finalAmount and totalPaid
	remaining := types.RoundMoney(finalAmount.Sub(totalPaid))

	status := types.SettlementStatusDue
	switch {
	case remaining.IsZero():
		status = types.SettlementStatusSettled
	case remaining.IsNegative():
		status = types.SettlementStatusOverpaid
	}

	return &settlement.Result{
		TotalKmTraveled:   types.RoundKm(c.Km),
		FreeKm:            types.RoundKm(c.FreeKm),
		ExtraKm:           types.RoundKm(c.ExtraKm),
		TimeCharge:        types.RoundMoney(c.TimeCharge),
		ExtraKmCharge:     types.RoundMoney(c.ExtraKmCharge),
		ExtensionCharges:  types.RoundMoney(extensionCharges),
		AdditionalCharges: types.RoundMoney(additionalCharges),
		FinalAmount:       types.RoundMoney(finalAmount),
		TotalPaid:         types.RoundMoney(totalPaid),
		RemainingAmount:   remaining,
		IsOverpaid:        status == types.SettlementStatusOverpaid,
		Status:            status,
		RatePlanKind:      c.Kind,
		Hours:             types.RoundHours(c.Hours),
		ExtraHours:        types.RoundHours(c.ExtraHours),
		HelmetCount:       booking.HelmetCount(in.Addons),
		Warnings:          in.Warnings,
	}
}
