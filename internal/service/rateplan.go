package service

import (
	"context"
	"fmt"

	"github.com/flexprice/rentalbilling/internal/domain/rateplan"
	"github.com/flexprice/rentalbilling/internal/types"
)

// RatePlanService turns the raw plan string and the partial plan record found
// on a booking into a fully populated plan
type RatePlanService interface {
	Resolve(ctx context.Context, rawKind string, raw rateplan.RawParams) *rateplan.Plan
}

type ratePlanService struct {
	ServiceParams
}

func NewRatePlanService(params ServiceParams) RatePlanService {
	return &ratePlanService{ServiceParams: params}
}

// Resolve never fails. An unrecognized plan string bills under the generic
// fallback defaults; the plan is flagged and a warning is logged and attached.
func (s *ratePlanService) Resolve(ctx context.Context, rawKind string, raw rateplan.RawParams) *rateplan.Plan {
	kind, known := types.ParseRatePlanKind(rawKind)

	plan := &rateplan.Plan{
		Kind:    kind,
		RawKind: rawKind,
		Params:  rateplan.ApplyDefaults(kind, raw),
		Raw:     raw,
	}

	if !known {
		plan.Fallback = true
		plan.Warnings = append(plan.Warnings, fmt.Sprintf(
			"rate plan %q is not recognized, billed with fallback rate %s per hour and no free km",
			rawKind, plan.Params.RatePerHour.String(),
		))
		s.log(ctx).Warnw("unrecognized rate plan kind, using fallback defaults",
			"raw_kind", rawKind,
			"booking_id", types.GetBookingID(ctx),
			"rate_per_hour", plan.Params.RatePerHour.String(),
		)
	}

	return plan
}
