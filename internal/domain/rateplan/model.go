package rateplan

import (
	"github.com/flexprice/rentalbilling/internal/types"
	"github.com/shopspring/decimal"
)

// RawParams is the rate plan record as captured on a booking (ratePlanUsed).
// Every field is optional; absent fields resolve to the per kind default.
type RawParams struct {
	// Hourly
	RatePerHour            *decimal.Decimal `json:"ratePerHour,omitempty"`
	KmFreePerHour          *decimal.Decimal `json:"kmFreePerHour,omitempty"`
	ExtraChargePerKmHourly *decimal.Decimal `json:"extraChargePerKmHourly,omitempty"`

	// 12 hour and 24 hour packages
	BaseRate             *decimal.Decimal `json:"baseRate,omitempty"`
	KmLimit              *decimal.Decimal `json:"kmLimit,omitempty"`
	ExtraBlockRatePer12h *decimal.Decimal `json:"extraBlockRatePer12h,omitempty"`

	// Daily
	RatePerDay           *decimal.Decimal `json:"ratePerDay,omitempty"`
	KmLimitPerDay        *decimal.Decimal `json:"kmLimitPerDay,omitempty"`
	AvailableHoursPerDay *decimal.Decimal `json:"availableHoursPerDay,omitempty"`

	// Shared overage rates
	ExtraChargePerHour *decimal.Decimal `json:"extraChargePerHour,omitempty"`
	ExtraChargePerKm   *decimal.Decimal `json:"extraChargePerKm,omitempty"`
}

// Params is a fully populated rate plan. Fields that do not apply to the
// plan kind are left at zero.
type Params struct {
	RatePerHour          decimal.Decimal `json:"ratePerHour"`
	KmFreePerHour        decimal.Decimal `json:"kmFreePerHour"`
	BaseRate             decimal.Decimal `json:"baseRate"`
	KmLimit              decimal.Decimal `json:"kmLimit"`
	ExtraBlockRatePer12h decimal.Decimal `json:"extraBlockRatePer12h"`
	RatePerDay           decimal.Decimal `json:"ratePerDay"`
	KmLimitPerDay        decimal.Decimal `json:"kmLimitPerDay"`
	AvailableHoursPerDay decimal.Decimal `json:"availableHoursPerDay"`
	ExtraChargePerHour   decimal.Decimal `json:"extraChargePerHour"`
	ExtraChargePerKm     decimal.Decimal `json:"extraChargePerKm"`
}

// Plan is a rate plan resolved to its canonical kind and ready for billing
type Plan struct {
	Kind    types.RatePlanKind `json:"kind"`
	RawKind string             `json:"rawKind"`
	Params  Params             `json:"params"`

	// Raw keeps the record the plan was resolved from. Extension pricing
	// distinguishes a rate that was set explicitly from a defaulted one.
	Raw RawParams `json:"-"`

	// Fallback is true when RawKind was not recognized and the generic
	// defaults were applied
	Fallback bool     `json:"fallback"`
	Warnings []string `json:"warnings,omitempty"`
}
