package rateplan

import (
	"github.com/flexprice/rentalbilling/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var (
	// Hourly
	DefaultHourlyRatePerHour      = decimal.NewFromInt(50)
	DefaultHourlyKmFreePerHour    = decimal.NewFromInt(10)
	DefaultHourlyExtraChargePerKm = decimal.NewFromInt(6)

	// 12 hour
	DefaultTwelveHourBaseRate           = decimal.NewFromInt(500)
	DefaultTwelveHourKmLimit            = decimal.NewFromInt(120)
	DefaultTwelveHourExtraChargePerHour = decimal.NewFromInt(50)
	DefaultTwelveHourExtraChargePerKm   = decimal.NewFromInt(3)

	// 24 hour
	DefaultTwentyFourHourBaseRate             = decimal.NewFromInt(750)
	DefaultTwentyFourHourKmLimit              = decimal.NewFromInt(150)
	DefaultTwentyFourHourExtraBlockRatePer12h = decimal.NewFromInt(500)
	DefaultTwentyFourHourExtraChargePerHour   = decimal.NewFromInt(3)
	DefaultTwentyFourHourExtraChargePerKm     = decimal.NewFromInt(3)

	// Daily
	DefaultDailyRatePerDay           = decimal.NewFromInt(750)
	DefaultDailyKmLimitPerDay        = decimal.NewFromInt(150)
	DefaultDailyExtraChargePerHour   = decimal.NewFromInt(50)
	DefaultDailyExtraChargePerKm     = decimal.NewFromInt(3)
	DefaultDailyAvailableHoursPerDay = decimal.NewFromInt(36)

	// Unknown plans bill hourly with no free allowance
	DefaultFallbackRatePerHour      = decimal.NewFromInt(50)
	DefaultFallbackKmLimit          = decimal.Zero
	DefaultFallbackExtraChargePerKm = decimal.NewFromInt(3)
)

// ApplyDefaults fills every absent field relevant to kind with its default
func ApplyDefaults(kind types.RatePlanKind, raw RawParams) Params {
	switch kind {
	case types.RATE_PLAN_KIND_HOURLY:
		extraPerKm := raw.ExtraChargePerKmHourly
		if extraPerKm == nil {
			extraPerKm = raw.ExtraChargePerKm
		}
		return Params{
			RatePerHour:      lo.FromPtrOr(raw.RatePerHour, DefaultHourlyRatePerHour),
			KmFreePerHour:    lo.FromPtrOr(raw.KmFreePerHour, DefaultHourlyKmFreePerHour),
			ExtraChargePerKm: lo.FromPtrOr(extraPerKm, DefaultHourlyExtraChargePerKm),
		}

	case types.RATE_PLAN_KIND_TWELVE_HOUR:
		return Params{
			BaseRate:           lo.FromPtrOr(raw.BaseRate, DefaultTwelveHourBaseRate),
			KmLimit:            lo.FromPtrOr(raw.KmLimit, DefaultTwelveHourKmLimit),
			ExtraChargePerHour: lo.FromPtrOr(raw.ExtraChargePerHour, DefaultTwelveHourExtraChargePerHour),
			ExtraChargePerKm:   lo.FromPtrOr(raw.ExtraChargePerKm, DefaultTwelveHourExtraChargePerKm),
		}

	case types.RATE_PLAN_KIND_TWENTY_FOUR_HOUR:
		return Params{
			BaseRate:             lo.FromPtrOr(raw.BaseRate, DefaultTwentyFourHourBaseRate),
			KmLimit:              lo.FromPtrOr(raw.KmLimit, DefaultTwentyFourHourKmLimit),
			ExtraBlockRatePer12h: lo.FromPtrOr(raw.ExtraBlockRatePer12h, DefaultTwentyFourHourExtraBlockRatePer12h),
			ExtraChargePerHour:   lo.FromPtrOr(raw.ExtraChargePerHour, DefaultTwentyFourHourExtraChargePerHour),
			ExtraChargePerKm:     lo.FromPtrOr(raw.ExtraChargePerKm, DefaultTwentyFourHourExtraChargePerKm),
		}

	case types.RATE_PLAN_KIND_DAILY:
		return Params{
			RatePerDay:           lo.FromPtrOr(raw.RatePerDay, DefaultDailyRatePerDay),
			KmLimitPerDay:        lo.FromPtrOr(raw.KmLimitPerDay, DefaultDailyKmLimitPerDay),
			ExtraChargePerHour:   lo.FromPtrOr(raw.ExtraChargePerHour, DefaultDailyExtraChargePerHour),
			ExtraChargePerKm:     lo.FromPtrOr(raw.ExtraChargePerKm, DefaultDailyExtraChargePerKm),
			AvailableHoursPerDay: lo.FromPtrOr(raw.AvailableHoursPerDay, DefaultDailyAvailableHoursPerDay),
		}

	default:
		return Params{
			RatePerHour:      lo.FromPtrOr(raw.RatePerHour, DefaultFallbackRatePerHour),
			KmLimit:          lo.FromPtrOr(raw.KmLimit, DefaultFallbackKmLimit),
			ExtraChargePerKm: lo.FromPtrOr(raw.ExtraChargePerKm, DefaultFallbackExtraChargePerKm),
		}
	}
}
