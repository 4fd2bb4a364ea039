package service

import (
	"github.com/flexprice/rentalbilling/internal/domain/rateplan"
	"github.com/flexprice/rentalbilling/internal/domain/settlement"
	"github.com/flexprice/rentalbilling/internal/types"
	"github.com/shopspring/decimal"
)

var (
	twelveHours     = decimal.NewFromInt(12)
	twentyFourHours = decimal.NewFromInt(24)
)

// ChargeService prices a trip under a resolved plan
type ChargeService interface {
	Calculate(plan *rateplan.Plan, hours, km decimal.Decimal) settlement.ChargeBreakdown
}

type chargeService struct{}

func NewChargeService() ChargeService {
	return &chargeService{}
}

func (s *chargeService) Calculate(plan *rateplan.Plan, hours, km decimal.Decimal) settlement.ChargeBreakdown {
	return CalculateCharges(plan, hours, km)
}

// CalculateCharges dispatches on the plan kind. Nothing is rounded here.
func CalculateCharges(plan *rateplan.Plan, hours, km decimal.Decimal) settlement.ChargeBreakdown {
	hours = decimal.Max(decimal.Zero, hours)
	km = decimal.Max(decimal.Zero, km)
	p := plan.Params

	c := settlement.ChargeBreakdown{
		Kind:  plan.Kind,
		Hours: hours,
		Km:    km,
	}

	switch plan.Kind {
	case types.RATE_PLAN_KIND_HOURLY:
		c.BaseDuration = hours
		c.ExtraHours = decimal.Zero
		c.FreeKm = hours.Mul(p.KmFreePerHour)
		c.TimeCharge = hours.Mul(p.RatePerHour)

	case types.RATE_PLAN_KIND_TWELVE_HOUR:
		c.BaseDuration = twelveHours
		c.ExtraHours = overage(hours, twelveHours)
		c.FreeKm = p.KmLimit
		c.TimeCharge = p.BaseRate.Add(c.ExtraHours.Mul(p.ExtraChargePerHour))

	case types.RATE_PLAN_KIND_TWENTY_FOUR_HOUR:
		c.BaseDuration = twentyFourHours
		c.ExtraHours = overage(hours, twentyFourHours)
		c.Blocks = c.ExtraHours.Div(twelveHours).Floor()
		remainder := c.ExtraHours.Mod(twelveHours)
		c.FreeKm = p.KmLimit
		c.TimeCharge = p.BaseRate.
			Add(c.Blocks.Mul(p.ExtraBlockRatePer12h)).
			Add(remainder.Mul(p.ExtraChargePerHour))

	case types.RATE_PLAN_KIND_DAILY:
		c.BaseDays = hours.Div(twentyFourHours).Ceil()
		c.BaseDuration = p.AvailableHoursPerDay
		c.ExtraHours = overage(hours, p.AvailableHoursPerDay)
		c.FreeKm = p.KmLimitPerDay.Mul(c.BaseDays)
		c.TimeCharge = p.RatePerDay.Mul(c.BaseDays).Add(c.ExtraHours.Mul(p.ExtraChargePerHour))

	default:
		c.BaseDuration = hours
		c.ExtraHours = decimal.Zero
		c.FreeKm = p.KmLimit
		c.TimeCharge = hours.Mul(p.RatePerHour)
	}

	c.ExtraKm = overage(km, c.FreeKm)
	c.ExtraKmCharge = c.ExtraKm.Mul(p.ExtraChargePerKm)
	return c
}

// overage returns max(0, value - allowance)
func overage(value, allowance decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, value.Sub(allowance))
}
